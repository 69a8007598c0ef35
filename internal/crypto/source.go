package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// Source draws uniformly distributed indexes. Implementations must be safe
// for concurrent use.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// CryptoSource reads from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// MathSource uses the runtime-seeded math/rand/v2 generator. It is fast but
// not suitable where the password must resist prediction.
type MathSource struct{}

func (MathSource) IntN(n int) (int, error) {
	return mathrand.IntN(n), nil
}

// seededSource is a deterministic PCG stream, mainly for tests.
type seededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed yield the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

// Source names accepted by SourceByName.
const (
	SourceCrypto = "crypto"
	SourceMath   = "math"
)

// SourceByName resolves a configured source name.
func SourceByName(name string) (Source, error) {
	switch name {
	case "", SourceCrypto:
		return CryptoSource{}, nil
	case SourceMath:
		return MathSource{}, nil
	}
	return nil, fmt.Errorf("unknown random source %q (want %q or %q)", name, SourceCrypto, SourceMath)
}
