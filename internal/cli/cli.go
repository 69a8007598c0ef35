// Package cli implements the passgen command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
)

// Options holds the parsed flags.
type Options struct {
	Length      string
	Lowercase   bool
	Uppercase   bool
	Digits      bool
	Symbols     bool
	Count       int
	Interactive bool
	Source      string
}

// DefaultOptions mirrors the form's reset state and takes the random source
// from cfg.
func DefaultOptions(cfg config.Config) Options {
	return Options{
		Lowercase: form.DefaultClasses.Has(crypto.Lowercase),
		Uppercase: form.DefaultClasses.Has(crypto.Uppercase),
		Digits:    form.DefaultClasses.Has(crypto.Digit),
		Symbols:   form.DefaultClasses.Has(crypto.Symbol),
		Count:     1,
		Source:    cfg.RandomSource,
	}
}

// isTerminal is swapped out in tests.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewCommand builds the root command reading from in and writing to out.
// A --source flag is subject to the same production restriction as
// RANDOM_SOURCE.
func NewCommand(in io.Reader, out io.Writer, cfg config.Config) *cobra.Command {
	opts := DefaultOptions(cfg)

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords from selected character classes",
		Long: `passgen generates passwords of 4 to 16 characters drawn uniformly
from the union of the enabled character classes.

Run without flags in a terminal to use the interactive form.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := crypto.SourceByName(opts.Source)
			if err != nil {
				return err
			}
			if cfg.Env == "production" && opts.Source != "" && opts.Source != crypto.SourceCrypto {
				return fmt.Errorf("random source must be %q in production", crypto.SourceCrypto)
			}
			gen := crypto.NewGenerator(src)

			if opts.Interactive || (cmd.Flags().NFlag() == 0 && isTerminal(in)) {
				return RunInteractive(in, out, gen)
			}
			return Run(out, gen, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Length, "length", "l", "", "password length (4-16)")
	f.BoolVar(&opts.Lowercase, "lower", opts.Lowercase, "include lowercase letters")
	f.BoolVar(&opts.Uppercase, "upper", opts.Uppercase, "include uppercase letters")
	f.BoolVar(&opts.Digits, "digits", opts.Digits, "include digits")
	f.BoolVar(&opts.Symbols, "symbols", opts.Symbols, "include symbols "+crypto.Symbol.Alphabet())
	f.IntVarP(&opts.Count, "count", "c", opts.Count, "number of passwords to generate")
	f.BoolVarP(&opts.Interactive, "interactive", "i", false, "use the interactive form")
	f.StringVar(&opts.Source, "source", opts.Source, "random source: crypto or math")

	return cmd
}

// Run generates opts.Count passwords and prints one per line.
func Run(out io.Writer, gen *crypto.Generator, opts Options) error {
	if opts.Count < 1 {
		return errors.New("count must be at least 1")
	}

	st := form.Reset().
		SetLength(opts.Length).
		SetClass(crypto.Lowercase, opts.Lowercase).
		SetClass(crypto.Uppercase, opts.Uppercase).
		SetClass(crypto.Digit, opts.Digits).
		SetClass(crypto.Symbol, opts.Symbols)

	for i := 0; i < opts.Count; i++ {
		next, err := st.Generate(gen)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, next.Password)
	}
	return nil
}
