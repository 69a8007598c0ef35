package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
)

const help = `Commands:
  l <n>      set password length
  t <class>  toggle lowercase, uppercase, digits or symbols
  g          generate password
  r          reset
  q          quit`

// RunInteractive drives the form from line-oriented input until "q" or EOF.
// The length is re-validated on every change and generation is refused while
// it is invalid.
func RunInteractive(r io.Reader, w io.Writer, gen *crypto.Generator) error {
	scanner := bufio.NewScanner(r)
	st := form.Reset()

	fmt.Fprintln(w, "=== Password Generator ===")
	fmt.Fprintln(w, help)
	render(w, st)

	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "q", "quit":
			return nil
		case "?", "h", "help":
			fmt.Fprintln(w, help)
			continue
		case "l", "length":
			st = st.SetLength(arg)
		case "t", "toggle":
			class, err := crypto.ParseCharacterClass(arg)
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			st = st.Toggle(class)
		case "g", "generate":
			next, err := st.Generate(gen)
			if err != nil {
				reportGenerateError(w, err)
				continue
			}
			st = next
		case "r", "reset":
			st = form.Reset()
		default:
			fmt.Fprintf(w, "unknown command %q (? for help)\n", cmd)
			continue
		}

		render(w, st)
	}
}

func reportGenerateError(w io.Writer, err error) {
	var cfgErr *crypto.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(w, "cannot generate: %v (t <class> to enable one)\n", err)
		return
	}
	fmt.Fprintf(w, "cannot generate: %v\n", err)
}

func render(w io.Writer, st form.State) {
	length := st.Length
	if length == "" {
		length = "(empty)"
	}
	fmt.Fprintf(w, "Length: %s", length)
	// A fresh form is not flagged until the length has been edited.
	if st.Err != nil && st.Touched {
		fmt.Fprintf(w, "  ! %v", st.Err)
	}
	fmt.Fprintln(w)

	for _, c := range crypto.AllClasses {
		mark := " "
		if st.Classes.Has(c) {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s  ", mark, c)
	}
	fmt.Fprintln(w)

	if st.Generated {
		fmt.Fprintf(w, "Password: %s\n", st.Password)
	}
}
