// Package cli implements the vigenere command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/vigenere"
	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/editor"
)

// ErrUsage marks errors caused by invalid arguments or flags.
var ErrUsage = errors.New("usage")

// Runner runs a Bubble Tea model to completion.
type Runner func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

// Deps are the command's outside-world hooks.
type Deps struct {
	Stdout, Stderr io.Writer

	// IsTerminal reports whether the interactive session can run.
	IsTerminal func() bool
	Run        Runner
	Clipboard  editor.Clipboard
	Getenv     func(string) string
}

// DefaultDeps wires the process's standard streams and terminal.
func DefaultDeps() Deps {
	return Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Run: func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
			return tea.NewProgram(m, opts...).Run()
		},
		Clipboard: systemClipboard(editor.SystemClipboard{}),
		Getenv:    os.Getenv,
	}
}

// systemClipboard leaves the editor without a clipboard when no utility is
// installed, so copying reports it instead of failing on every attempt.
func systemClipboard(cb editor.SystemClipboard) editor.Clipboard {
	if !cb.Available() {
		return nil
	}
	return cb
}

type flags struct {
	encipher, decipher bool
	key                string
	length             int

	configPath string
	noAnalysis bool
	readOnly   bool
	noColor    bool
	logFile    string
}

// NewRootCommand builds the vigenere command.
func NewRootCommand(deps Deps) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   vigenere.Name + " (-e | -d) <text-or-file> (-k key | -l length)",
		Short: "Encipher or decipher text with a Vigenère key",
		Long: `Encipher or decipher text with a Vigenère (running key) cipher.

With --key the result is printed and the command exits. With --length an
interactive session opens to search for the key: the message is shown
transformed by the current key and the key can be edited letter by letter,
or recovered by typing the expected plaintext under the message.

EXAMPLES:
  vigenere -e "attack at dawn" -k lemon
  vigenere -d secret.txt -l 5`,
		Version:       vigenere.Version(),
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, f, args[0])
		},
	}
	cmd.SetVersionTemplate(vigenere.Banner() + "\n")
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	fl := cmd.Flags()
	fl.BoolVarP(&f.encipher, "encipher", "e", false, "encipher the text")
	fl.BoolVarP(&f.decipher, "decipher", "d", false, "decipher the text")
	fl.StringVarP(&f.key, "key", "k", "", "key to apply; prints the result")
	fl.IntVarP(&f.length, "length", "l", 0, "key length; opens the interactive session")

	fl.StringVar(&f.configPath, "config", "", "config file (default: user config dir)")
	fl.BoolVar(&f.noAnalysis, "no-analysis", false, "hide the frequency panel")
	fl.BoolVar(&f.readOnly, "read-only", false, "disable key recovery by typing in the message")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colors")
	fl.StringVar(&f.logFile, "log-file", "", "write a debug log to this file")
	return cmd
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d text argument, got %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

func run(cmd *cobra.Command, deps Deps, f flags, arg string) error {
	if f.encipher == f.decipher {
		return fmt.Errorf("%w: exactly one of --encipher or --decipher is required", ErrUsage)
	}
	withKey := cmd.Flags().Changed("key")
	withLength := cmd.Flags().Changed("length")
	if withKey == withLength {
		return fmt.Errorf("%w: exactly one of --key or --length is required", ErrUsage)
	}
	dir := cipher.DirDecipher
	if f.encipher {
		dir = cipher.DirEncipher
	}

	text, err := LoadText(arg)
	if err != nil {
		return err
	}

	if withKey {
		if err := cipher.ValidateKey(f.key); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		_, err := fmt.Fprintln(deps.Stdout, cipher.Transform(dir, text, f.key))
		return err
	}
	if f.length < 1 {
		return fmt.Errorf("%w: --length must be at least 1, got %d", ErrUsage, f.length)
	}
	return runInteractive(deps, f, dir, text)
}

// Execute runs the command with args and returns the process exit code.
func Execute(deps Deps, args []string) int {
	cmd := NewRootCommand(deps)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(deps.Stderr, "%s: %v\n", vigenere.Name, err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(deps.Stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}
