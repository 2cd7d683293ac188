package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/editor"
	"github.com/iw2rmb/vigenere/internal/config"
	"github.com/iw2rmb/vigenere/session"
)

var errNotTerminal = errors.New("interactive mode needs a terminal on stdin and stdout")

// program hosts the editor as the top-level Bubble Tea model.
type program struct {
	editor editor.Model
}

func (p program) Init() tea.Cmd { return p.editor.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.editor, cmd = p.editor.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.editor.View() }

func loadConfig(f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cfg, err = cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if f.noAnalysis {
		cfg.ShowAnalysis = false
	}
	if f.readOnly {
		cfg.MessageEdit = false
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	return cfg, cfg.Validate()
}

// newLogger opens the log destination. With no file it discards.
func newLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = io.Discard
	var c io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, c = file, file
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "vigenere",
		ReportTimestamp: true,
	})
	return logger, c, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newStyle(deps Deps, f flags, theme config.Theme) editor.Style {
	r := lipgloss.NewRenderer(deps.Stdout)
	if f.noColor || deps.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return editor.DefaultStyleFor(r).WithPalette(editor.Palette{
		Message: theme.Message,
		Key:     theme.Key,
		Cursor:  theme.Cursor,
		Border:  theme.Border,
		Muted:   theme.Muted,
	})
}

func runInteractive(deps Deps, f flags, dir cipher.Direction, text string) error {
	if !deps.IsTerminal() {
		return errNotTerminal
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	placeholder, _ := cfg.PlaceholderRune()
	sess, err := session.NewWithKeyLength(text, f.length, session.Options{
		Direction:    dir,
		MessageEdit:  cfg.MessageEdit,
		HistoryLimit: cfg.HistoryLimit,
		Placeholder:  placeholder,
	})
	if err != nil {
		return err
	}
	logger.Info("session start", "direction", dir, "length", f.length, "runes", len([]rune(text)), "message_edit", cfg.MessageEdit)

	m := program{editor: editor.New(editor.Config{
		Session:      sess,
		Style:        newStyle(deps, f, cfg.Theme),
		ShowAnalysis: cfg.ShowAnalysis,
		AnalysisTop:  cfg.AnalysisTop,
		Clipboard:    deps.Clipboard,
		Logger:       logger,
	})}

	final, err := deps.Run(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if err != nil {
		return err
	}
	p, ok := final.(program)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	if err := p.editor.Err(); err != nil {
		return err
	}
	logger.Info("session end", "key", sess.Key())
	_, err = fmt.Fprintln(deps.Stdout, p.editor.Output())
	return err
}
