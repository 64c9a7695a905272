package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipcopy/internal/app"
	"github.com/renato0307/clipcopy/internal/clipboard"
	"github.com/renato0307/clipcopy/internal/components"
	"github.com/renato0307/clipcopy/internal/config"
	"github.com/renato0307/clipcopy/internal/copier"
	"github.com/renato0307/clipcopy/internal/keyboard"
	"github.com/renato0307/clipcopy/internal/logging"
	"github.com/renato0307/clipcopy/internal/messages"
	"github.com/renato0307/clipcopy/internal/notify"
	"github.com/renato0307/clipcopy/internal/types"
	"github.com/renato0307/clipcopy/internal/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run copies once when text is given (flag, arguments or piped stdin) and
// starts the editor otherwise. Copy failures never make it return an error;
// only bad configuration does.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	text, oneShot, err := payload(opts, stdin)
	if err != nil {
		return err
	}

	cfg := opts.Config
	logCfg, err := loggingConfig(cfg, oneShot)
	if err != nil {
		return err
	}
	if err := logging.Init(logCfg); err != nil {
		return messages.WrapError(err, "failed to initialize logging")
	}
	defer logging.Shutdown()

	theme := ui.ResolveTheme(cfg.Theme)

	var writer clipboard.Writer
	logging.Time("resolve clipboard backend", func() {
		writer, err = clipboard.New(cfg.Backend, stdout)
	})
	if err != nil {
		return err
	}
	logging.Info("clipcopy starting",
		"backend", describe(writer),
		"theme", theme.Name,
		"config", opts.ConfigPath,
		"oneShot", oneShot,
	)

	if oneShot {
		copyOnce(writer, text, theme, cfg, stdin, stdout, stderr)
		return nil
	}
	return interactive(writer, theme, stdin, stdout)
}

// loggingConfig resolves where failures are logged. The editor owns the
// terminal, so without -log-file it logs to config.DefaultLogPath and refuses
// to start when that directory cannot be created.
func loggingConfig(cfg config.Config, oneShot bool) (logging.Config, error) {
	logCfg := cfg.Logging()
	if oneShot || logCfg.FilePath != "" {
		return logCfg, nil
	}

	logCfg.FilePath = config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(logCfg.FilePath), 0o755); err != nil {
		return logCfg, messages.WrapError(err, "no usable log location, set -log-file")
	}
	return logCfg, nil
}

// payload returns the text to copy and whether one was given. Piped stdin is
// read whole and copied as is.
func payload(opts *config.Options, stdin io.Reader) (string, bool, error) {
	if opts.HasText {
		return opts.Text, true, nil
	}
	if stdin == nil || clipboard.IsTerminal(stdin) {
		return "", false, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", false, messages.WrapError(err, "failed to read stdin")
	}
	return string(data), true, nil
}

// copyOnce issues a single write and waits for its outcome to be reported.
// Without a log file the failure entry is written to stderr.
func copyOnce(w clipboard.Writer, text string, theme *ui.Theme, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) {
	var logger copier.Logger = logging.Get()
	if cfg.Log.File == "" {
		logger = logging.NewWriter(stderr,
			logging.ParseFormat(cfg.Log.Format),
			logging.ParseLevel(cfg.Log.Level),
		)
	}

	c := copier.New(w, notify.NewConsole(theme, stdout, stdin), logger)
	c.Copy(text)
	c.Wait()
}

func interactive(w clipboard.Writer, theme *ui.Theme, stdin io.Reader, stdout io.Writer) error {
	keys := keyboard.GetKeys()
	modal := components.NewModal(theme, keys)
	c := copier.New(w, modal, logging.Get())

	ctx := types.NewAppContext(theme, keys, c, describe(w))
	model := app.NewModel(ctx, modal)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)

	if _, err := p.Run(); err != nil {
		return messages.WrapError(err, "error running program")
	}
	return nil
}

// describe names the backend a writer talks to, for the header and logs
func describe(w clipboard.Writer) string {
	switch v := w.(type) {
	case clipboard.System:
		return clipboard.BackendSystem
	case *clipboard.OSC52:
		if v.Mode() == clipboard.ModeDefault {
			return clipboard.BackendOSC52
		}
		return clipboard.BackendOSC52 + "/" + v.Mode().String()
	default:
		return "unavailable"
	}
}
