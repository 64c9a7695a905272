// Package config resolves clipcopy settings from command-line flags and an
// optional YAML config file. Flags win over the file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/clipcopy/internal/clipboard"
	"github.com/renato0307/clipcopy/internal/logging"
	"github.com/renato0307/clipcopy/internal/messages"
	"github.com/renato0307/clipcopy/internal/ui"
)

// AppName names the config directory and the binary
const AppName = "clipcopy"

// Config holds the settings that can live in the config file
type Config struct {
	Theme   string    `json:"theme"`
	Backend string    `json:"backend"`
	Log     LogConfig `json:"log"`
}

// LogConfig mirrors logging.Config in file form
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	Format     string `json:"format"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
}

// Options is the fully resolved invocation
type Options struct {
	Config Config
	// ConfigPath is the file that was loaded, empty if none
	ConfigPath string
	// Text is the payload given with -text or as positional arguments
	Text    string
	HasText bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Theme:   "charm",
		Backend: clipboard.BackendAuto,
		Log: LogConfig{
			Level:      "info",
			Format:     string(logging.FormatText),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/clipcopy/config.yaml (or the
// platform equivalent). Empty when no config dir can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// DefaultLogPath returns the log file the interactive host falls back to when
// none is configured: under the user cache dir, or under the temp dir when
// there is no cache dir (HOME and XDG_CACHE_HOME unset).
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName, AppName+".log")
}

// Parse resolves options from command-line arguments (without the program name).
func Parse(args []string, stderr io.Writer) (*Options, error) {
	flags := flag.NewFlagSet(AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		flagConfig     = flags.String("config", "", "Path to YAML config file (default: "+DefaultPath()+" when present)")
		flagTheme      = flags.String("theme", "", "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+"); partial names are matched")
		flagBackend    = flags.String("backend", "", "Clipboard backend ("+strings.Join(clipboard.Backends(), ", ")+")")
		flagText       = flags.String("text", "", "Text to copy; skips the interactive editor")
		flagLogFile    = flags.String("log-file", "", "Path to log file (empty disables file logging)")
		flagLogLevel   = flags.String("log-level", "", "Log level (debug, info, warn, error)")
		flagLogFormat  = flags.String("log-format", "", "Log format (text, json)")
		flagLogMaxSize = flags.Int("log-max-size", 0, "Log file size in MB before rotation")
	)

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	opts := &Options{Config: Default()}

	path, explicit := *flagConfig, *flagConfig != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		loaded, err := LoadFile(path, opts.Config)
		switch {
		case err == nil:
			opts.Config = loaded
			opts.ConfigPath = path
		case !explicit && errors.Is(err, os.ErrNotExist):
			// default location is optional
		default:
			return nil, err
		}
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["theme"] {
		opts.Config.Theme = *flagTheme
	}
	if set["backend"] {
		opts.Config.Backend = *flagBackend
	}
	if set["log-file"] {
		opts.Config.Log.File = *flagLogFile
	}
	if set["log-level"] {
		opts.Config.Log.Level = *flagLogLevel
	}
	if set["log-format"] {
		opts.Config.Log.Format = *flagLogFormat
	}
	if set["log-max-size"] {
		opts.Config.Log.MaxSizeMB = *flagLogMaxSize
	}

	switch {
	case set["text"]:
		opts.Text, opts.HasText = *flagText, true
	case flags.NArg() > 0:
		opts.Text, opts.HasText = strings.Join(flags.Args(), " "), true
	}

	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadFile reads a YAML config file on top of base. Keys missing from the
// file keep the base value.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, messages.WrapError(err, "failed to read config %s", path)
	}

	cfg := base
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return base, messages.WrapError(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently
func (c Config) Validate() error {
	if !slices.Contains(clipboard.Backends(), c.Backend) {
		return fmt.Errorf("unknown clipboard backend %q (valid: %s)", c.Backend, strings.Join(clipboard.Backends(), ", "))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	switch logging.LogFormat(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (valid: text, json)", c.Log.Format)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log rotation sizes cannot be negative")
	}
	return nil
}

// Logging converts the file settings into a logging.Config
func (c Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
