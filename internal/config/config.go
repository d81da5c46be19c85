// Package config loads the process-wide dialog settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sjoeboo/msgbox/internal/i18n"
	"github.com/sjoeboo/msgbox/internal/layout"
	"github.com/sjoeboo/msgbox/internal/logging"
)

// FileName is the TOML settings file inside the msgbox directory.
const FileName = "config.toml"

// Environment overrides.
const (
	EnvConfig   = "MSGBOX_CONFIG"
	EnvLanguage = "MSGBOX_LANG"
	EnvColor    = "MSGBOX_COLOR"
)

// Settings is the process-wide dialog configuration.
type Settings struct {
	// BeepOnShow rings the terminal bell when a dialog opens (default: true)
	BeepOnShow bool `toml:"beep_on_show"`

	// Language is a two-letter code for button captions ("de", "fr").
	// Empty means the host locale; anything unsupported shows English.
	Language string `toml:"language"`

	// Color overrides the detected color profile: truecolor, 256, 16, none
	Color string `toml:"color"`

	// AltScreen shows dialogs on the alternate screen (default: true)
	AltScreen bool `toml:"alt_screen"`

	// Font describes the dialog font metrics used for sizing
	Font FontSettings `toml:"font"`

	// Log configures the debug log
	Log LogSettings `toml:"log"`
}

// FontSettings describes the dialog font.
type FontSettings struct {
	// Name is informational; terminals render with their own font
	Name string `toml:"name"`

	// LineHeight in logical pixels (default: 15)
	LineHeight int `toml:"line_height"`

	// CellWidth is the pixel width of one terminal cell (default: 7)
	CellWidth int `toml:"cell_width"`
}

// LogSettings defines debug log configuration.
type LogSettings struct {
	Dir    string `toml:"dir"`
	Level  string `toml:"level"`
	Format string `toml:"format"`

	// MaxSizeMB is the size before the log is rotated (default: 5)
	MaxSizeMB int  `toml:"max_size_mb"`
	Debug     bool `toml:"debug"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	m := layout.DefaultMetrics()
	return Settings{
		BeepOnShow: true,
		AltScreen:  true,
		Font: FontSettings{
			Name:       "system",
			LineHeight: m.LineHeight,
			CellWidth:  m.CellWidth,
		},
		Log: LogSettings{Level: "info", Format: "json"},
	}
}

// Metrics returns the font metrics for the size resolver.
func (s Settings) Metrics() layout.FontMetrics {
	return layout.FontMetrics{LineHeight: s.Font.LineHeight, CellWidth: s.Font.CellWidth}
}

// Logging returns the logging configuration.
func (s Settings) Logging() logging.Config {
	return logging.Config{
		LogDir:    expandHome(s.Log.Dir),
		Level:     s.Log.Level,
		Format:    s.Log.Format,
		MaxSizeMB: s.Log.MaxSizeMB,
		Debug:     s.Log.Debug,
	}
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

// Dir returns the msgbox settings directory (~/.msgbox).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".msgbox"), nil
}

// Path returns the settings file path, honoring MSGBOX_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads settings from path. A missing file yields the defaults; a
// malformed one is an error. Environment overrides and the host locale are
// applied last.
func Load(path string) (Settings, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Settings, error) {
	s := Defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, os.ErrNotExist) {
			return finish(Defaults(), getenv), fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return finish(s, getenv), nil
}

func finish(s Settings, getenv func(string) string) Settings {
	if v := getenv(EnvLanguage); v != "" {
		s.Language = v
	}
	if v := getenv(EnvColor); v != "" {
		s.Color = v
	}
	s.Language = strings.ToLower(strings.TrimSpace(s.Language))
	if s.Language == "" {
		s.Language = i18n.DetectLanguage(getenv)
	}
	d := Defaults()
	if s.Font.LineHeight <= 0 {
		s.Font.LineHeight = d.Font.LineHeight
	}
	if s.Font.CellWidth <= 0 {
		s.Font.CellWidth = d.Font.CellWidth
	}
	return s
}

// CreateExampleConfig writes a commented example settings file to path
// unless one already exists.
func CreateExampleConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(exampleConfig), 0o644)
}

const exampleConfig = `# msgbox configuration

# Ring the terminal bell when a dialog opens
beep_on_show = true

# Button caption language: "de", "fr", anything else shows English.
# Leave empty to follow the host locale (LC_ALL / LC_MESSAGES / LANG).
# language = "de"

# Color profile override: truecolor, 256, 16, none
# color = "256"

# Show dialogs on the alternate screen
alt_screen = true

# Font metrics used to pick the dialog width.
# Larger line heights select wider dialogs (18, 20 and 22 are thresholds).
[font]
name = "system"
line_height = 15
cell_width = 7

# Debug log (rotated). Without a dir nothing is logged.
[log]
# dir = "~/.msgbox/logs"
level = "info"
format = "json"
`
