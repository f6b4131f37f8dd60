package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration
type Config struct {
	DefaultTool  string   `toml:"default_tool"` // pmc, cli
	HistoryLimit int      `toml:"history_limit"`
	Theme        Theme    `toml:"theme_colors"`
	Keys         KeyMap   `toml:"keys"`
	Presets      []Preset `toml:"presets"`

	path string
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
	PopupBg       string `toml:"popup_bg"`
	BorderColor   string `toml:"border_color"`
	SelectedBg    string `toml:"selected_bg"`
	Syntax        string `toml:"syntax"` // chroma style for the command preview
}

// KeyMap defines key bindings
type KeyMap struct {
	Copy       []string `toml:"copy"`
	Reset      []string `toml:"reset"`
	ToggleTool []string `toml:"toggle_tool"`
	NextField  []string `toml:"next_field"`
	PrevField  []string `toml:"prev_field"`
	Toggle     []string `toml:"toggle"`
	SavePreset []string `toml:"save_preset"`
	Presets    []string `toml:"presets"`
	History    []string `toml:"history"`
	Introspect []string `toml:"introspect"`
	Help       []string `toml:"help"`
	Exit       []string `toml:"exit"`
	Quit       []string `toml:"quit"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultTool:  "pmc",
		HistoryLimit: 100,
		Presets:      []Preset{},
		Theme: Theme{
			// Nord
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Warning:       "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
			PopupBg:       "#2E3440",
			BorderColor:   "#4C566A",
			SelectedBg:    "#3B4252",
			Syntax:        "nord",
		},
		Keys: KeyMap{
			Copy:       []string{"ctrl+y"},
			Reset:      []string{"ctrl+r"},
			ToggleTool: []string{"ctrl+t"},
			NextField:  []string{"tab", "down"},
			PrevField:  []string{"shift+tab", "up"},
			Toggle:     []string{" ", "enter"},
			SavePreset: []string{"ctrl+s"},
			Presets:    []string{"ctrl+o"},
			History:    []string{"ctrl+p"},
			Introspect: []string{"ctrl+l"},
			Help:       []string{"f1"},
			Exit:       []string{"esc"},
			Quit:       []string{"ctrl+c"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("ezscaffold/config.toml")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the config at path, writing defaults on first run
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.path = path

	// Presets must be decrypted before any save re-encrypts them
	cfg.decryptPresets()

	// Populate defaults for missing fields (migration)
	if cfg.applyDefaults() {
		if err := cfg.Save(); err != nil {
			log.Printf("config: could not persist defaults: %v", err)
		}
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() bool {
	defaults := DefaultConfig()
	updated := false

	if c.DefaultTool == "" {
		c.DefaultTool = defaults.DefaultTool
		updated = true
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = defaults.HistoryLimit
		updated = true
	}
	if c.Theme.TextPrimary == "" {
		c.Theme = defaults.Theme
		updated = true
	}
	if c.Theme.Syntax == "" {
		c.Theme.Syntax = defaults.Theme.Syntax
		updated = true
	}
	if len(c.Keys.Copy) == 0 {
		c.Keys = defaults.Keys
		updated = true
	}
	if c.Presets == nil {
		c.Presets = []Preset{}
	}
	return updated
}

// Path returns the file the config is persisted to
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return err
		}
		c.path = path
	}

	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// Owner read/write only, connection strings may carry passwords
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	out := *c
	out.Presets = c.encryptedPresets()
	return toml.NewEncoder(f).Encode(out)
}
