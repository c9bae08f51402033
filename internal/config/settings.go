package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the user preferences of the financepro CLI.
type Settings struct {
	Output  OutputSettings  `toml:"output"`
	Logging LoggingSettings `toml:"logging"`
}

// OutputSettings controls how reports are rendered.
type OutputSettings struct {
	Format         string `toml:"format"`
	Directory      string `toml:"directory,omitempty"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// LoggingSettings controls the CLI logger.
type LoggingSettings struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Output: OutputSettings{
			Format:         "console",
			CurrencySymbol: "€",
		},
		Logging: LoggingSettings{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant settings directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "financepro")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "financepro")
}

// Path returns the full path to the settings file.
func Path() string {
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads the settings file, returning defaults if it doesn't exist.
func Load() (Settings, error) {
	return LoadFrom(Path())
}

// LoadFrom reads settings from the given file, returning defaults if it
// doesn't exist. Keys missing from the file keep their default value.
func LoadFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing settings: %w", err)
	}

	return settings, nil
}

// Save writes the settings to the given file, creating its directory.
func Save(settings Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(settings)
}

// Exists returns true if a settings file exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
