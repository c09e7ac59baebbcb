package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/tidybin/tidybin/pkg/errors"
)

// AppSettings are the CLI's own preferences, separate from the versioned
// rule-set document. Sources are layered: built-in defaults, then the
// settings file, then TIDYBIN_* environment variables.
type AppSettings struct {
	ConfigPath string `koanf:"config_path" toml:"config_path"`
	Color      string `koanf:"color" toml:"color"` // auto, always or never
	LogLevel   string `koanf:"log_level" toml:"log_level"`
}

// DefaultSettingsPath returns the standard location of the settings file.
func DefaultSettingsPath() string {
	return filepath.Join(xdg.ConfigHome, "tidybin", "tidybin.toml")
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"config_path": DefaultConfigPath(),
		"color":       "auto",
		"log_level":   "warn",
	}
}

// LoadAppSettings assembles the CLI settings from defaults, the TOML
// settings file (when present) and the environment.
func LoadAppSettings(path string) (*AppSettings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to parse settings from %s", path)
			}
		}
	}

	err := k.Load(env.Provider("TIDYBIN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TIDYBIN_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	var settings AppSettings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	return &settings, nil
}

// SaveAppSettings writes the settings file as TOML.
func SaveAppSettings(path string, settings *AppSettings) error {
	data, err := gotoml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite,
			"failed to create settings directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite,
			"failed to write settings to %s", path)
	}
	return nil
}
