// Package store persists the versioned rule-set document and the CLI's own
// settings file. The load path always runs the document through the
// migrator before any resolver sees it; the save path always writes the
// current schema version.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tidybin/tidybin/pkg/errors"
	"github.com/tidybin/tidybin/pkg/logging"
	"github.com/tidybin/tidybin/pkg/migrate"
	"github.com/tidybin/tidybin/pkg/types"
)

// DefaultConfigPath returns the standard location of the rule-set document.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tidybin", "config.json")
}

// Load reads a persisted configuration document, migrating older schema
// versions forward. The returned config is always at the current version.
// Documents are JSON by default; .yaml/.yml paths are parsed as YAML.
func Load(path string) (*types.VersionedConfig, error) {
	logger := logging.GetLogger("store")

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read configuration from %s", path)
	}

	migrated, err := migrate.Apply(k.Raw())
	if err != nil {
		return nil, err
	}

	mk := koanf.New(".")
	if err := mk.Load(confmap.Provider(migrated, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to assemble migrated configuration")
	}

	var cfg types.VersionedConfig
	if err := mk.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	logger.Debug().
		Str("path", path).
		Int("version", cfg.Version).
		Int("folders", len(cfg.Folders)).
		Msg("configuration loaded")

	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return kjson.Parser()
	}
}

// LoadOrDefault reads the configuration at path, falling back to the
// compiled-in default seed when the file does not exist yet.
func LoadOrDefault(path string) (*types.VersionedConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger := logging.GetLogger("store")
		logger.Info().
			Str("path", path).
			Msg("no configuration found, using default seed")
		return migrate.DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the configuration at the current schema version. Saving is
// the one moment legacy subcategory fields are folded into the unified
// filter representation; loads never rewrite stored documents.
func Save(path string, cfg *types.VersionedConfig) error {
	normalized := normalizeForSave(cfg)

	data, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode configuration")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite,
			"failed to create configuration directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite,
			"failed to write configuration to %s", path)
	}
	return nil
}

// normalizeForSave copies the config, stamps the current version and folds
// legacy extension/keyword lists into unified filters.
func normalizeForSave(cfg *types.VersionedConfig) *types.VersionedConfig {
	out := *cfg
	out.Version = types.CurrentConfigVersion

	out.Folders = make([]types.FolderConfig, len(cfg.Folders))
	copy(out.Folders, cfg.Folders)
	for i := range out.Folders {
		cats := make([]types.CategoryConfig, len(out.Folders[i].Categories))
		copy(cats, out.Folders[i].Categories)
		for j := range cats {
			subs := make([]types.SubcategoryConfig, len(cats[j].Subcategories))
			copy(subs, cats[j].Subcategories)
			for s := range subs {
				if len(subs[s].Filters) == 0 && (len(subs[s].Extensions) > 0 || len(subs[s].Keywords) > 0) {
					subs[s].Filters = subs[s].EffectiveFilters()
					subs[s].Extensions = nil
					subs[s].Keywords = nil
				}
			}
			cats[j].Subcategories = subs
		}
		out.Folders[i].Categories = cats
	}

	return &out
}
