package host

import (
	"encoding/json"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tidybin/tidybin/pkg/errors"
	"github.com/tidybin/tidybin/pkg/types"
)

// FileBridge is a Bridge backed by documents the host application exported
// to disk: an item list and a statistics record, each in JSON or YAML.
// It cannot apply renames; those require a live host connection.
type FileBridge struct {
	ItemsPath string
	StatsPath string
}

// QueryItems reads the exported item list.
func (b *FileBridge) QueryItems() ([]types.ItemDescriptor, error) {
	if b.ItemsPath == "" {
		return nil, nil
	}
	var items []types.ItemDescriptor
	if err := readDocument(b.ItemsPath, &items); err != nil {
		return nil, errors.Wrapf(err, errors.ErrHostQuery,
			"failed to read item list from %s", b.ItemsPath)
	}
	return items, nil
}

// Rename always fails: a file export cannot rename project items.
func (b *FileBridge) Rename(pairs []types.RenamePair) (types.RenameResult, error) {
	return types.RenameResult{}, errors.New(errors.ErrHostRename,
		"renaming requires a live host connection")
}

// QueryStats reads the exported statistics record.
func (b *FileBridge) QueryStats() (types.ProjectStats, error) {
	var stats types.ProjectStats
	if b.StatsPath == "" {
		return stats, errors.New(errors.ErrHostStats, "no statistics file configured")
	}
	if err := readDocument(b.StatsPath, &stats); err != nil {
		return stats, errors.Wrapf(err, errors.ErrHostStats,
			"failed to read statistics from %s", b.StatsPath)
	}
	return stats, nil
}

// readDocument decodes a JSON or YAML file by extension, defaulting to JSON.
func readDocument(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return yaml.Unmarshal(data, out)
	}
	return json.Unmarshal(data, out)
}
