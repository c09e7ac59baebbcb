// Package migrate upgrades persisted configuration documents to the current
// schema version. Migration is a chain of per-version steps over the decoded
// JSON document, so user-authored content the newer schema does not model is
// carried through untouched.
package migrate

import (
	"github.com/tidybin/tidybin/pkg/errors"
	"github.com/tidybin/tidybin/pkg/logging"
	"github.com/tidybin/tidybin/pkg/types"
)

// CurrentVersion is the schema version this build writes. It is an explicit
// constant consumed by the pipeline, not ambient mutable state.
const CurrentVersion = types.CurrentConfigVersion

// A step upgrades a document from exactly one version to the next. Steps
// fill newly introduced fields with safe defaults and never touch
// user-authored content (folder names, filters, keywords, exceptions).
type step func(doc map[string]interface{})

var steps = map[int]step{
	1: stepAddOrdering,
	2: stepAddRenderSupport,
	3: stepAddSettings,
	4: stepAddExceptionsAndSequences,
}

// Apply migrates a decoded configuration document to CurrentVersion. The
// input is never mutated; the returned document is an independent copy. A
// document already at CurrentVersion passes through unchanged (modulo the
// copy), and one above it is rejected: configs are never downgraded.
func Apply(doc map[string]interface{}) (map[string]interface{}, error) {
	logger := logging.GetLogger("migrate")

	version := documentVersion(doc)
	if version > CurrentVersion {
		return nil, errors.Newf(errors.ErrConfigVersion,
			"configuration version %d exceeds the supported version %d",
			version, CurrentVersion)
	}

	out := deepCopy(doc)
	for version < CurrentVersion {
		migrateStep, ok := steps[version]
		if !ok {
			return nil, errors.Newf(errors.ErrConfigVersion,
				"no migration step from version %d", version)
		}
		logger.Info().
			Int("from", version).
			Int("to", version+1).
			Msg("migrating configuration")
		migrateStep(out)
		version++
		out["version"] = version
	}

	out["version"] = CurrentVersion
	return out, nil
}

// documentVersion reads the version tag. Documents predating the tag are
// treated as version 1.
func documentVersion(doc map[string]interface{}) int {
	switch v := doc["version"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 1
}

func deepCopy(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return deepCopy(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return val
	}
}

func documentFolders(doc map[string]interface{}) []map[string]interface{} {
	raw, _ := doc["folders"].([]interface{})
	folders := make([]map[string]interface{}, 0, len(raw))
	for _, f := range raw {
		if folder, ok := f.(map[string]interface{}); ok {
			folders = append(folders, folder)
		}
	}
	return folders
}

func folderCategories(folder map[string]interface{}) []map[string]interface{} {
	raw, _ := folder["categories"].([]interface{})
	categories := make([]map[string]interface{}, 0, len(raw))
	for _, c := range raw {
		if cat, ok := c.(map[string]interface{}); ok {
			categories = append(categories, cat)
		}
	}
	return categories
}
