// Package resolver composes the classifier and matcher over a configuration
// snapshot to decide, per asset, which folder and subcategory it belongs to.
//
// Every function here treats the configuration as an immutable snapshot:
// nothing is mutated, so the same snapshot can serve concurrent resolution
// passes without coordination.
package resolver

import (
	"strings"

	"github.com/tidybin/tidybin/pkg/classify"
	"github.com/tidybin/tidybin/pkg/logging"
	"github.com/tidybin/tidybin/pkg/match"
	"github.com/tidybin/tidybin/pkg/types"
)

// AssignedCategories maps each category type to the folder that owns it by
// default. Folders are visited in stored order, categories within each folder
// in stored order. A category participates iff it is enabled and carries no
// filters or keywords: filtered categories deliberately opt out of
// exclusivity so the same type can appear, filtered, in several folders.
// When an unfiltered type appears in more than one folder the last seen in
// iteration order wins; that shadowing is a documented precedence rule, not
// an error. Entries whose type fails validation are ignored rather than
// propagated into the mapping.
func AssignedCategories(folders []types.FolderConfig) map[types.CategoryType]string {
	logger := logging.GetLogger("resolver")
	assigned := make(map[types.CategoryType]string)

	for i := range folders {
		folder := &folders[i]
		for j := range folder.Categories {
			cat := &folder.Categories[j]
			if !cat.Enabled {
				continue
			}
			if cat.HasFilters() {
				continue
			}
			if !types.IsValidCategoryType(string(cat.Type)) {
				logger.Warn().
					Str("folder", folder.Name).
					Str("type", string(cat.Type)).
					Msg("ignoring category with invalid type")
				continue
			}
			if prev, ok := assigned[cat.Type]; ok && prev != folder.ID {
				logger.Debug().
					Str("type", string(cat.Type)).
					Str("shadowed", prev).
					Str("winner", folder.ID).
					Msg("duplicate unfiltered category, last folder wins")
			}
			assigned[cat.Type] = folder.ID
		}
	}

	return assigned
}

// Decision is the resolved target for one asset.
type Decision struct {
	FolderID    string
	FolderName  string
	Category    types.CategoryType
	Subcategory string // empty when no subcategory claimed the asset
}

// Resolve decides which folder and subcategory an asset belongs to under the
// given configuration snapshot. It returns false for assets the engine does
// not organize: folders, names listed in the exceptions list, and assets
// whose extension yields no category. Filtered categories are checked first
// in folder/category order; an asset no filtered category claims falls back
// to the default assignment map.
func Resolve(cfg *types.VersionedConfig, item types.ItemDescriptor) (Decision, bool) {
	if item.IsFolder {
		return Decision{}, false
	}
	if isException(cfg.Exceptions, item.Name) {
		return Decision{}, false
	}

	ext := item.Extension
	if ext == "" {
		ext = classify.ExtensionOf(item.Name)
	}
	category, ok := classify.Classify(ext, classify.Context{IsSequence: item.IsSequenceMember})
	if !ok {
		return Decision{}, false
	}

	// Skip-organization folders (renders) never receive assets, neither
	// through filters nor through the default assignment.
	folders := make([]types.FolderConfig, 0, len(cfg.Folders))
	for _, folder := range SortFolders(cfg.Folders) {
		if !folder.SkipOrganization {
			folders = append(folders, folder)
		}
	}

	// Explicit filters beat the default assignment. First filtered category
	// of the right type whose filters match the name wins.
	for i := range folders {
		folder := &folders[i]
		for _, cat := range SortCategories(folder.Categories) {
			if !cat.Enabled || cat.Type != category || !cat.HasFilters() {
				continue
			}
			if match.MatchesAny(cat.EffectiveFilters(), item.Name) {
				return Decision{
					FolderID:    folder.ID,
					FolderName:  folder.Name,
					Category:    category,
					Subcategory: resolveSubcategory(&cat, item.Name),
				}, true
			}
		}
	}

	assigned := AssignedCategories(folders)
	folderID, ok := assigned[category]
	if !ok {
		return Decision{}, false
	}

	for i := range folders {
		folder := &folders[i]
		if folder.ID != folderID {
			continue
		}
		decision := Decision{
			FolderID:   folder.ID,
			FolderName: folder.Name,
			Category:   category,
		}
		for _, cat := range SortCategories(folder.Categories) {
			if cat.Enabled && cat.Type == category && !cat.HasFilters() {
				decision.Subcategory = resolveSubcategory(&cat, item.Name)
				break
			}
		}
		return decision, true
	}

	return Decision{}, false
}

// resolveSubcategory picks the first subcategory whose filters match the
// name, then falls back to a single empty-filter subcategory acting as
// catch-all. A slot is catch-all eligible only when it has no competing
// unfiltered sibling.
func resolveSubcategory(cat *types.CategoryConfig, filename string) string {
	var catchAll *types.SubcategoryConfig
	emptyCount := 0
	for i := range cat.Subcategories {
		sub := &cat.Subcategories[i]
		if len(sub.EffectiveFilters()) == 0 {
			emptyCount++
			catchAll = sub
			continue
		}
		if match.Subcategory(sub, filename, false) == match.Matched {
			return sub.Name
		}
	}
	if catchAll != nil && emptyCount == 1 {
		return catchAll.Name
	}
	return ""
}

// MatchesRenderFolder reports whether a name or path belongs to a render
// folder. Render folders are identified by their keywords rather than by
// category; an empty keyword list falls back to the folder's own name.
func MatchesRenderFolder(folder *types.FolderConfig, name string) bool {
	if !folder.IsRenderFolder {
		return false
	}
	lower := strings.ToLower(name)
	if len(folder.RenderKeywords) == 0 {
		return strings.Contains(lower, strings.ToLower(folder.Name))
	}
	for _, kw := range folder.RenderKeywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func isException(exceptions []string, name string) bool {
	for _, exc := range exceptions {
		if strings.EqualFold(exc, name) {
			return true
		}
	}
	return false
}
