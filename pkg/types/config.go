package types

// CurrentConfigVersion is the schema version this build reads and writes.
// Persisted documents at a lower version must pass through the migrator
// before any resolver use; higher versions are rejected.
const CurrentConfigVersion = 5

// SubcategoryConfig is a free-form subdivision inside a category. Legacy
// documents may carry raw Extensions/Keywords lists instead of Filters;
// EffectiveFilters resolves that lazily without touching the stored fields.
type SubcategoryConfig struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Filters          []SubcategoryFilter `json:"filters,omitempty"`
	CreateSubfolders bool                `json:"createSubfolders"`
	EnableLabelColor bool                `json:"enableLabelColor"`
	LabelColor       int                 `json:"labelColor,omitempty"` // 1..16 when EnableLabelColor

	// Legacy pre-filter schema fields, preserved verbatim for round-trip
	// fidelity of unmodified records.
	Extensions []string `json:"extensions,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// EffectiveFilters returns the subcategory's filters, reading legacy
// Extensions/Keywords lists as filters when the unified field is empty.
func (s *SubcategoryConfig) EffectiveFilters() []SubcategoryFilter {
	if len(s.Filters) > 0 {
		return s.Filters
	}
	return FiltersFromLegacy(s.Extensions, s.Keywords)
}

// CategoryConfig binds a category type to a folder with ordering and options.
// A category carrying non-empty filters or keywords opts out of the default
// "one category maps to exactly one folder" assignment: filtered categories
// may legally repeat the same type across folders.
type CategoryConfig struct {
	Type             CategoryType        `json:"type"`
	Enabled          bool                `json:"enabled"`
	Order            int                 `json:"order"`
	CreateSubfolders bool                `json:"createSubfolders"`
	DetectSequences  bool                `json:"detectSequences,omitempty"`
	Filters          []SubcategoryFilter `json:"filters,omitempty"`
	Keywords         []string            `json:"keywords,omitempty"`
	Subcategories    []SubcategoryConfig `json:"subcategories,omitempty"`
}

// HasFilters reports whether the category carries any explicit filters or
// legacy keywords, which excludes it from the exclusive assignment map.
func (c *CategoryConfig) HasFilters() bool {
	return len(c.Filters) > 0 || len(c.Keywords) > 0
}

// EffectiveFilters returns the category's filters, reading legacy keyword
// lists as filters when the unified field is empty.
func (c *CategoryConfig) EffectiveFilters() []SubcategoryFilter {
	if len(c.Filters) > 0 {
		return c.Filters
	}
	return FiltersFromLegacy(nil, c.Keywords)
}

// FolderConfig is one target folder in the organization hierarchy.
type FolderConfig struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Order            int              `json:"order"`
	IsRenderFolder   bool             `json:"isRenderFolder"`
	RenderKeywords   []string         `json:"renderKeywords,omitempty"`
	SkipOrganization bool             `json:"skipOrganization,omitempty"`
	Categories       []CategoryConfig `json:"categories"`
}

// Settings is the flat record of user preferences. New keys must default
// safely to off/auto when absent so that extending this record never
// requires a schema version bump.
type Settings struct {
	DeleteEmptyFolders bool   `json:"deleteEmptyFolders"`
	ShowStats          bool   `json:"showStats"`
	IsolateMissing     bool   `json:"isolateMissing"`
	IsolateUnused      bool   `json:"isolateUnused"`
	ApplyLabelColor    bool   `json:"applyLabelColor"`
	Language           string `json:"language,omitempty"` // empty means auto
}

// VersionedConfig is the whole persisted rule set, versioned as one unit.
type VersionedConfig struct {
	Version       int            `json:"version"`
	Folders       []FolderConfig `json:"folders"`
	Exceptions    []string       `json:"exceptions"`
	RenderCompIDs []string       `json:"renderCompIds"`
	Settings      Settings       `json:"settings"`
}
