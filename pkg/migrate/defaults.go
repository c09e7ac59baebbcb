package migrate

import "github.com/tidybin/tidybin/pkg/types"

// DefaultConfig is the compiled-in seed used on first run, already at the
// current schema version.
func DefaultConfig() *types.VersionedConfig {
	return &types.VersionedConfig{
		Version: CurrentVersion,
		Folders: []types.FolderConfig{
			{
				ID:               "render",
				Name:             "Render",
				Order:            0,
				IsRenderFolder:   true,
				RenderKeywords:   []string{"render", "output"},
				SkipOrganization: true,
			},
			{
				ID:    "source",
				Name:  "Source",
				Order: 1,
				Categories: []types.CategoryConfig{
					{Type: types.CategoryComps, Enabled: true, Order: 0},
					{Type: types.CategoryFootage, Enabled: true, Order: 1, DetectSequences: true},
					{Type: types.CategoryImages, Enabled: true, Order: 2, DetectSequences: true},
					{Type: types.CategoryAudio, Enabled: true, Order: 3},
				},
			},
			{
				ID:    "system",
				Name:  "System",
				Order: 99,
				Categories: []types.CategoryConfig{
					{Type: types.CategorySolids, Enabled: true, Order: 0},
				},
			},
		},
		Exceptions:    []string{},
		RenderCompIDs: []string{},
	}
}
