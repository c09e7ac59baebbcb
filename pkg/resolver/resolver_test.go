package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidybin/tidybin/pkg/types"
)

func sourceFolder() types.FolderConfig {
	return types.FolderConfig{
		ID:    "source",
		Name:  "Source",
		Order: 1,
		Categories: []types.CategoryConfig{
			{Type: types.CategoryComps, Enabled: true, Order: 0},
			{Type: types.CategoryFootage, Enabled: true, Order: 1, DetectSequences: true},
			{Type: types.CategoryImages, Enabled: true, Order: 2, DetectSequences: true},
			{Type: types.CategoryAudio, Enabled: true, Order: 3},
		},
	}
}

func TestAssignedCategories(t *testing.T) {
	t.Run("empty input yields empty mapping", func(t *testing.T) {
		assert.Empty(t, AssignedCategories(nil))
		assert.Empty(t, AssignedCategories([]types.FolderConfig{}))
	})

	t.Run("enabled unfiltered categories map to their folder", func(t *testing.T) {
		assigned := AssignedCategories([]types.FolderConfig{sourceFolder()})
		assert.Equal(t, map[types.CategoryType]string{
			types.CategoryComps:   "source",
			types.CategoryFootage: "source",
			types.CategoryImages:  "source",
			types.CategoryAudio:   "source",
		}, assigned)
	})

	t.Run("disabled category never appears", func(t *testing.T) {
		folder := sourceFolder()
		folder.Categories[1].Enabled = false
		assigned := AssignedCategories([]types.FolderConfig{folder})
		assert.NotContains(t, assigned, types.CategoryFootage)
	})

	t.Run("filtered category opts out even when enabled", func(t *testing.T) {
		folder := sourceFolder()
		folder.Categories[1].Filters = []types.SubcategoryFilter{
			{Kind: types.FilterKeyword, Value: "plate"},
		}
		assigned := AssignedCategories([]types.FolderConfig{folder})
		assert.NotContains(t, assigned, types.CategoryFootage)
	})

	t.Run("legacy keywords also opt out", func(t *testing.T) {
		folder := sourceFolder()
		folder.Categories[2].Keywords = []string{"still"}
		assigned := AssignedCategories([]types.FolderConfig{folder})
		assert.NotContains(t, assigned, types.CategoryImages)
	})

	t.Run("duplicate unfiltered type: last folder wins", func(t *testing.T) {
		first := types.FolderConfig{
			ID: "a", Name: "A", Order: 0,
			Categories: []types.CategoryConfig{{Type: types.CategoryAudio, Enabled: true}},
		}
		second := types.FolderConfig{
			ID: "b", Name: "B", Order: 1,
			Categories: []types.CategoryConfig{{Type: types.CategoryAudio, Enabled: true}},
		}
		assigned := AssignedCategories([]types.FolderConfig{first, second})
		assert.Equal(t, "b", assigned[types.CategoryAudio])
	})

	t.Run("invalid category type is ignored", func(t *testing.T) {
		folder := types.FolderConfig{
			ID: "x", Name: "X",
			Categories: []types.CategoryConfig{{Type: "renders", Enabled: true}},
		}
		assert.Empty(t, AssignedCategories([]types.FolderConfig{folder}))
	})
}

func testConfig() *types.VersionedConfig {
	return &types.VersionedConfig{
		Version: types.CurrentConfigVersion,
		Folders: []types.FolderConfig{
			{
				ID: "render", Name: "Render", Order: 0,
				IsRenderFolder:   true,
				RenderKeywords:   []string{"render", "output"},
				SkipOrganization: true,
			},
			sourceFolder(),
			{
				ID: "system", Name: "System", Order: 99,
				Categories: []types.CategoryConfig{
					{Type: types.CategorySolids, Enabled: true},
				},
			},
		},
	}
}

func TestResolve(t *testing.T) {
	cfg := testConfig()

	t.Run("footage goes to source", func(t *testing.T) {
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "1", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "source", decision.FolderID)
		assert.Equal(t, types.CategoryFootage, decision.Category)
	})

	t.Run("image sequence member resolves as footage", func(t *testing.T) {
		decision, ok := Resolve(cfg, types.ItemDescriptor{
			ID: "2", Name: "plate.0001.exr", IsSequenceMember: true,
		})
		require.True(t, ok)
		assert.Equal(t, types.CategoryFootage, decision.Category)
	})

	t.Run("still image resolves as images", func(t *testing.T) {
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "3", Name: "matte.psd"})
		require.True(t, ok)
		assert.Equal(t, types.CategoryImages, decision.Category)
	})

	t.Run("explicit extension wins over filename", func(t *testing.T) {
		decision, ok := Resolve(cfg, types.ItemDescriptor{
			ID: "4", Name: "imported asset", Extension: "wav",
		})
		require.True(t, ok)
		assert.Equal(t, types.CategoryAudio, decision.Category)
	})

	t.Run("folders are never organized", func(t *testing.T) {
		_, ok := Resolve(cfg, types.ItemDescriptor{ID: "5", Name: "Footage", IsFolder: true})
		assert.False(t, ok)
	})

	t.Run("unknown extension yields no decision", func(t *testing.T) {
		_, ok := Resolve(cfg, types.ItemDescriptor{ID: "6", Name: "project.xyz"})
		assert.False(t, ok)
	})

	t.Run("exception names are skipped", func(t *testing.T) {
		cfg := testConfig()
		cfg.Exceptions = []string{"keep_here.mov"}
		_, ok := Resolve(cfg, types.ItemDescriptor{ID: "7", Name: "KEEP_HERE.mov"})
		assert.False(t, ok)
	})

	t.Run("filtered category in another folder wins over default", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders = append(cfg.Folders, types.FolderConfig{
			ID: "plates", Name: "Plates", Order: 2,
			Categories: []types.CategoryConfig{
				{
					Type: types.CategoryFootage, Enabled: true,
					Filters: []types.SubcategoryFilter{
						{Kind: types.FilterKeyword, Value: "plate"},
					},
				},
			},
		})

		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "8", Name: "bg_plate_v3.mov"})
		require.True(t, ok)
		assert.Equal(t, "plates", decision.FolderID)

		decision, ok = Resolve(cfg, types.ItemDescriptor{ID: "9", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "source", decision.FolderID)
	})

	t.Run("skip-organization folders do not claim assets", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders[0].Categories = []types.CategoryConfig{
			{
				Type: types.CategoryFootage, Enabled: true,
				Filters: []types.SubcategoryFilter{
					{Kind: types.FilterKeyword, Value: "clip"},
				},
			},
		}
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "10", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "source", decision.FolderID)
	})

	t.Run("skip-organization folders do not receive default assignments", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders[0].Categories = []types.CategoryConfig{
			{Type: types.CategoryFootage, Enabled: true},
		}

		// The render folder is the only home for Footage, but it is
		// skip-organization: the asset stays unorganized.
		cfg.Folders[1].Categories = nil
		_, ok := Resolve(cfg, types.ItemDescriptor{ID: "11", Name: "clip.mov"})
		assert.False(t, ok)

		// With a normal Footage folder back in play, the asset routes
		// there, never to the render folder.
		cfg = testConfig()
		cfg.Folders[0].Categories = []types.CategoryConfig{
			{Type: types.CategoryFootage, Enabled: true},
		}
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "12", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "source", decision.FolderID)
	})
}

func TestResolveSubcategories(t *testing.T) {
	withSubs := func(subs ...types.SubcategoryConfig) *types.VersionedConfig {
		cfg := testConfig()
		cfg.Folders[1].Categories[1].Subcategories = subs
		return cfg
	}

	t.Run("first matching subcategory wins", func(t *testing.T) {
		cfg := withSubs(
			types.SubcategoryConfig{Name: "Plates", Filters: []types.SubcategoryFilter{
				{Kind: types.FilterKeyword, Value: "plate"},
			}},
			types.SubcategoryConfig{Name: "GoPro", Filters: []types.SubcategoryFilter{
				{Kind: types.FilterPrefix, Value: "GOPR"},
			}},
		)
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "1", Name: "bg_plate.mov"})
		require.True(t, ok)
		assert.Equal(t, "Plates", decision.Subcategory)
	})

	t.Run("single empty subcategory acts as catch-all", func(t *testing.T) {
		cfg := withSubs(
			types.SubcategoryConfig{Name: "Plates", Filters: []types.SubcategoryFilter{
				{Kind: types.FilterKeyword, Value: "plate"},
			}},
			types.SubcategoryConfig{Name: "Other"},
		)
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "2", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "Other", decision.Subcategory)
	})

	t.Run("competing empty subcategories never catch", func(t *testing.T) {
		cfg := withSubs(
			types.SubcategoryConfig{Name: "First"},
			types.SubcategoryConfig{Name: "Second"},
		)
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "3", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "", decision.Subcategory)
	})

	t.Run("no subcategory match leaves it empty", func(t *testing.T) {
		cfg := withSubs(
			types.SubcategoryConfig{Name: "Plates", Filters: []types.SubcategoryFilter{
				{Kind: types.FilterKeyword, Value: "plate"},
			}},
		)
		decision, ok := Resolve(cfg, types.ItemDescriptor{ID: "4", Name: "clip.mov"})
		require.True(t, ok)
		assert.Equal(t, "", decision.Subcategory)
	})
}

func TestMatchesRenderFolder(t *testing.T) {
	render := &types.FolderConfig{
		Name: "Render", IsRenderFolder: true,
		RenderKeywords: []string{"render", "output"},
	}

	assert.True(t, MatchesRenderFolder(render, "final_RENDER_v3.mov"))
	assert.True(t, MatchesRenderFolder(render, "shot_output.mp4"))
	assert.False(t, MatchesRenderFolder(render, "clip.mov"))

	t.Run("non-render folder never matches", func(t *testing.T) {
		plain := &types.FolderConfig{Name: "Source", RenderKeywords: []string{"render"}}
		assert.False(t, MatchesRenderFolder(plain, "render.mov"))
	})

	t.Run("empty keywords fall back to folder name", func(t *testing.T) {
		bare := &types.FolderConfig{Name: "Renders", IsRenderFolder: true}
		assert.True(t, MatchesRenderFolder(bare, "comp_renders_v1.mov"))
		assert.False(t, MatchesRenderFolder(bare, "clip.mov"))
	})
}

func TestResolveDoesNotMutateSnapshot(t *testing.T) {
	cfg := testConfig()
	original := testConfig()

	_, _ = Resolve(cfg, types.ItemDescriptor{ID: "1", Name: "clip.mov"})
	_, _ = Resolve(cfg, types.ItemDescriptor{ID: "2", Name: "matte.psd"})

	assert.Equal(t, original, cfg)
}

func TestCheckConfig(t *testing.T) {
	t.Run("clean config has no warnings", func(t *testing.T) {
		assert.Empty(t, CheckConfig(testConfig()))
	})

	t.Run("duplicate keywords across categories", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders[1].Categories[1].Filters = []types.SubcategoryFilter{
			{Kind: types.FilterKeyword, Value: "VFX"},
		}
		cfg.Folders[1].Categories[2].Filters = []types.SubcategoryFilter{
			{Kind: types.FilterKeyword, Value: "vfx"},
		}

		warnings := CheckConfig(cfg)
		var codes []WarningCode
		for _, w := range warnings {
			codes = append(codes, w.Code)
		}
		// Both Footage and Images flagged.
		assert.Equal(t, []WarningCode{WarnDuplicateKeyword, WarnDuplicateKeyword}, codes)
	})

	t.Run("competing empty subcategories require filters", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders[1].Categories[1].Subcategories = []types.SubcategoryConfig{
			{Name: "First"},
			{Name: "Second"},
		}

		warnings := CheckConfig(cfg)
		require.Len(t, warnings, 2)
		assert.Equal(t, WarnFilterRequired, warnings[0].Code)
		assert.Contains(t, warnings[0].Message, "First")
		assert.Contains(t, warnings[1].Message, "Second")
	})

	t.Run("single empty subcategory is a legal catch-all", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders[1].Categories[1].Subcategories = []types.SubcategoryConfig{
			{Name: "Plates", Filters: []types.SubcategoryFilter{
				{Kind: types.FilterKeyword, Value: "plate"},
			}},
			{Name: "Other"},
		}
		assert.Empty(t, CheckConfig(cfg))
	})

	t.Run("invalid category type is reported", func(t *testing.T) {
		cfg := testConfig()
		cfg.Folders[2].Categories = append(cfg.Folders[2].Categories,
			types.CategoryConfig{Type: "solids", Enabled: true})

		warnings := CheckConfig(cfg)
		require.Len(t, warnings, 1)
		assert.Equal(t, WarnInvalidCategoryType, warnings[0].Code)
		assert.Contains(t, warnings[0].Message, "solids")
	})
}
