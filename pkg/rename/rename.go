// Package rename produces batch-rename previews. The pipeline is a pure
// transformation: literal find/replace, then prefix, then suffix inserted
// ahead of the extension. Applying the rename belongs to the host bridge.
package rename

import (
	"strings"

	"github.com/tidybin/tidybin/pkg/types"
)

// Params are the string transformations applied to each name, in order.
type Params struct {
	FindText    string
	ReplaceText string
	Prefix      string
	Suffix      string
}

// Preview is the proposed new name for one asset.
type Preview struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
	NewName      string `json:"newName"`
}

// Batch is the preview result over a selection of assets.
type Batch struct {
	Previews []Preview `json:"previews"`
	// HasChanges is true iff at least one preview differs from its
	// original name.
	HasChanges bool `json:"hasChanges"`
}

// Apply runs the transformation pipeline over a single name: every literal
// occurrence of FindText is replaced (non-regex), the prefix is prepended,
// and the suffix is inserted immediately before the last dot when that dot
// sits past index 0, else appended at the end.
func Apply(name string, p Params) string {
	result := name

	if p.FindText != "" {
		result = strings.ReplaceAll(result, p.FindText, p.ReplaceText)
	}

	if p.Prefix != "" {
		result = p.Prefix + result
	}

	if p.Suffix != "" {
		dot := strings.LastIndex(result, ".")
		if dot > 0 {
			result = result[:dot] + p.Suffix + result[dot:]
		} else {
			result += p.Suffix
		}
	}

	return result
}

// PreviewBatch produces previews for a selection of assets. Folders are
// excluded from rename batches.
func PreviewBatch(items []types.ItemDescriptor, p Params) Batch {
	var batch Batch
	for _, item := range items {
		if item.IsFolder {
			continue
		}
		preview := Preview{
			ID:           item.ID,
			OriginalName: item.Name,
			NewName:      Apply(item.Name, p),
		}
		if preview.NewName != preview.OriginalName {
			batch.HasChanges = true
		}
		batch.Previews = append(batch.Previews, preview)
	}
	return batch
}
