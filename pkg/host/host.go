// Package host defines the boundary to the host application bridge: the
// collaborator that enumerates project items, applies renames and reports
// statistics. The core never retries a bridge call; failures are contained
// locally and replaced with safe empty defaults.
package host

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/tidybin/tidybin/pkg/logging"
	"github.com/tidybin/tidybin/pkg/types"
)

// Bridge is the host application's side of the conversation. Calls complete
// or fail as a whole; no ordering is guaranteed between them. Cancellation
// and timeouts belong to the bridge implementation, not to the core.
type Bridge interface {
	// QueryItems returns the currently selected project items.
	QueryItems() ([]types.ItemDescriptor, error)
	// Rename applies a batch of renames inside the host project.
	Rename(pairs []types.RenamePair) (types.RenameResult, error)
	// QueryStats returns the host's project count record.
	QueryStats() (types.ProjectStats, error)
}

// RenameOutcome is the contained result of a rename batch.
type RenameOutcome struct {
	Success bool
	// Diagnostic is the host's error list joined into one human-readable
	// message; empty on success.
	Diagnostic string
	// Items is the refreshed item list after a successful rename.
	Items []types.ItemDescriptor
}

// Resilient wraps a Bridge with the core's containment policy: a failed or
// empty response means "no items", a failed stats query yields the zero
// record, and rename failures surface as a single diagnostic string. The
// caller is never crashed by a bridge failure.
type Resilient struct {
	bridge Bridge
	logger zerolog.Logger
}

// NewResilient wraps the given bridge.
func NewResilient(bridge Bridge) *Resilient {
	return &Resilient{
		bridge: bridge,
		logger: logging.GetLogger("host"),
	}
}

// Items fetches the selected project items, substituting an empty list on
// failure.
func (r *Resilient) Items() []types.ItemDescriptor {
	items, err := r.bridge.QueryItems()
	if err != nil {
		r.logger.Warn().Err(err).Msg("item query failed, treating as no items")
		return nil
	}
	return items
}

// Stats fetches the project statistics, substituting an all-zero record on
// failure.
func (r *Resilient) Stats() types.ProjectStats {
	stats, err := r.bridge.QueryStats()
	if err != nil {
		r.logger.Warn().Err(err).Msg("stats query failed, substituting zero record")
		return types.ProjectStats{}
	}
	return stats
}

// Rename applies a rename batch. On success the item list is refreshed; on
// partial or total failure the host's errors are joined into one diagnostic.
func (r *Resilient) Rename(pairs []types.RenamePair) RenameOutcome {
	result, err := r.bridge.Rename(pairs)
	if err != nil {
		r.logger.Warn().Err(err).Msg("rename failed")
		return RenameOutcome{Diagnostic: err.Error()}
	}
	if !result.Success {
		return RenameOutcome{Diagnostic: strings.Join(result.Errors, "; ")}
	}
	return RenameOutcome{
		Success: true,
		Items:   r.Items(),
	}
}
