package search

import (
	"strings"

	"github.com/samber/lo"

	"github.com/tunepeek/tunepeek/internal/types"
)

// ValidPlaylists drops playlist entries the catalog still lists but that are
// partially deleted or private: no usable name, the literal string "null" as
// a name, or no owner display name.
func ValidPlaylists(playlists []types.Playlist) []types.Playlist {
	return lo.Filter(playlists, func(p types.Playlist, _ int) bool {
		name := strings.TrimSpace(p.Name)
		if name == "" || name == "null" {
			return false
		}
		owner := strings.TrimSpace(p.Owner.DisplayName)
		if owner == "" || owner == "null" {
			return false
		}
		return true
	})
}
