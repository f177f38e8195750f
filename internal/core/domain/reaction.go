package domain

import "time"

// ReactionKind distinguishes likes from bookmarks; both are per-user toggles
// on a project.
type ReactionKind string

const (
	ReactionLike     ReactionKind = "like"
	ReactionBookmark ReactionKind = "bookmark"
)

// Valid reports whether k is a known reaction kind.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionBookmark
}

// Reaction is a single like or bookmark.
type Reaction struct {
	Kind      ReactionKind `json:"kind"`
	UserID    string       `json:"user_id"`
	ProjectID string       `json:"project_id"`
	CreatedAt time.Time    `json:"created_at"`
}
