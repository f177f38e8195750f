package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is a remark left on a project. Replies reference their parent
// through ParentID and are nested one level deep when listed.
type Comment struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"project_id"`
	UserID          string     `json:"user_id"`
	Author          *Author    `json:"user,omitempty"`
	Content         string     `json:"content"`
	ParentID        string     `json:"parent_comment_id,omitempty"`
	MentionedUserID string     `json:"mentioned_user_id,omitempty"`
	IsDeleted       bool       `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	Replies         []*Comment `json:"replies"`
}

// ThreadComments arranges a flat list into root comments with their replies
// attached. Replies whose parent is not in the list are dropped. Input order
// is preserved among siblings.
func ThreadComments(flat []*Comment) []*Comment {
	byID := make(map[string]*Comment, len(flat))
	for _, c := range flat {
		c.Replies = []*Comment{}
		byID[c.ID] = c
	}

	roots := make([]*Comment, 0, len(flat))
	for _, c := range flat {
		if c.ParentID == "" {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	return roots
}
