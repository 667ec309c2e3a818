package models

import "time"

// EditMode is the state of the detail view for one viewer and post.
type EditMode int

const (
	ModeViewing EditMode = iota
	ModeEditing
)

func (m EditMode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "viewing"
}

// Draft holds the title and body being edited. A stored draft means the
// viewer's detail view is in ModeEditing.
type Draft struct {
	Key       string    `bson:"_id" json:"key"`
	PostID    string    `bson:"post_id" json:"postId"`
	ViewerID  string    `bson:"viewer_id" json:"viewerId"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Category  string    `bson:"category" json:"category"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
}
