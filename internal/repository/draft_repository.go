package repository

import (
	"context"
	"errors"
	"fmt"

	"board-web/internal/models"

	"github.com/cespare/xxhash/v2"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore keeps edit drafts between requests. Save stamps UpdatedAt and
// ExpiresAt; expired drafts are reported as ErrDraftNotFound.
type DraftStore interface {
	Get(ctx context.Context, key string) (*models.Draft, error)
	Save(ctx context.Context, d models.Draft) error
	Delete(ctx context.Context, key string) error
}

// DraftKey derives the storage key for a viewer's draft of a post. The key
// is short, fixed-width and safe for every backend.
func DraftKey(viewerID, postID string) string {
	return fmt.Sprintf("draft:%016x", xxhash.Sum64String(viewerID+"\x00"+postID))
}
