package comment

import (
	"time"

	"github.com/google/uuid"
)

// MaxLength bounds a single comment body in runes.
const MaxLength = 1000

type Comment struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	UserID       uuid.UUID `json:"user_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorName   *string   `json:"author_name"`
	AuthorAvatar *string   `json:"author_avatar"`
}
