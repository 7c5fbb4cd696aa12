package comment

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, listingID uuid.UUID) ([]Comment, error)
	Post(ctx context.Context, userID, listingID uuid.UUID, content string) ([]Comment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, listingID uuid.UUID) ([]Comment, error) {
	out, err := s.repo.ListForListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Comment{}
	}
	return out, nil
}

// Post stores the comment and returns the refreshed thread.
func (s *service) Post(ctx context.Context, userID, listingID uuid.UUID, content string) ([]Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxLength {
		return nil, ErrContentTooLong
	}

	c := &Comment{ListingID: listingID, UserID: userID, Content: content}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.List(ctx, listingID)
}
