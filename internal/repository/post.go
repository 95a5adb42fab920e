package repository

import (
	"context"

	"blog-backend/internal/domain"
)

// SortField names a column posts may be ordered by.
type SortField string

const (
	SortByReadCount   SortField = "readCount"
	SortByReadingTime SortField = "readingTime"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

// PostFilter describes a listing over the post collection.
//
// State and AuthorID are the visibility scope and are always ANDed.
// Title, AuthorIDs and Tag are search terms; when more than one is set
// a post matches if any of them matches.
type PostFilter struct {
	State    domain.PostState
	AuthorID string

	Title string
	// AuthorIDs is only consulted when HasAuthorSearch is set, so an
	// author search that resolved to nobody matches no posts.
	AuthorIDs       []string
	HasAuthorSearch bool
	Tag             string

	SortBy    SortField
	Ascending bool

	Offset int
	Limit  int
}

// PostRepository exposes persistence operations for Post aggregates.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Post, error)
	IncrementReadCount(ctx context.Context, id string) error
	List(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
}
