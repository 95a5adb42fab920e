package repository

import (
	"context"

	"blog-backend/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// FindIDsByName returns the ids of users whose first or last name
	// contains term, ignoring case.
	FindIDsByName(ctx context.Context, term string) ([]string, error)
}
