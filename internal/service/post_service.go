package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

const (
	minTitleLength       = 3
	minDescriptionLength = 10
)

// PostInput is the client-supplied content of a post. Update treats it as
// a full replacement, so omitted tags and state fall back to their defaults.
type PostInput struct {
	Title       string
	Description string
	Body        string
	Tags        []string
	State       string
}

// PostService coordinates post lifecycle and visibility rules.
// An empty identity is an anonymous caller.
type PostService interface {
	Create(ctx context.Context, identity string, in PostInput) (*domain.Post, error)
	Update(ctx context.Context, identity, id string, in PostInput) (*domain.Post, error)
	Delete(ctx context.Context, identity, id string) error
	Read(ctx context.Context, identity, id string) (*domain.Post, error)
	ListPublished(ctx context.Context, q ListQuery) (*PostPage, error)
	ListOwn(ctx context.Context, identity string, q ListQuery) (*PostPage, error)
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{
		posts: posts,
		users: users,
	}
}

func (s *postService) Create(ctx context.Context, identity string, in PostInput) (*domain.Post, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	post, err := buildPost(in)
	if err != nil {
		return nil, err
	}
	post.ID = uuid.NewString()
	post.AuthorID = identity

	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errTitleTaken
		}
		return nil, err
	}
	return s.get(ctx, post.ID)
}

func (s *postService) Update(ctx context.Context, identity, id string, in PostInput) (*domain.Post, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	next, err := buildPost(in)
	if err != nil {
		return nil, err
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeModify(identity, current, "You can update only your own posts"); err != nil {
		return nil, err
	}

	next.ID = current.ID
	next.AuthorID = current.AuthorID
	if err := s.posts.Update(ctx, next); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, errTitleTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, errPostNotFound
		}
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *postService) Delete(ctx context.Context, identity, id string) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	post, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeModify(identity, post, "You can only delete your own posts"); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errPostNotFound
		}
		return err
	}
	return nil
}

// Read returns the post if identity may see it. Reads by anyone other than
// the author increment the read count before the post is returned; the
// increment is best-effort under concurrent reads.
func (s *postService) Read(ctx context.Context, identity, id string) (*domain.Post, error) {
	post, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canRead(identity, post) {
		return nil, errPostNotFound
	}
	if countsAsRead(identity, post) {
		if err := s.posts.IncrementReadCount(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, errPostNotFound
			}
			return nil, err
		}
		post.ReadCount++
	}
	return post, nil
}

func (s *postService) ListPublished(ctx context.Context, q ListQuery) (*PostPage, error) {
	filter, page, limit := composeFilter(q)
	filter.State = domain.PostStatePublished

	if term := q.Author; term != "" {
		ids, err := s.users.FindIDsByName(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("resolve author %q: %w", term, err)
		}
		filter.HasAuthorSearch = true
		filter.AuthorIDs = ids
	}
	return s.list(ctx, filter, page, limit)
}

func (s *postService) ListOwn(ctx context.Context, identity string, q ListQuery) (*PostPage, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	state, err := parseState(q.State)
	if err != nil {
		return nil, err
	}

	filter, page, limit := composeFilter(q)
	filter.AuthorID = identity
	filter.State = state
	return s.list(ctx, filter, page, limit)
}

func (s *postService) list(ctx context.Context, filter repository.PostFilter, page, limit int) (*PostPage, error) {
	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PostPage{
		Posts:      posts,
		Page:       page,
		Limit:      limit,
		TotalItems: total,
	}, nil
}

func (s *postService) get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errPostNotFound
		}
		return nil, err
	}
	if post.Author != nil {
		post.Author = sanitizeUser(post.Author)
	}
	return post, nil
}

// buildPost validates in and derives the reading time. Validation happens
// before any lookup so a bad payload never reaches the store.
func buildPost(in PostInput) (*domain.Post, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	if err := requireFields(
		field{"title", title},
		field{"description", description},
		field{"body", in.Body},
	); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(title) < minTitleLength {
		return nil, newError(ErrInvalidInput, fmt.Sprintf("Title must contain at least %d characters.", minTitleLength))
	}
	if utf8.RuneCountInString(description) < minDescriptionLength {
		return nil, newError(ErrInvalidInput, fmt.Sprintf("Description must contain at least %d characters.", minDescriptionLength))
	}

	state := domain.PostStateDraft
	if in.State != "" {
		state = domain.PostState(in.State)
		if !state.Valid() {
			return nil, newError(ErrInvalidInput, "Invalid state - "+in.State)
		}
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Post{
		Title:       title,
		Description: description,
		Body:        in.Body,
		Tags:        tags,
		State:       state,
		ReadingTime: domain.EstimateReadingTime(in.Body),
	}, nil
}
