package service

import (
	"strconv"
	"strings"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// ListQuery carries the raw, untrusted listing parameters of a request.
type ListQuery struct {
	Page      string
	Limit     string
	Title     string
	Author    string
	Tags      string
	SortBy    string
	SortOrder string
	// State is only honoured when listing the caller's own posts.
	State string
}

// PostPage is one window of a listing plus the pre-pagination total.
type PostPage struct {
	Posts      []domain.Post
	Page       int
	Limit      int
	TotalItems int
}

var sortable = map[string]repository.SortField{
	string(repository.SortByReadCount):   repository.SortByReadCount,
	string(repository.SortByReadingTime): repository.SortByReadingTime,
	string(repository.SortByCreatedAt):   repository.SortByCreatedAt,
	string(repository.SortByUpdatedAt):   repository.SortByUpdatedAt,
}

// parsePositive returns fallback for anything that is not an integer >= 1.
func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// composeFilter turns q into a repository filter without a visibility
// scope; callers add the scope and, for author searches, the resolved ids.
func composeFilter(q ListQuery) (repository.PostFilter, int, int) {
	page := parsePositive(q.Page, DefaultPage)
	limit := parsePositive(q.Limit, DefaultLimit)

	filter := repository.PostFilter{
		Title:  q.Title,
		Tag:    q.Tags,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if field, ok := sortable[q.SortBy]; ok {
		filter.SortBy = field
		filter.Ascending = q.SortOrder == "asc"
	}
	return filter, page, limit
}

func parseState(raw string) (domain.PostState, error) {
	if raw == "" {
		return "", nil
	}
	state := domain.PostState(strings.ToUpper(strings.TrimSpace(raw)))
	if !state.Valid() {
		return "", newError(ErrInvalidInput, "Invalid state - "+raw)
	}
	return state, nil
}
