package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

func TestComposeFilter_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", "", 1, 20, 0},
		{"second page", "2", "20", 2, 20, 20},
		{"custom limit", "3", "5", 3, 5, 10},
		{"zero falls back", "0", "0", 1, 20, 0},
		{"negative falls back", "-2", "-1", 1, 20, 0},
		{"garbage falls back", "abc", "x1", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, page, limit := composeFilter(ListQuery{Page: tt.page, Limit: tt.limit})
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, f.Offset)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestComposeFilter_Sort(t *testing.T) {
	f, _, _ := composeFilter(ListQuery{SortBy: "readCount", SortOrder: "asc"})
	assert.Equal(t, repository.SortByReadCount, f.SortBy)
	assert.True(t, f.Ascending)

	f, _, _ = composeFilter(ListQuery{SortBy: "updatedAt"})
	assert.Equal(t, repository.SortByUpdatedAt, f.SortBy)
	assert.False(t, f.Ascending)

	f, _, _ = composeFilter(ListQuery{SortBy: "readingTime", SortOrder: "ASC"})
	assert.False(t, f.Ascending)

	f, _, _ = composeFilter(ListQuery{SortBy: "title", SortOrder: "asc"})
	assert.Equal(t, repository.SortField(""), f.SortBy)
	assert.False(t, f.Ascending)
}

func TestComposeFilter_SearchTerms(t *testing.T) {
	f, _, _ := composeFilter(ListQuery{Title: "go", Tags: "backend"})
	assert.Equal(t, "go", f.Title)
	assert.Equal(t, "backend", f.Tag)
	assert.False(t, f.HasAuthorSearch)
	assert.Empty(t, f.State)
	assert.Empty(t, f.AuthorID)
}

func TestParseState(t *testing.T) {
	state, err := parseState("")
	require.NoError(t, err)
	assert.Empty(t, state)

	state, err = parseState("published")
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatePublished, state)

	_, err = parseState("ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
