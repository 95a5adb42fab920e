package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domain"
)

func TestReadPolicy(t *testing.T) {
	draft := &domain.Post{AuthorID: "author", State: domain.PostStateDraft}
	published := &domain.Post{AuthorID: "author", State: domain.PostStatePublished}

	tests := []struct {
		name         string
		identity     string
		post         *domain.Post
		canRead      bool
		countsAsRead bool
	}{
		{"anonymous draft", "", draft, false, true},
		{"stranger draft", "stranger", draft, false, true},
		{"owner draft", "author", draft, true, false},
		{"anonymous published", "", published, true, true},
		{"stranger published", "stranger", published, true, true},
		{"owner published", "author", published, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canRead, canRead(tt.identity, tt.post))
			assert.Equal(t, tt.countsAsRead, countsAsRead(tt.identity, tt.post))
		})
	}
}

func TestAuthorizeModify(t *testing.T) {
	post := &domain.Post{AuthorID: "author"}

	assert.NoError(t, authorizeModify("author", post, "nope"))

	err := authorizeModify("stranger", post, "nope")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.EqualError(t, err, "nope")

	assert.ErrorIs(t, authorizeModify("", post, "nope"), ErrUnauthorized)
}
