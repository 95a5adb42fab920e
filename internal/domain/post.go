package domain

import (
	"math"
	"strings"
	"time"
)

type PostState string

const (
	PostStateDraft     PostState = "DRAFT"
	PostStatePublished PostState = "PUBLISHED"
)

// Valid reports whether s is one of the known post states.
func (s PostState) Valid() bool {
	switch s {
	case PostStateDraft, PostStatePublished:
		return true
	}
	return false
}

// Post is a blog entry owned by exactly one author.
type Post struct {
	ID          string
	AuthorID    string
	Author      *User
	Title       string
	Description string
	Body        string
	Tags        []string
	State       PostState
	ReadCount   int64
	ReadingTime int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WordsPerMinute is the reading rate used to estimate reading time.
const WordsPerMinute = 250

// EstimateReadingTime returns the seconds needed to read body, rounded up.
func EstimateReadingTime(body string) int64 {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	minutes := float64(words) / WordsPerMinute
	return int64(math.Ceil(minutes * 60))
}
