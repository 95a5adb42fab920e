package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/domain"
	"blog-backend/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id TEXT PRIMARY KEY,
	author_id TEXT NOT NULL,
	title TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL,
	body TEXT NOT NULL,
	tags TEXT NOT NULL DEFAULT '[]',
	state TEXT NOT NULL DEFAULT 'DRAFT',
	read_count INTEGER NOT NULL DEFAULT 0,
	reading_time INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY(author_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id);
CREATE INDEX IF NOT EXISTS idx_posts_state ON posts(state);
`

const selectPosts = `
SELECT p.id, p.author_id, p.title, p.description, p.body, p.tags, p.state, p.read_count, p.reading_time, p.created_at, p.updated_at,
	u.id, u.email, u.first_name, u.last_name, u.created_at, u.updated_at
FROM posts p
JOIN users u ON u.id = p.author_id
`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	tags, err := encodeTags(post.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO posts (id, author_id, title, description, body, tags, state, read_count, reading_time, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Description,
		post.Body,
		tags,
		string(post.State),
		post.ReadCount,
		post.ReadingTime,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert post %q: %w", post.Title, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// Update overwrites the client-editable fields of post. Author, read
// count and creation time are left as stored.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	post.UpdatedAt = time.Now().UTC()

	tags, err := encodeTags(post.Tags)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE posts
SET title=?, description=?, body=?, tags=?, state=?, reading_time=?, updated_at=?
WHERE id=?`,
		post.Title,
		post.Description,
		post.Body,
		tags,
		string(post.State),
		post.ReadingTime,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update post %q: %w", post.Title, repository.ErrDuplicate)
		}
		return fmt.Errorf("update post: %w", err)
	}
	return expectAffected(res, "update post")
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return expectAffected(res, "delete post")
}

// IncrementReadCount bumps the counter without touching updated_at.
func (r *PostRepository) IncrementReadCount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE posts SET read_count = read_count + 1 WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("increment read count: %w", err)
	}
	return expectAffected(res, "increment read count")
}

func (r *PostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, selectPosts+`WHERE p.id = ?`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context, filter repository.PostFilter) ([]domain.Post, error) {
	where, args := whereClause(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := selectPosts + where + "\n" + orderClause(filter) + "\nLIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Count(ctx context.Context, filter repository.PostFilter) (int, error) {
	where, args := whereClause(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts p `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}

func scanPost(scanner interface {
	Scan(dest ...any) error
}) (*domain.Post, error) {
	var (
		post   domain.Post
		author domain.User
		tags   string
		state  string
	)

	if err := scanner.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Description,
		&post.Body,
		&tags,
		&state,
		&post.ReadCount,
		&post.ReadingTime,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.ID,
		&author.Email,
		&author.FirstName,
		&author.LastName,
		&author.CreatedAt,
		&author.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &post.Tags); err != nil {
		return nil, fmt.Errorf("decode post tags: %w", err)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.State = domain.PostState(state)
	post.Author = &author
	return &post, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode post tags: %w", err)
	}
	return string(raw), nil
}

func expectAffected(res sql.Result, op string) error {
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if aff == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
