package sqlite

import (
	"strings"

	"blog-backend/internal/repository"
)

var sortColumns = map[repository.SortField]string{
	repository.SortByReadCount:   "p.read_count",
	repository.SortByReadingTime: "p.reading_time",
	repository.SortByCreatedAt:   "p.created_at",
	repository.SortByUpdatedAt:   "p.updated_at",
}

// whereClause renders the filter as a WHERE clause. Scope conditions are
// ANDed; search terms are ORed together and then ANDed with the scope.
func whereClause(f repository.PostFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if f.State != "" {
		clauses = append(clauses, "p.state = ?")
		args = append(args, string(f.State))
	}
	if f.AuthorID != "" {
		clauses = append(clauses, "p.author_id = ?")
		args = append(args, f.AuthorID)
	}

	var search []string
	if f.Title != "" {
		search = append(search, `p.title LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(f.Title))
	}
	if f.HasAuthorSearch {
		if len(f.AuthorIDs) == 0 {
			search = append(search, "0")
		} else {
			placeholders := make([]string, len(f.AuthorIDs))
			for i, id := range f.AuthorIDs {
				placeholders[i] = "?"
				args = append(args, id)
			}
			search = append(search, "p.author_id IN ("+strings.Join(placeholders, ",")+")")
		}
	}
	if f.Tag != "" {
		search = append(search, "EXISTS (SELECT 1 FROM json_each(p.tags) WHERE json_each.value = ?)")
		args = append(args, f.Tag)
	}
	if len(search) > 0 {
		clauses = append(clauses, "("+strings.Join(search, " OR ")+")")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// orderClause falls back to insertion order for unknown sort fields.
func orderClause(f repository.PostFilter) string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		return "ORDER BY p.rowid ASC"
	}
	direction := "DESC"
	if f.Ascending {
		direction = "ASC"
	}
	return "ORDER BY " + column + " " + direction + ", p.rowid ASC"
}
