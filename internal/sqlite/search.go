package sqlite

import (
	"context"
	"fmt"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
)

// SearchRepository implements repository.SearchRepository for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Search performs a full-text search over issue text within a project
func (r *SearchRepository) Search(ctx context.Context, projectID, query string, limit int) ([]issue.SearchHit, error) {
	baseQuery := `
		SELECT
			i.id, i.description,
			snippet(issues_fts, 1, '[', ']', '...', 12) as snippet,
			bm25(issues_fts) as rank
		FROM issues_fts
		JOIN issues i ON i.rowid = issues_fts.rowid
		WHERE i.project_id = ? AND issues_fts MATCH ?
		ORDER BY rank
	`

	args := []any{projectID, query}
	if limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}
	defer rows.Close()

	var hits []issue.SearchHit
	for rows.Next() {
		var hit issue.SearchHit
		err := rows.Scan(
			&hit.IssueID,
			&hit.Description,
			&hit.Snippet,
			&hit.Rank,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search hits: %w", err)
	}

	return hits, nil
}
