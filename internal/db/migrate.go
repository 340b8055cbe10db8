package db

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables when they do not exist yet. The unique key on
// attraction_reviews (attraction_id, author_id) backs the one-review-per-author rule.
func Migrate(ctx context.Context, q Querier) error {
	_, err := q.Exec(ctx, schema)
	return err
}
