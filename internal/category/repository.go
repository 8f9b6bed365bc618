package category

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository provides access to category counts.
type Repository interface {
	List(ctx context.Context) ([]CategoryItem, error)
}

// SQLRepository counts available pets grouped by type.
type SQLRepository struct {
	db *sql.DB
}

const listCategoriesQuery = `
	SELECT type, COUNT(*)
	FROM pets
	WHERE is_available = 1 AND type IS NOT NULL AND type <> ''
	GROUP BY type
	ORDER BY type
`

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) List(ctx context.Context) ([]CategoryItem, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]CategoryItem, 0)
	for rows.Next() {
		var item CategoryItem
		if err := rows.Scan(&item.Type, &item.Count); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
