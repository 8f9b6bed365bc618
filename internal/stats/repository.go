package stats

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Totals(ctx context.Context) (Stats, error)
}

type SQLRepository struct {
	db *sql.DB
}

const (
	countsQuery = `
	SELECT
		(SELECT COUNT(*) FROM pets),
		(SELECT COUNT(*) FROM orders),
		(SELECT COUNT(DISTINCT customer_email) FROM orders)
`
	amountsQuery = `SELECT amount FROM orders`
)

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Totals(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx, countsQuery).Scan(&s.TotalPets, &s.TotalOrders, &s.TotalCustomers)
	if err != nil {
		return Stats{}, fmt.Errorf("stats totals: %w", err)
	}

	revenue, err := r.revenue(ctx)
	if err != nil {
		return Stats{}, err
	}
	s.TotalRevenue = revenue
	return s, nil
}

// revenue adds the order amounts in decimal; SQL SUM over SQLite text or
// REAL columns would round through float64.
func (r *SQLRepository) revenue(ctx context.Context) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, amountsQuery)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stats revenue: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.NullDecimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("stats revenue: %w", err)
		}
		if amount.Valid {
			total = total.Add(amount.Decimal)
		}
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("stats revenue: %w", err)
	}
	return total, nil
}
