package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/petshop-storefront/internal/database"
)

type SQLRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	orderExistsQuery = `SELECT COUNT(*) FROM orders WHERE id = $1`
	insertOrderQuery = `
		INSERT INTO orders (id, customer_name, customer_email, customer_phone, address, district, state, pincode,
			payment_method, date, status, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	insertItemQuery = `
		INSERT INTO order_items (order_id, pet_id, pet_name, pet_price, pet_image, pet_condition)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	updateStatusQuery    = `UPDATE orders SET status = $1 WHERE id = $2`
	getPublicOrderQuery  = `SELECT id, customer_name, date, status, amount FROM orders WHERE id = $1`
	listPublicItemsQuery = `SELECT pet_name, pet_price, pet_image FROM order_items WHERE order_id = $1 ORDER BY id`
	listOrdersQuery      = `
		SELECT id, customer_name, customer_email, customer_phone, address, district, state, pincode,
			payment_method, date, status, amount, created_at
		FROM orders
		ORDER BY COALESCE(created_at, '') DESC, id DESC
	`
	listItemsQuery = `
		SELECT id, order_id, pet_id, pet_name, pet_price, pet_image, pet_condition
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
)

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Create writes the order header and its items in one transaction. A taken id
// is reported as ErrDuplicateID and leaves the database untouched.
func (r *SQLRepository) Create(ctx context.Context, o Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var n int
	if err := tx.QueryRowContext(ctx, orderExistsQuery, o.ID).Scan(&n); err != nil {
		return fmt.Errorf("check order id: %w", err)
	}
	if n > 0 {
		return ErrDuplicateID
	}

	_, err = tx.ExecContext(ctx, insertOrderQuery,
		o.ID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Address, o.District, o.State, o.Pincode,
		o.PaymentMethod, o.Date, o.Status, o.Amount, o.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err := tx.ExecContext(ctx, insertItemQuery, o.ID, it.PetID, it.PetName, it.PetPrice, it.PetImage, it.PetCondition)
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", it.PetID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	return nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if _, err := r.db.ExecContext(ctx, updateStatusQuery, status, id); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetPublic(ctx context.Context, id string) (PublicOrder, error) {
	var p PublicOrder
	err := r.db.QueryRowContext(ctx, getPublicOrderQuery, id).Scan(&p.ID, &p.CustomerName, &p.Date, &p.Status, &p.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return PublicOrder{}, ErrNotFound
	}
	if err != nil {
		return PublicOrder{}, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listPublicItemsQuery, id)
	if err != nil {
		return PublicOrder{}, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	p.Items = make([]PublicItem, 0)
	for rows.Next() {
		var (
			it          PublicItem
			name, image sql.NullString
			price       decimal.NullDecimal
		)
		if err := rows.Scan(&name, &price, &image); err != nil {
			return PublicOrder{}, fmt.Errorf("scan order item: %w", err)
		}
		it.PetName = name.String
		it.PetPrice = price.Decimal
		it.PetImage = image.String
		p.Items = append(p.Items, it)
	}
	return p, rows.Err()
}

func (r *SQLRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Items(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, listItemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var (
			it                     Item
			petID                  sql.NullInt64
			name, image, condition sql.NullString
			price                  decimal.NullDecimal
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &petID, &name, &price, &image, &condition); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.PetID = int(petID.Int64)
		it.PetPrice = price.Decimal
		it.PetName = name.String
		it.PetImage = image.String
		it.PetCondition = condition.String
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o                                 Order
		email, phone, address, district   sql.NullString
		state, pincode, payment, createdAt sql.NullString
	)
	err := row.Scan(&o.ID, &o.CustomerName, &email, &phone, &address, &district, &state, &pincode,
		&payment, &o.Date, &o.Status, &o.Amount, &createdAt)
	if err != nil {
		return Order{}, err
	}
	o.CustomerEmail = email.String
	o.CustomerPhone = phone.String
	o.Address = address.String
	o.District = district.String
	o.State = state.String
	o.Pincode = pincode.String
	o.PaymentMethod = payment.String
	o.CreatedAt = createdAt.String
	return o, nil
}
