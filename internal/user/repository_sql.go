package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wichananm65/petshop-storefront/internal/database"
)

type SQLRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	getUserByEmailQuery = `SELECT id, email, password, role FROM users WHERE email = $1`
	insertUserQuery     = `INSERT INTO users (email, password, role) VALUES ($1, $2, $3) RETURNING id`
)

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserByEmailQuery, email))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) Create(ctx context.Context, u User) (User, error) {
	if u.Role == "" {
		u.Role = RoleUser
	}
	err := r.db.QueryRowContext(ctx, insertUserQuery, u.Email, u.Password, u.Role).Scan(&u.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func scanUser(row rowScanner) (User, error) {
	var (
		u    User
		role sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &role); err != nil {
		return User{}, err
	}
	u.Role = RoleUser
	if role.Valid && role.String != "" {
		u.Role = role.String
	}
	return u, nil
}
