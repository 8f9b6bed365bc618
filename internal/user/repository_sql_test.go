package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestSQLRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewSQLRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "password", "role"}).
		AddRow(1, "admin@petshop.com", "$2a$10$hash", nil)
	mock.ExpectQuery("SELECT id, email, password, role FROM users").WithArgs("admin@petshop.com").WillReturnRows(rows)
	mock.ExpectQuery("SELECT id, email, password, role FROM users").WithArgs("ghost@petshop.com").WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), "admin@petshop.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 1 || u.Role != RoleUser {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := repo.GetByEmail(context.Background(), "ghost@petshop.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewSQLRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("admin@petshop.com", "hash", RoleAdmin).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Create(context.Background(), User{Email: "admin@petshop.com", Password: "hash", Role: RoleAdmin})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestService_EnsureUserIsIdempotent(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	ctx := context.Background()

	first, created, err := svc.EnsureUser(ctx, "admin@petshop.com", "admin123", RoleAdmin)
	if err != nil || !created {
		t.Fatalf("expected first call to create, created=%v err=%v", created, err)
	}
	second, created, err := svc.EnsureUser(ctx, "admin@petshop.com", "changed", RoleAdmin)
	if err != nil || created {
		t.Fatalf("expected second call to be a no-op, created=%v err=%v", created, err)
	}
	if first.ID != second.ID || first.Password != second.Password {
		t.Fatalf("existing account must be untouched")
	}
	if _, err := svc.Authenticate(ctx, "admin@petshop.com", "admin123"); err != nil {
		t.Fatalf("original password should still work: %v", err)
	}
}
