package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SQLite has no exact numeric type, so money columns hold decimal text.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		breed TEXT,
		type TEXT,
		gender TEXT,
		color TEXT,
		dob TEXT,
		price REAL NOT NULL DEFAULT 0,
		description TEXT,
		image_url TEXT,
		health_status TEXT,
		vaccination_status TEXT,
		breeder_name TEXT,
		breeder_rating REAL,
		breeder_reviews INTEGER,
		is_available INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		date TEXT NOT NULL,
		status TEXT NOT NULL,
		amount TEXT NOT NULL DEFAULT '0'
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT NOT NULL REFERENCES orders(id),
		pet_id INTEGER,
		pet_name TEXT,
		pet_price TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		breed TEXT,
		type TEXT,
		gender TEXT,
		color TEXT,
		dob TEXT,
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		description TEXT,
		image_url TEXT,
		health_status TEXT,
		vaccination_status TEXT,
		breeder_name TEXT,
		breeder_rating DOUBLE PRECISION,
		breeder_reviews INT,
		is_available INT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		date TEXT NOT NULL,
		status TEXT NOT NULL,
		amount NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		pet_id INT,
		pet_name TEXT,
		pet_price NUMERIC(12,2)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
}

type column struct {
	table, name, ddl string
}

// Columns added after the first release. Older databases get them on startup.
var addedColumns = []column{
	{"orders", "customer_email", "TEXT"},
	{"orders", "customer_phone", "TEXT"},
	{"orders", "address", "TEXT"},
	{"orders", "district", "TEXT"},
	{"orders", "state", "TEXT"},
	{"orders", "pincode", "TEXT"},
	{"orders", "payment_method", "TEXT"},
	{"orders", "created_at", "TEXT"},
	{"order_items", "pet_image", "TEXT"},
	{"order_items", "pet_condition", "TEXT"},
	{"pets", "is_available", "INTEGER NOT NULL DEFAULT 1"},
}

// Migrate creates the schema when missing and adds any later columns.
// It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	for _, col := range addedColumns {
		if driver == DriverPostgres {
			q := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s`, col.table, col.name, col.ddl)
			if _, err := db.ExecContext(ctx, q); err != nil {
				return fmt.Errorf("migrate %s.%s: %w", col.table, col.name, err)
			}
			continue
		}

		exists, err := sqliteHasColumn(ctx, db, col.table, col.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		q := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, col.table, col.name, col.ddl)
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate %s.%s: %w", col.table, col.name, err)
		}
		slog.Info("added column", "table", col.table, "column", col.name)
	}

	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func sqliteHasColumn(ctx context.Context, db *sql.DB, table, name string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			colName   string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if colName == name {
			return true, nil
		}
	}
	return false, rows.Err()
}
