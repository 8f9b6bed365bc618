package pet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/wichananm65/petshop-storefront/internal/database"
)

type SQLRepository struct {
	db     *sql.DB
	driver string
}

type rowScanner interface {
	Scan(dest ...any) error
}

const petColumns = `id, name, breed, type, gender, color, dob, price, description, image_url,
		health_status, vaccination_status, breeder_name, breeder_rating, breeder_reviews, is_available`

const (
	listPetsQuery   = `SELECT ` + petColumns + ` FROM pets WHERE 1=1`
	getPetByIDQuery = `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	insertPetQuery  = `
		INSERT INTO pets (name, breed, type, gender, color, dob, price, description, image_url,
			health_status, vaccination_status, breeder_name, breeder_rating, breeder_reviews, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	updatePetQuery = `
		UPDATE pets
		SET price = COALESCE($1, price),
			is_available = COALESCE($2, is_available)
		WHERE id = $3
	`
	deletePetQuery = `DELETE FROM pets WHERE id = $1`
	petExistsQuery = `SELECT COUNT(*) FROM pets WHERE name = $1 AND breed = $2`
)

func NewSQLRepository(db *sql.DB, driver string) *SQLRepository {
	return &SQLRepository{db: db, driver: driver}
}

// listQuery builds the filtered catalog query. Placeholders are numbered in
// order of first use so the same text works for SQLite and Postgres.
func (r *SQLRepository) listQuery(f Filter) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sb.WriteString(listPetsQuery)
	if f.typeSet() {
		sb.WriteString(" AND type = " + next(f.Type))
	}
	if f.genderSet() {
		sb.WriteString(" AND gender = " + next(f.Gender))
	}
	if f.MinPrice != nil {
		sb.WriteString(" AND price >= " + next(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		sb.WriteString(" AND price <= " + next(*f.MaxPrice))
	}
	if f.Search != "" {
		p := next("%" + strings.ToLower(f.Search) + "%")
		sb.WriteString(" AND (LOWER(name) LIKE " + p +
			" OR LOWER(COALESCE(breed, '')) LIKE " + p +
			" OR LOWER(COALESCE(description, '')) LIKE " + p + ")")
	}
	if len(f.IDs) > 0 {
		if r.driver == database.DriverPostgres {
			sb.WriteString(" AND id = ANY(" + next(pq.Array(f.IDs)) + ")")
		} else {
			start := len(args) + 1
			for _, id := range f.IDs {
				args = append(args, id)
			}
			sb.WriteString(" AND id IN (" + database.Placeholders(start, len(f.IDs)) + ")")
		}
	}
	sb.WriteString(" ORDER BY id")
	return sb.String(), args
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Pet, error) {
	q, args := r.listQuery(f)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLRepository) GetByID(ctx context.Context, id int) (Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx, getPetByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Pet{}, ErrNotFound
	}
	if err != nil {
		return Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

func (r *SQLRepository) Create(ctx context.Context, p Pet) (Pet, error) {
	err := r.db.QueryRowContext(ctx, insertPetQuery,
		p.Name, p.Breed, p.Type, p.Gender, p.Color, p.DOB, p.Price, p.Description, p.ImageURL,
		p.HealthStatus, p.VaccinationStatus, p.BreederName, p.BreederRating, p.BreederReviews, p.IsAvailable,
	).Scan(&p.ID)
	if err != nil {
		return Pet{}, fmt.Errorf("insert pet: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) Update(ctx context.Context, id int, patch Patch) (Pet, error) {
	res, err := r.db.ExecContext(ctx, updatePetQuery, patch.Price, patch.IsAvailable, id)
	if err != nil {
		return Pet{}, fmt.Errorf("update pet %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Pet{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SQLRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deletePetQuery, id)
	if err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) Exists(ctx context.Context, name, breed string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, petExistsQuery, name, breed).Scan(&n); err != nil {
		return false, fmt.Errorf("pet exists: %w", err)
	}
	return n > 0, nil
}

func scanPet(row rowScanner) (Pet, error) {
	var (
		p                                       Pet
		breed, typ, gender, color, dob          sql.NullString
		desc, img, health, vaccination, breeder sql.NullString
		rating                                  sql.NullFloat64
		reviews, available                      sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.Name, &breed, &typ, &gender, &color, &dob, &p.Price, &desc, &img,
		&health, &vaccination, &breeder, &rating, &reviews, &available)
	if err != nil {
		return Pet{}, err
	}
	p.Breed = breed.String
	p.Type = typ.String
	p.Gender = gender.String
	p.Color = color.String
	p.DOB = dob.String
	p.Description = desc.String
	p.ImageURL = img.String
	p.HealthStatus = health.String
	p.VaccinationStatus = vaccination.String
	p.BreederName = breeder.String
	p.BreederRating = rating.Float64
	p.BreederReviews = int(reviews.Int64)
	p.IsAvailable = 1
	if available.Valid {
		p.IsAvailable = int(available.Int64)
	}
	return p, nil
}
