package category

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func TestGetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT type, COUNT").WillReturnRows(
		sqlmock.NewRows([]string{"type", "count"}).AddRow("Cats", 8).AddRow("Dogs", 9))

	app := fiber.New()
	NewHandler(NewService(NewSQLRepository(db))).RegisterPublicRoutes(app.Group("/api"))

	res, err := app.Test(httptest.NewRequest("GET", "/api/pets/categories", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var items []CategoryItem
	json.NewDecoder(res.Body).Decode(&items)
	if len(items) != 2 || items[1] != (CategoryItem{Type: "Dogs", Count: 9}) {
		t.Fatalf("unexpected items %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetCategories_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT type, COUNT").WillReturnError(errors.New("no such table"))

	app := fiber.New()
	NewHandler(NewService(NewSQLRepository(db))).RegisterPublicRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/pets/categories", nil))
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
}
