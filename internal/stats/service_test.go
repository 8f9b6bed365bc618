package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var countsCols = []string{"pets", "orders", "customers"}

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func TestSnapshot_NoOrdersMeansZeroRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("COUNT\\(DISTINCT customer_email\\)").
		WillReturnRows(sqlmock.NewRows(countsCols).AddRow(44, 0, 0))
	mock.ExpectQuery("SELECT amount FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}))

	s, err := NewService(NewSQLRepository(db)).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.TotalRevenue.IsZero() {
		t.Fatalf("expected zero revenue, got %s", s.TotalRevenue)
	}
	if s.TotalPets != 44 || s.TotalOrders != 0 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.Distribution != PlaceholderDistribution {
		t.Fatalf("distribution should be the fixed placeholder, got %+v", s.Distribution)
	}

	raw, _ := json.Marshal(s)
	var decoded map[string]any
	json.Unmarshal(raw, &decoded)
	if decoded["totalRevenue"] != float64(0) {
		t.Fatalf("totalRevenue must encode as a JSON number, got %s", raw)
	}
}

func TestSnapshot_RevenueIsExactSum(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pets").
		WillReturnRows(sqlmock.NewRows(countsCols).AddRow(44, 4, 2))
	mock.ExpectQuery("SELECT amount FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).
			AddRow("1150.40").
			AddRow("0.1").
			AddRow(0.2).
			AddRow([]byte("0.3")))

	s, err := NewService(NewSQLRepository(db)).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.TotalRevenue.Equal(decimal.RequireFromString("1151")) {
		t.Fatalf("expected 1151, got %s", s.TotalRevenue)
	}
	if s.TotalCustomers != 2 {
		t.Fatalf("expected 2 customers, got %d", s.TotalCustomers)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshot_RevenueQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pets").
		WillReturnRows(sqlmock.NewRows(countsCols).AddRow(44, 1, 1))
	mock.ExpectQuery("SELECT amount FROM orders").WillReturnError(sql.ErrConnDone)

	if _, err := NewService(NewSQLRepository(db)).Snapshot(context.Background()); err == nil {
		t.Fatalf("expected revenue query error to surface")
	}
}

func TestGetStats_Handler(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(countsCols).AddRow(1, 2, 1))
	mock.ExpectQuery("SELECT amount").WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow("100").AddRow("250"))

	app := fiber.New()
	NewHandler(NewService(NewSQLRepository(db))).RegisterAdminRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	want := `{"totalPets":1,"totalOrders":2,"totalRevenue":350,"totalCustomers":1,"distribution":{"male":520,"female":728,"imported":150}}`
	if string(body) != want {
		t.Fatalf("unexpected body\n got: %s\nwant: %s", body, want)
	}
}
