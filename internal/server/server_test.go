package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/petshop-storefront/internal/config"
	"github.com/wichananm65/petshop-storefront/internal/database"
	"github.com/wichananm65/petshop-storefront/internal/notify"
	"github.com/wichananm65/petshop-storefront/internal/pet"
	"github.com/wichananm65/petshop-storefront/internal/user"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func testConfig() config.Config {
	return config.Config{
		Env:         "test",
		DBDriver:    database.DriverSQLite,
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		CORSOrigins: "*",
	}
}

func setup(t *testing.T) (*Server, *notify.Broker) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(ctx, db, database.DriverSQLite))

	_, _, err = user.NewService(user.NewSQLRepository(db)).EnsureUser(ctx, "admin@petshop.com", "admin123", user.RoleAdmin)
	require.NoError(t, err)
	_, _, err = user.NewService(user.NewSQLRepository(db)).EnsureUser(ctx, "buyer@petshop.com", "buyer123", user.RoleUser)
	require.NoError(t, err)
	_, err = pet.NewService(pet.NewSQLRepository(db, database.DriverSQLite), nil).Seed(ctx, pet.Catalog)
	require.NoError(t, err)

	broker := notify.NewBroker()
	s := New(testConfig(), db, broker)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s, broker
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	for _, c := range res.Cookies() {
		if c.Name == user.CookieName {
			return &http.Cookie{Name: c.Name, Value: c.Value}
		}
	}
	t.Fatalf("login did not set the %s cookie", user.CookieName)
	return nil
}

func do(t *testing.T, app *fiber.App, method, path, body string, cookie *http.Cookie) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, raw
}

func TestHealth(t *testing.T) {
	s, _ := setup(t)
	res, body := do(t, s.App, "GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCheckoutFlow(t *testing.T) {
	s, broker := setup(t)
	var got []notify.Event
	broker.Subscribe(func(ev notify.Event) { got = append(got, ev) })

	admin := login(t, s.App, "admin@petshop.com", "admin123")

	_, body := do(t, s.App, "GET", "/api/admin/stats", "", admin)
	assert.JSONEq(t, `{"totalPets":44,"totalOrders":0,"totalRevenue":0,"totalCustomers":0,
		"distribution":{"male":520,"female":728,"imported":150}}`, string(body))

	res, body := do(t, s.App, "POST", "/api/orders", `{
		"customer_name":"Somchai","customer_email":"somchai@example.com","customer_phone":"0812345678",
		"address":"1 Sukhumvit Rd","payment_method":"card","amount":350,
		"items":[{"id":1,"name":"Max","price":100},{"id":2,"name":"Bella","price":250}]}`, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode, string(body))
	var placed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &placed))
	assert.Regexp(t, `^#ORD-\d{4}$`, placed.ID)

	escaped := strings.Replace(placed.ID, "#", "%23", 1)
	_, body = do(t, s.App, "GET", "/api/public/orders/"+escaped, "", nil)
	assert.Contains(t, string(body), `"status":"PENDING"`)
	assert.Contains(t, string(body), `"pet_name":"Bella"`)
	assert.NotContains(t, string(body), "somchai@example.com")
	assert.NotContains(t, string(body), "0812345678")

	res, _ = do(t, s.App, "PATCH", "/api/admin/orders/"+escaped+"/status", `{"status":"SHIPPED"}`, admin)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	_, body = do(t, s.App, "GET", "/api/admin/stats", "", admin)
	assert.Contains(t, string(body), `"totalOrders":1,"totalRevenue":350,"totalCustomers":1`)

	require.Len(t, got, 2)
	assert.Equal(t, notify.EventOrderPlaced, got[0].Name)
	assert.Equal(t, notify.EventOrderUpdated, got[1].Name)
}

func TestRevenueIsExactDecimalSum(t *testing.T) {
	s, _ := setup(t)
	admin := login(t, s.App, "admin@petshop.com", "admin123")

	for _, order := range []string{
		`{"customer_name":"Malee","customer_email":"malee@example.com","amount":0.1,"items":[{"id":1,"name":"Max","price":0.1}]}`,
		`{"customer_name":"Niran","customer_email":"niran@example.com","amount":0.2,"items":[{"id":2,"name":"Bella","price":0.2}]}`,
	} {
		res, body := do(t, s.App, "POST", "/api/orders", order, nil)
		require.Equal(t, fiber.StatusOK, res.StatusCode, string(body))
	}

	_, body := do(t, s.App, "GET", "/api/admin/stats", "", admin)
	assert.Contains(t, string(body), `"totalOrders":2,"totalRevenue":0.3,"totalCustomers":2`)

	_, body = do(t, s.App, "GET", "/api/admin/orders", "", admin)
	assert.Contains(t, string(body), `"amount":0.1`)
	assert.Contains(t, string(body), `"amount":0.2`)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s, _ := setup(t)

	res, _ := do(t, s.App, "DELETE", "/api/admin/pets/7", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	buyer := login(t, s.App, "buyer@petshop.com", "buyer123")
	res, _ = do(t, s.App, "DELETE", "/api/admin/pets/7", "", buyer)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	admin := login(t, s.App, "admin@petshop.com", "admin123")
	res, _ = do(t, s.App, "DELETE", "/api/admin/pets/7", "", admin)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, _ = do(t, s.App, "GET", "/api/pets/7", "", nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestCatalogFilters(t *testing.T) {
	s, _ := setup(t)

	_, body := do(t, s.App, "GET", "/api/pets?type=Dogs&maxPrice=1000", "", nil)
	var pets []pet.Pet
	require.NoError(t, json.Unmarshal(body, &pets))
	require.NotEmpty(t, pets)
	for _, p := range pets {
		assert.Equal(t, "Dogs", p.Type)
		assert.LessOrEqual(t, p.Price, 1000.0)
	}

	_, body = do(t, s.App, "GET", "/api/pets?ids=3,1", "", nil)
	require.NoError(t, json.Unmarshal(body, &pets))
	require.Len(t, pets, 2)
	assert.Equal(t, 1, pets[0].ID)

	res, body := do(t, s.App, "GET", "/api/pets/categories", "", nil)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"type":"Dogs"`)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := setup(t)
	do(t, s.App, "GET", "/api/pets", "", nil)

	res, body := do(t, s.App, "GET", "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `petshop_http_requests_total{method="GET",route="/api/pets",status="200"} 1`)
}
