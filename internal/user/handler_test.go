package user

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-secret"

func makeAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := NewService(NewInMemoryRepository(nil))
	if _, _, err := svc.EnsureUser(context.Background(), "admin@petshop.com", "admin123", RoleAdmin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	app := fiber.New()
	NewHandler(svc, testSecret, time.Hour, false).RegisterPublicRoutes(app.Group("/api"))
	return app
}

func tokenCookie(res *http.Response) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	return nil
}

func TestLogin_SetsHTTPOnlyCookie(t *testing.T) {
	app := makeAuthApp(t)

	body, _ := json.Marshal(map[string]string{"email": "admin@petshop.com", "password": "admin123"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	ck := tokenCookie(res)
	if ck == nil || ck.Value == "" {
		t.Fatalf("expected token cookie to be set")
	}
	if !ck.HttpOnly {
		t.Errorf("token cookie must be HTTP-only")
	}

	var got map[string]any
	json.NewDecoder(res.Body).Decode(&got)
	if got["role"] != RoleAdmin || got["email"] != "admin@petshop.com" {
		t.Errorf("unexpected login body %v", got)
	}
	if _, leaked := got["password"]; leaked {
		t.Errorf("password hash must not be returned")
	}

	// the cookie authenticates /auth/me
	meReq := httptest.NewRequest("GET", "/api/auth/me", nil)
	meReq.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value})
	meRes, err := app.Test(meReq)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	if meRes.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 from /auth/me, got %d", meRes.StatusCode)
	}
	b, _ := io.ReadAll(meRes.Body)
	if !strings.Contains(string(b), `"role":"admin"`) {
		t.Errorf("me body missing role: %s", b)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	app := makeAuthApp(t)

	body, _ := json.Marshal(map[string]string{"email": "admin@petshop.com", "password": "nope"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	if tokenCookie(res) != nil {
		t.Fatalf("no cookie should be issued on failure")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	app := makeAuthApp(t)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":""}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestMe_WithoutCookie(t *testing.T) {
	app := makeAuthApp(t)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/auth/me", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	app := makeAuthApp(t)

	res, _ := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	ck := tokenCookie(res)
	if ck == nil || ck.Value != "" {
		t.Fatalf("expected cleared token cookie, got %+v", ck)
	}
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", Middleware(testSecret), RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	cases := []struct {
		name string
		user User
		want int
	}{
		{"admin", User{ID: 1, Email: "a@x.io", Role: RoleAdmin}, fiber.StatusOK},
		{"shopper", User{ID: 2, Email: "s@x.io", Role: RoleUser}, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := IssueToken(testSecret, tc.user, time.Minute)
			if err != nil {
				t.Fatalf("issue token: %v", err)
			}
			req := httptest.NewRequest("GET", "/admin", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
			res, _ := app.Test(req)
			if res.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, res.StatusCode)
			}
		})
	}

	forged, _ := IssueToken("other-secret", User{ID: 1, Role: RoleAdmin}, time.Minute)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("token signed with another key must be rejected, got %d", res.StatusCode)
	}
}
