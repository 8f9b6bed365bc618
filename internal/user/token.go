package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// CookieName holds the signed session token.
	CookieName = "token"
	// LocalsKey is where the auth middleware stores the parsed *jwt.Token.
	LocalsKey = "user"
)

// Claims is the identity carried in the session token.
type Claims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// IssueToken signs an HS256 token for u that expires after ttl.
func IssueToken(secret string, u User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ClaimsFromCtx reads the identity stored by Middleware.
func ClaimsFromCtx(c *fiber.Ctx) (Claims, error) {
	tok, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok || tok == nil {
		return Claims{}, fiber.ErrUnauthorized
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fiber.ErrUnauthorized
	}

	var out Claims
	switch v := mc["id"].(type) {
	case float64:
		out.ID = int(v)
	case int:
		out.ID = v
	case int64:
		out.ID = int(v)
	default:
		return Claims{}, fiber.ErrUnauthorized
	}
	out.Email, _ = mc["email"].(string)
	out.Role, _ = mc["role"].(string)
	return out, nil
}
