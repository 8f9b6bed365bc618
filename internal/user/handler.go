package user

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/petshop-storefront/internal/validation"
)

type Handler struct {
	service      *Service
	secret       string
	tokenTTL     time.Duration
	secureCookie bool
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewHandler(service *Service, secret string, tokenTTL time.Duration, secureCookie bool) *Handler {
	return &Handler{service: service, secret: secret, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", Middleware(h.secret), h.me)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validation.Struct(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	u, err := h.service.Authenticate(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}

	signed, err := IssueToken(h.secret, u, h.tokenTTL)
	if err != nil {
		slog.Error("sign token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	c.Cookie(h.sessionCookie(signed, time.Now().Add(h.tokenTTL)))
	return c.JSON(u)
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) me(c *fiber.Ctx) error {
	claims, err := ClaimsFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	return c.JSON(claims)
}

// Cross-site cookies need SameSite=None, which browsers only accept with Secure.
func (h *Handler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteLaxMode
	if h.secureCookie {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: sameSite,
	}
}
