package stats

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes expects r to already enforce the admin role.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/stats", h.getStats)
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	s, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		slog.Error("stats snapshot", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
	return c.JSON(s)
}
