package order

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/petshop-storefront/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Post("/orders", h.placeOrder)
	r.Get("/orders/:id", h.getPublicOrder)
	r.Get("/public/orders/:id", h.getPublicOrder)
}

// RegisterAdminRoutes expects r to already enforce the admin role.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/orders", h.listOrders)
	r.Get("/orders/:id/items", h.listItems)
	r.Patch("/orders/:id/status", h.updateStatus)
}

type placeOrderRequest struct {
	CustomerName  string        `json:"customer_name" validate:"required"`
	CustomerEmail string        `json:"customer_email" validate:"required"`
	CustomerPhone string        `json:"customer_phone"`
	Address       string        `json:"address"`
	District      string        `json:"district"`
	State         string        `json:"state"`
	Pincode       string        `json:"pincode"`
	PaymentMethod string        `json:"payment_method"`
	Amount        float64       `json:"amount" validate:"gte=0"`
	Items         []itemRequest `json:"items" validate:"omitempty,dive"`
}

type itemRequest struct {
	ID        int     `json:"id" validate:"gt=0"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	ImageURL  string  `json:"image_url"`
	Condition string  `json:"condition"`
}

func (r placeOrderRequest) toInput() PlaceInput {
	in := PlaceInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Address:       r.Address,
		District:      r.District,
		State:         r.State,
		Pincode:       r.Pincode,
		PaymentMethod: r.PaymentMethod,
		Amount:        decimal.NewFromFloat(r.Amount),
		Items:         make([]ItemInput, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, ItemInput{
			PetID:     it.ID,
			Name:      it.Name,
			Price:     decimal.NewFromFloat(it.Price),
			ImageURL:  it.ImageURL,
			Condition: it.Condition,
		})
	}
	return in
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	payload := new(placeOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validation.Struct(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	o, err := h.service.Place(c.UserContext(), payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrIDConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error(), "retryable": true})
		default:
			return internalError(c, "place order", err)
		}
	}
	return c.JSON(fiber.Map{"id": o.ID})
}

func (h *Handler) getPublicOrder(c *fiber.Ctx) error {
	id := NormalizeID(c.Params("id"))

	o, err := h.service.GetPublic(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		default:
			return internalError(c, "get order", err)
		}
	}
	return c.JSON(o)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext())
	if err != nil {
		return internalError(c, "list orders", err)
	}
	return c.JSON(orders)
}

func (h *Handler) listItems(c *fiber.Ctx) error {
	items, err := h.service.Items(c.UserContext(), NormalizeID(c.Params("id")))
	if err != nil {
		return internalError(c, "list order items", err)
	}
	return c.JSON(items)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validation.Struct(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	id := NormalizeID(c.Params("id"))
	if err := h.service.UpdateStatus(c.UserContext(), id, payload.Status); err != nil {
		slog.Error("update order status", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update status"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func internalError(c *fiber.Ctx, op string, err error) error {
	slog.Error(op, "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}
