package pet

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/petshop-storefront/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/pets", h.getPets)
	r.Get("/pets/:id<int>", h.getPet)
}

// RegisterAdminRoutes expects r to already enforce the admin role.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Post("/pets", h.createPet)
	r.Patch("/pets/:id<int>", h.updatePet)
	r.Delete("/pets/:id<int>", h.deletePet)
}

type createPetRequest struct {
	Name              string  `json:"name" validate:"required"`
	Breed             string  `json:"breed"`
	Type              string  `json:"type" validate:"required"`
	Gender            string  `json:"gender"`
	Color             string  `json:"color"`
	DOB               string  `json:"dob"`
	Price             float64 `json:"price" validate:"gte=0"`
	Description       string  `json:"description"`
	ImageURL          string  `json:"image_url"`
	HealthStatus      string  `json:"health_status"`
	VaccinationStatus string  `json:"vaccination_status"`
	BreederName       string  `json:"breeder_name"`
	BreederRating     float64 `json:"breeder_rating" validate:"gte=0,lte=5"`
	BreederReviews    int     `json:"breeder_reviews" validate:"gte=0"`
	IsAvailable       *int    `json:"is_available" validate:"omitempty,oneof=0 1"`
}

func (r createPetRequest) toPet() Pet {
	available := 1
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return Pet{
		Name:              r.Name,
		Breed:             r.Breed,
		Type:              r.Type,
		Gender:            r.Gender,
		Color:             r.Color,
		DOB:               r.DOB,
		Price:             r.Price,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
		HealthStatus:      r.HealthStatus,
		VaccinationStatus: r.VaccinationStatus,
		BreederName:       r.BreederName,
		BreederRating:     r.BreederRating,
		BreederReviews:    r.BreederReviews,
		IsAvailable:       available,
	}
}

func (h *Handler) getPets(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	pets, err := h.service.List(c.UserContext(), f)
	if err != nil {
		return internalError(c, "list pets", err)
	}
	return c.JSON(pets)
}

func (h *Handler) getPet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pet not found"})
		default:
			return internalError(c, "get pet", err)
		}
	}
	return c.JSON(p)
}

func (h *Handler) createPet(c *fiber.Ctx) error {
	payload := new(createPetRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validation.Struct(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(c.UserContext(), payload.toPet())
	if err != nil {
		return internalError(c, "create pet", err)
	}
	return c.JSON(fiber.Map{"id": created.ID})
}

func (h *Handler) updatePet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	patch := new(Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if patch.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}
	if ves := validation.Struct(patch); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.UserContext(), id, *patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pet not found"})
		default:
			return internalError(c, "update pet", err)
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deletePet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pet not found"})
		default:
			return internalError(c, "delete pet", err)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

func filterFromQuery(c *fiber.Ctx) (Filter, error) {
	f := Filter{
		Type:   c.Query("type"),
		Gender: c.Query("gender"),
		Search: strings.TrimSpace(c.Query("search")),
	}

	var err error
	if f.MinPrice, err = floatQuery(c, "minPrice"); err != nil {
		return Filter{}, err
	}
	if f.MaxPrice, err = floatQuery(c, "maxPrice"); err != nil {
		return Filter{}, err
	}

	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return Filter{}, errors.New("ids must be a comma separated list of integers")
			}
			f.IDs = append(f.IDs, id)
		}
	}
	return f, nil
}

func floatQuery(c *fiber.Ctx, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(key + " must be a number")
	}
	return &v, nil
}

func internalError(c *fiber.Ctx, op string, err error) error {
	slog.Error(op, "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}
