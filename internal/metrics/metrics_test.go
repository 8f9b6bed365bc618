package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/petshop-storefront/internal/notify"
)

func TestMiddleware_LabelsByRoute(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/pets/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrTeapot })

	for _, path := range []string{"/api/pets/1", "/api/pets/2", "/boom"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/api/pets/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/boom", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestObserveEvents(t *testing.T) {
	m := New()
	b := notify.NewBroker()
	stop := m.ObserveEvents(b)

	b.Publish(notify.EventOrderPlaced, nil)
	b.Publish(notify.EventOrderPlaced, nil)
	b.Publish(notify.EventPetAdded, nil)
	stop()
	b.Publish(notify.EventPetAdded, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues(notify.EventOrderPlaced)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(notify.EventPetAdded)))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.TrackViewers(func() int { return 3 })
	app := fiber.New()
	app.Get("/metrics", m.Handler())

	res, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "petshop_ws_viewers 3")
	assert.Contains(t, string(body), "go_goroutines")
}
