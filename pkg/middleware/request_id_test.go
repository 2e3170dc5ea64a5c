package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})
	return app
}

func TestRequestID(t *testing.T) {
	t.Run("Should generate request ID when not provided", func(t *testing.T) {
		resp, err := newTestApp().Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		id := resp.Header.Get(RequestIDHeader)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
	})

	t.Run("Should use provided request ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "test-request-id")

		resp, err := newTestApp().Test(req)
		require.NoError(t, err)

		assert.Equal(t, "test-request-id", resp.Header.Get(RequestIDHeader))
	})
}
