package rayid_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"scrabble-devserver/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.Get(c))
	})

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		id := string(body)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.False(t, seen[id], "ray id reused")
		seen[id] = true

		for name := range resp.Header {
			assert.NotContains(t, resp.Header.Get(name), id)
		}
	}
}

func TestGet_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.Get(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, string(body))
}
