package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the context key holding the request's RayID.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a fresh RayID to every request.
// The ID is only kept in the context; it is never echoed in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalsKey, uuid.NewString())
		return c.Next()
	}
}

// Get returns the RayID of the current request, or an empty string.
func Get(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}
