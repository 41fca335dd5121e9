package isolation

import "github.com/gofiber/fiber/v2"

// Header names and the values applied to every response.
const (
	HeaderOpenerPolicy   = "Cross-Origin-Opener-Policy"
	HeaderEmbedderPolicy = "Cross-Origin-Embedder-Policy"

	OpenerPolicy   = "same-origin"
	EmbedderPolicy = "require-corp"
	CacheControl   = "no-store, no-cache, must-revalidate"
)

// Header is a single fixed response header.
type Header struct {
	Name  string
	Value string
}

// Headers returns the fixed header policy in the order it is applied.
func Headers() []Header {
	return []Header{
		{Name: HeaderOpenerPolicy, Value: OpenerPolicy},
		{Name: HeaderEmbedderPolicy, Value: EmbedderPolicy},
		{Name: fiber.HeaderCacheControl, Value: CacheControl},
	}
}

// Apply sets the fixed headers on the response being built in c.
//
// The app's error handler calls it as well: requests fasthttp rejects before
// routing (oversized headers, malformed request lines, bodies over the limit)
// reach only the error handler and never pass through New.
func Apply(c *fiber.Ctx) {
	for _, h := range Headers() {
		c.Set(h.Name, h.Value)
	}
}

// New returns a middleware that stamps the isolation headers on the response.
//
// The headers are set after the rest of the chain has run, so they replace any
// Cache-Control chosen downstream.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		Apply(c)
		return err
	}
}
