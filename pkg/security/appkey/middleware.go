package appkey

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// New returns a Fiber middleware that requires the JSON request body to carry
// a "key" field matching the configured application secret. A missing body, a
// missing key and a wrong key are all the same failure from the caller's
// point of view. The body stays buffered, so handlers downstream parse it
// again themselves.
func New(secret string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		var body map[string]any
		if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
			return reject(c)
		}
		key, _ := body["key"].(string)
		if key == "" {
			return reject(c)
		}
		if subtle.ConstantTimeCompare([]byte(key), secretBytes) != 1 {
			return reject(c)
		}
		return c.Next()
	}
}

func reject(c *fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "incorrect credentials"})
}
