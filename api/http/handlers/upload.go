package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/foodiet/backend/api/http/presenter"
)

// UploadHandler acknowledges image uploads without storing anything. The
// endpoint exists so clients can be built against the final route; it must
// not be mistaken for a working pipeline.
type UploadHandler struct{}

func NewUploadHandler() *UploadHandler { return &UploadHandler{} }

// Image acknowledges the request.
// @Summary Upload a profile picture (not implemented)
// @Tags    profiles
// @Accept  json
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /upload_image [post]
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "image upload is not implemented yet",
	})
}
