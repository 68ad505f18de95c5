package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/foodiet/backend/api/http/presenter"
	"github.com/foodiet/backend/pkg/profile"
	"github.com/foodiet/backend/pkg/suggestion"
)

type SuggestionHandler struct {
	uc suggestion.UseCase
}

func NewSuggestionHandler(uc suggestion.UseCase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

type suggestionsRequest struct {
	UserID string `json:"user_id"`
}

// More handles dietary suggestion requests.
// @Summary Generate dietary suggestions for a profile
// @Description Fetches the stored profile and asks the completion provider for daily dietary targets. The provider's reply is returned verbatim.
// @Tags    suggestions
// @Accept  json
// @Produce json
// @Param   input body suggestionsRequest true "user identifier (plus the shared key)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse "missing user_id"
// @Failure 403 {object} presenter.ErrorResponse "wrong or missing key"
// @Failure 404 {object} presenter.ErrorResponse "profile not found"
// @Failure 500 {object} presenter.ErrorResponse "provider failure"
// @Router  /get_more_suggestions [post]
func (h *SuggestionHandler) More(c *fiber.Ctx) error {
	var req suggestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return presenter.Error(c, http.StatusBadRequest, "missing user_id")
	}
	// An id that is not a UUID cannot match any stored profile.
	id, err := uuid.Parse(req.UserID)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	}

	result, err := h.uc.MoreSuggestions(c.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		// Provider errors surface verbatim; see DESIGN.md on the passthrough.
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "OpenAI was successfully requested",
		"result":  result,
	})
}
