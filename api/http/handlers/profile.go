package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/foodiet/backend/api/http/presenter"
	"github.com/foodiet/backend/pkg/profile"
)

type ProfileHandler struct {
	uc profile.UseCase
}

func NewProfileHandler(uc profile.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

type createProfileRequest struct {
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Picture  string  `json:"picture"`
	Location string  `json:"location"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
}

// Create handles profile creation.
// @Summary Create a user profile
// @Description Inserts a new profile into the profile store and returns the assigned identifier.
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   input body createProfileRequest true "profile payload (plus the shared key)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse "missing required fields"
// @Failure 403 {object} presenter.ErrorResponse "wrong or missing key"
// @Failure 500 {object} presenter.ErrorResponse "store failure"
// @Router  /create_profile [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	// The raw object drives the required-field check; the typed request
	// carries the values. Both come from the same buffered body.
	var raw map[string]any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	id, err := h.uc.Create(c.Context(), raw, profile.Profile{
		Name:     req.Name,
		Lastname: req.Lastname,
		Picture:  req.Picture,
		Location: req.Location,
		Age:      req.Age,
		Gender:   req.Gender,
		Height:   req.Height,
		Weight:   req.Weight,
	})
	if err != nil {
		var verr profile.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		// Store errors surface verbatim; see DESIGN.md on the passthrough.
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Profile created",
		"user_id": id.String(),
	})
}
