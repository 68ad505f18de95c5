package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UseCase covers profile creation and lookup.
type UseCase interface {
	Create(ctx context.Context, body map[string]any, p Profile) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// Create checks that all required attributes are present in the raw payload
// and inserts the typed record. Values go to the store verbatim; no range or
// format checks happen at this layer.
func (s *service) Create(ctx context.Context, body map[string]any, p Profile) (uuid.UUID, error) {
	if missing := MissingFields(body); len(missing) > 0 {
		return uuid.Nil, ErrValidation("missing required fields: " + strings.Join(missing, ", "))
	}
	return s.repo.Create(ctx, p)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// ErrValidation signals an incomplete creation payload.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
