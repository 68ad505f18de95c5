package suggestion

import (
	"context"

	"github.com/google/uuid"

	"github.com/foodiet/backend/pkg/llm"
	"github.com/foodiet/backend/pkg/profile"
)

// UseCase produces dietary suggestions for a stored profile.
type UseCase interface {
	// MoreSuggestions fetches the profile, renders the prompt and returns the
	// model's reply as an opaque string. Returns profile.ErrNotFound without
	// touching the provider when no profile matches.
	MoreSuggestions(ctx context.Context, userID uuid.UUID) (string, error)
}

type service struct {
	profiles profile.Repository
	llm      llm.CompletionModel
}

func NewService(profiles profile.Repository, model llm.CompletionModel) UseCase {
	return &service{profiles: profiles, llm: model}
}

func (s *service) MoreSuggestions(ctx context.Context, userID uuid.UUID) (string, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.llm.Complete(ctx, RenderPrompt(p))
}
