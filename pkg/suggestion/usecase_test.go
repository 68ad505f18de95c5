package suggestion

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiet/backend/pkg/profile"
)

type fakeProfiles struct {
	stored map[uuid.UUID]profile.Profile
}

func (f *fakeProfiles) Create(_ context.Context, p profile.Profile) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not used")
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	p, ok := f.stored[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

type fakeModel struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func janeID() (uuid.UUID, *fakeProfiles) {
	id := uuid.New()
	return id, &fakeProfiles{stored: map[uuid.UUID]profile.Profile{
		id: {ID: id, Name: "Jane", Lastname: "Doe", Gender: "F", Age: 30, Height: 165, Weight: 60},
	}}
}

func TestRenderPrompt_SubstitutesLiteralValues(t *testing.T) {
	p := profile.Profile{Gender: "F", Age: 30, Height: 165, Weight: 60.5}
	prompt := RenderPrompt(p)
	assert.Contains(t, prompt, "a F person aged 30, 165 cm tall and weighing 60.5 kg")
	assert.Contains(t, prompt, "daily_calories")
	assert.Contains(t, prompt, "protein_g")
	assert.Contains(t, prompt, "sugar_g")
	assert.Contains(t, prompt, "activity_minutes")
	assert.Contains(t, prompt, "rationale")
}

func TestMoreSuggestions_PassesReplyThroughUnmodified(t *testing.T) {
	id, repo := janeID()
	model := &fakeModel{reply: "{\"daily_calories\": 1800,\n  trailing junk the model added"}
	svc := NewService(repo, model)

	got, err := svc.MoreSuggestions(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.reply, got, "reply is opaque, not parsed or cleaned")
	require.Len(t, model.prompts, 1)
	assert.Equal(t, RenderPrompt(repo.stored[id]), model.prompts[0])
}

func TestMoreSuggestions_UnknownProfileSkipsProvider(t *testing.T) {
	_, repo := janeID()
	model := &fakeModel{reply: "unused"}
	svc := NewService(repo, model)

	_, err := svc.MoreSuggestions(context.Background(), uuid.New())
	assert.ErrorIs(t, err, profile.ErrNotFound)
	assert.Empty(t, model.prompts, "provider must not be called when the profile is missing")
}

func TestMoreSuggestions_ProviderErrorPropagates(t *testing.T) {
	id, repo := janeID()
	model := &fakeModel{err: errors.New("openai http 429: map[error:rate limited]")}
	svc := NewService(repo, model)

	_, err := svc.MoreSuggestions(context.Background(), id)
	assert.EqualError(t, err, "openai http 429: map[error:rate limited]")
}
