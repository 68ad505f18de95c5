package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile describes a single user of the tracker. The ID is assigned by the
// store on insert and never changes afterwards.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Picture   string    `json:"picture"`
	Location  string    `json:"location"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Height    float64   `json:"height"` // centimeters
	Weight    float64   `json:"weight"` // kilograms
	CreatedAt time.Time `json:"createdAt"`
}

// Repository is the port to the profile store. The store guarantees at most
// one row per identifier (id is the primary key).
type Repository interface {
	// Create inserts a profile and returns the identifier the store assigned.
	Create(ctx context.Context, p Profile) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
}

// ErrNotFound is returned when no profile matches the given identifier.
var ErrNotFound = errors.New("profile not found")

// requiredFields lists the attributes a creation payload must carry, in the
// order they are reported back when some are missing.
var requiredFields = []string{"name", "lastname", "picture", "location", "age", "gender", "height", "weight"}

// MissingFields returns the required attributes absent from a raw JSON
// payload, preserving the canonical field order. A nil body misses all of
// them.
func MissingFields(body map[string]any) []string {
	var missing []string
	for _, f := range requiredFields {
		if _, ok := body[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
