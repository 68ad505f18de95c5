package suggestion

import (
	"fmt"

	"github.com/foodiet/backend/pkg/profile"
)

// promptTemplate instructs the model to answer with a bare JSON object. The
// reply is passed through to the caller as-is; nothing here parses it.
const promptTemplate = "You are a nutrition assistant. For a %s person aged %d, %g cm tall and weighing %g kg, " +
	"suggest daily dietary targets. Answer with a single JSON object with the fields: " +
	"daily_calories (number), protein_g (number), sugar_g (number), activity_minutes (number), rationale (string). " +
	"No markdown, no explanations outside the JSON."

// RenderPrompt substitutes the profile's gender, age, height and weight as
// literal values into the fixed template.
func RenderPrompt(p profile.Profile) string {
	return fmt.Sprintf(promptTemplate, p.Gender, p.Age, p.Height, p.Weight)
}
