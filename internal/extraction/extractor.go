package extraction

import (
	"context"
	"encoding/json"
	"errors"
)

// DefaultSalaryExpectation is stored when the completion does not yield one.
const DefaultSalaryExpectation = "Not specified"

// Fields is the structured profile data pulled out of a transcript. Every
// field is best-effort; absent or unusable values carry their default.
type Fields struct {
	Skills            []string
	ExperienceYears   float64
	SalaryExpectation string
}

// DefaultFields returns the degraded-result fallback.
func DefaultFields() Fields {
	return Fields{
		Skills:            []string{},
		ExperienceYears:   0,
		SalaryExpectation: DefaultSalaryExpectation,
	}
}

// Extractor pulls structured fields out of a free-form transcript.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (Fields, error)
}

// DecodeFields parses a completion payload into Fields. Each field is decoded
// independently: a missing or wrong-typed field falls back to its default
// instead of poisoning the others. An entirely unparseable payload yields all
// defaults. It never returns an error.
func DecodeFields(raw []byte) Fields {
	out := DefaultFields()

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return out
	}

	if rawSkills, ok := payload["skills"]; ok {
		var skills []string
		if err := json.Unmarshal(rawSkills, &skills); err == nil && skills != nil {
			out.Skills = skills
		}
	}

	if rawYears, ok := payload["experience_years"]; ok {
		var years float64
		if err := json.Unmarshal(rawYears, &years); err == nil && years > 0 {
			out.ExperienceYears = years
		}
	}

	if rawSalary, ok := payload["salary_expectation"]; ok {
		var salary string
		if err := json.Unmarshal(rawSalary, &salary); err == nil && salary != "" {
			out.SalaryExpectation = salary
		}
	}

	return out
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("structured extractor not configured")

// PlaceholderExtractor is a stub implementation until provider wiring is added.
type PlaceholderExtractor struct{}

// Extract returns ErrNotConfigured.
func (PlaceholderExtractor) Extract(ctx context.Context, transcript string) (Fields, error) {
	_ = ctx
	_ = transcript
	return Fields{}, ErrNotConfigured
}
