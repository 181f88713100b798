package employers

import (
	"context"
	"sort"
	"strings"

	"hirehand-backend/internal/candidates"
)

// ProfileLister supplies the candidate pool to match against.
type ProfileLister interface {
	List(ctx context.Context) ([]candidates.Profile, error)
}

// Matcher ranks verified candidate profiles against an employer request.
type Matcher struct {
	Profiles ProfileLister
}

// Match returns profiles that fit the request: verified, enough experience
// and at least one skill related to the requested service. Pro workers rank
// first, then newest profiles.
func (m *Matcher) Match(ctx context.Context, req Request) ([]candidates.Profile, error) {
	profiles, err := m.Profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]candidates.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.VerificationStatus != candidates.StatusVerified {
			continue
		}
		if p.ExperienceYears < float64(req.MinExperienceYears) {
			continue
		}
		if !skillsMatchService(p.Skills, req.Service) {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].IsPro != matched[j].IsPro {
			return matched[i].IsPro
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// skillsMatchService does keyword overlap between the declared skills and the
// requested service. Both directions count: "cook" matches "North Indian
// cooking" and "tandoor cooking" matches "cook".
func skillsMatchService(skills []string, service string) bool {
	service = strings.ToLower(strings.TrimSpace(service))
	if service == "" {
		return false
	}
	serviceWords := strings.Fields(service)

	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if strings.Contains(skill, service) || strings.Contains(service, skill) {
			return true
		}
		for _, word := range serviceWords {
			for _, skillWord := range strings.Fields(skill) {
				if strings.HasPrefix(skillWord, word) || strings.HasPrefix(word, skillWord) {
					return true
				}
			}
		}
	}
	return false
}
