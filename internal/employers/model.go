package employers

import "time"

// Request is a staffing request an employer submits to find workers.
type Request struct {
	ID                 string    `json:"id"`
	Phone              string    `json:"phone"`
	Service            string    `json:"service"`
	Locality           string    `json:"locality"`
	GenderPreference   string    `json:"genderPreference,omitempty"`
	HireType           string    `json:"hireType,omitempty"`
	SkillLevel         string    `json:"skillLevel,omitempty"`
	MaxSalary          int64     `json:"maxSalary"`
	MinExperienceYears int       `json:"minExperienceYears"`
	CreatedAt          time.Time `json:"createdAt"`
}
