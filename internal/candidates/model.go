package candidates

import "time"

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Profile is the structured candidate record produced by one onboarding
// pipeline run. It is written once, in full; only the admin review flow
// touches VerificationStatus and IsPro afterwards.
type Profile struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	FaceMatchScore     float64   `json:"faceMatchScore"`
	IDImageURL         string    `json:"idImageUrl"`
	AudioURL           string    `json:"audioUrl"`
	Transcript         string    `json:"transcript"`
	Skills             []string  `json:"skills"`
	ExperienceYears    float64   `json:"experienceYears"`
	SalaryExpectation  string    `json:"salaryExpectation"`
	VerificationStatus string    `json:"verificationStatus"`
	IsPro              bool      `json:"isPro"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ValidStatus reports whether s is a known verification status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	default:
		return false
	}
}
