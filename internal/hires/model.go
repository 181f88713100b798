package hires

import "time"

// Intent records an employer's decision to hire a specific candidate.
type Intent struct {
	ID            string    `json:"id"`
	EmployerName  string    `json:"employerName"`
	EmployerPhone string    `json:"employerPhone"`
	ProfileID     string    `json:"profileId"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
