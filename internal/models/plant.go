package models

import "time"

// HealthStatus is the overall health assessment of a plant.
type HealthStatus string

const (
	StatusThriving   HealthStatus = "Thriving"
	StatusRecovering HealthStatus = "Recovering"
	StatusCritical   HealthStatus = "Critical"
)

// ValidHealthStatuses contains all valid health status values
var ValidHealthStatuses = []HealthStatus{
	StatusThriving,
	StatusRecovering,
	StatusCritical,
}

// IsValidHealthStatus checks if a status string is a valid HealthStatus
func IsValidHealthStatus(s string) bool {
	for _, status := range ValidHealthStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Plant represents a tracked specimen in the user's garden.
// The JSON field names match the shape persisted by earlier releases so old
// collections keep unmarshalling without a field-level migration.
type Plant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Species      string       `json:"species"`
	ImageURL     string       `json:"imageUrl"`
	AcquiredDate time.Time    `json:"acquiredDate"`
	Status       HealthStatus `json:"status"`
	Schedule     CareSchedule `json:"schedule"`

	// DiagnosisHistory is append-only, newest entry first. Status is only
	// ever updated when a new entry is appended, never recomputed from the
	// schedule, so a plant can read Thriving while every track is overdue.
	DiagnosisHistory []DiagnosisResult `json:"diagnosisHistory"`
}

// LatestDiagnosis returns the most recent diagnosis, or nil if none exists.
func (p *Plant) LatestDiagnosis() *DiagnosisResult {
	if len(p.DiagnosisHistory) == 0 {
		return nil
	}
	return &p.DiagnosisHistory[0]
}
