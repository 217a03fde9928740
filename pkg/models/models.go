package models

import (
	"strings"
	"time"
)

// JobType is the normalized employment type assigned when a job is persisted.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeFreelance  JobType = "FREELANCE"
	JobTypeRemote     JobType = "REMOTE"
)

// JobStatus is a free-form tracking label. Any status may follow any other;
// there is no transition graph.
type JobStatus string

const (
	StatusSaved     JobStatus = "SAVED"
	StatusApplied   JobStatus = "APPLIED"
	StatusInterview JobStatus = "INTERVIEW"
	StatusOffer     JobStatus = "OFFER"
	StatusAccepted  JobStatus = "ACCEPTED"
	StatusRejected  JobStatus = "REJECTED"
	StatusWithdrawn JobStatus = "WITHDRAWN"
)

// AllStatuses lists every valid tracking status, in board order.
var AllStatuses = []JobStatus{
	StatusSaved, StatusApplied, StatusInterview, StatusOffer,
	StatusAccepted, StatusRejected, StatusWithdrawn,
}

// ValidStatus reports whether s is one of the known tracking labels.
func ValidStatus(s string) bool {
	for _, st := range AllStatuses {
		if string(st) == strings.ToUpper(s) {
			return true
		}
	}
	return false
}

// MapJobType normalizes a provider-reported employment type hint.
// Check order matters: "remote part-time" normalizes to REMOTE.
func MapJobType(hint string) JobType {
	upper := strings.ToUpper(hint)
	switch {
	case strings.Contains(upper, "REMOTE"):
		return JobTypeRemote
	case strings.Contains(upper, "PART"):
		return JobTypePartTime
	case strings.Contains(upper, "CONTRACT"):
		return JobTypeContract
	case strings.Contains(upper, "INTERN"):
		return JobTypeInternship
	case strings.Contains(upper, "FREELANCE"):
		return JobTypeFreelance
	default:
		return JobTypeFullTime
	}
}

// RawJob is a provider-agnostic posting before persistence assigns identity.
type RawJob struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Type        string     `json:"type"` // free-text hint from the source
	Salary      string     `json:"salary,omitempty"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	PostedAt    *time.Time `json:"posted_at,omitempty"`
}

// ScoredJob pairs a RawJob with its relevance score. Ephemeral, never stored.
type ScoredJob struct {
	Job     RawJob
	Score   int
	Reasons []string
}

// Job is a persisted posting.
type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        JobType   `json:"type"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PostedAt    time.Time `json:"posted_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrackedJob is a tracking record, one-to-one with a Job.
type TrackedJob struct {
	ID        int        `json:"id"`
	JobID     int        `json:"job_id"`
	Status    JobStatus  `json:"status"`
	Notes     string     `json:"notes"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PreferenceProfile is the user's free-text search criteria. All fields are
// optional; it is read-only for the duration of one aggregation run.
type PreferenceProfile struct {
	DesiredRoles       string `json:"desired_roles"`
	PreferredLocations string `json:"preferred_locations"`
	RemotePreference   string `json:"remote_preference"`
	SalaryExpectation  string `json:"salary_expectation"`
	Skills             string `json:"skills"`
	Experience         string `json:"experience"`
	Education          string `json:"education"`
	Industries         string `json:"industries"`
	CompanySize        string `json:"company_size"`
	DealBreakers       string `json:"deal_breakers"`
	AdditionalNotes    string `json:"additional_notes"`
}

// SearchLog records one aggregation run.
type SearchLog struct {
	ID        int       `json:"id"`
	Query     string    `json:"query"`
	JobsFound int       `json:"jobs_found"`
	CreatedAt time.Time `json:"created_at"`
}
