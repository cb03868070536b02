// This file defines the request payloads of the project endpoints. Responses
// reuse the Project document directly, as the store assigns nothing secret.
package projects

// CreateProjectRequest carries the fields of a new project. The owner is
// never part of the payload; it is taken from the verified token.
type CreateProjectRequest struct {
	Title          string   `json:"title" example:"Community Garden"`
	StartDate      string   `json:"startDate" example:"2024-01-01"`
	EndDate        string   `json:"endDate" example:"2024-02-01"`
	HoursPerWeek   int      `json:"hoursPerWeek,omitempty"`
	TotalDays      int      `json:"totalDays,omitempty"`
	Objective      string   `json:"objective,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty"`
	Description    string   `json:"description,omitempty"`
	Challenges     string   `json:"challenges,omitempty"`
	Achievements   string   `json:"achievements,omitempty"`
	Learnings      string   `json:"learnings,omitempty"`
	EvidenceLinks  []string `json:"evidenceLinks,omitempty"`
	Status         string   `json:"status,omitempty" example:"in_progress"`
}

// UpdateProjectRequest is a patch: only non-nil fields are applied. A nil
// EvidenceLinks slice means the field is absent; an empty JSON array replaces
// the stored links with none.
type UpdateProjectRequest struct {
	Title          *string  `json:"title"`
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	HoursPerWeek   *int     `json:"hoursPerWeek"`
	TotalDays      *int     `json:"totalDays"`
	Objective      *string  `json:"objective"`
	TargetAudience *string  `json:"targetAudience"`
	Description    *string  `json:"description"`
	Challenges     *string  `json:"challenges"`
	Achievements   *string  `json:"achievements"`
	Learnings      *string  `json:"learnings"`
	EvidenceLinks  []string `json:"evidenceLinks"`
	Status         *string  `json:"status"`
}

// MessageResponse is a human-readable confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"project deleted successfully"`
}
