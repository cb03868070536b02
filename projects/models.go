// Package projects implements ownership-scoped CRUD over extension project
// records. Every read, update, and delete is filtered by the owner field, so a
// project is only ever visible to the user who created it.
// This file defines the persisted project document.
package projects

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Project status values. A project starts in progress and moves to completed
// or cancelled; transitions are caller-driven and only enum membership is
// validated.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the enumerated status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project represents an extension project document. Title, start date and end
// date are required; the descriptive fields are optional. Dates are kept as
// strings exactly as the client sent them.
type Project struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string        `bson:"title" json:"title"`
	StartDate      string        `bson:"startDate" json:"startDate"`
	EndDate        string        `bson:"endDate" json:"endDate"`
	HoursPerWeek   int           `bson:"hoursPerWeek,omitempty" json:"hoursPerWeek,omitempty"`
	TotalDays      int           `bson:"totalDays,omitempty" json:"totalDays,omitempty"`
	Objective      string        `bson:"objective,omitempty" json:"objective,omitempty"`
	TargetAudience string        `bson:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	Description    string        `bson:"description,omitempty" json:"description,omitempty"`
	Challenges     string        `bson:"challenges,omitempty" json:"challenges,omitempty"`
	Achievements   string        `bson:"achievements,omitempty" json:"achievements,omitempty"`
	Learnings      string        `bson:"learnings,omitempty" json:"learnings,omitempty"`
	EvidenceLinks  []string      `bson:"evidenceLinks,omitempty" json:"evidenceLinks,omitempty"`
	Status         string        `bson:"status" json:"status"`
	Owner          bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}
