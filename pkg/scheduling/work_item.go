package scheduling

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the canonical lifecycle state of a WorkItem
type Status string

// The only valid Status values; external formats are translated at the boundary
const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus translates external status spellings (snake_case and camelCase
// variants) into a canonical Status
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), "-", "_"))

	switch normalized {
	case "pending", "":
		return StatusPending, nil
	case "scheduled":
		return StatusScheduled, nil
	case "in_progress", "inprogress":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	}

	return "", fmt.Errorf("unknown work item status %q", value)
}

// IsValid reports whether a Status is one of the canonical values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// WorkItem is the model for a single piece of pending work
type WorkItem struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	LastModifiedAt time.Time          `json:"lastModifiedAt" bson:"lastModifiedAt"`
	Title          string             `json:"title" bson:"title" validate:"required"`
	Description    string             `json:"description" bson:"description"`
	Tags           []string           `json:"tags" bson:"tags"`

	EstimatedDuration time.Duration `json:"estimatedDuration" bson:"estimatedDuration" validate:"required,gt=0"`
	Difficulty        int           `json:"difficulty" bson:"difficulty" validate:"required,min=1,max=10"`
	Importance        int           `json:"importance" bson:"importance" validate:"required,min=1,max=10"`
	DueAt             time.Time     `json:"dueAt" bson:"dueAt" validate:"required"`
	Status            Status        `json:"status" bson:"status"`
	PriorityScore     float64       `json:"priorityScore" bson:"priorityScore"`
}

// WorkItemUpdate is the view of a WorkItem for an update
type WorkItemUpdate struct {
	ID             primitive.ObjectID `bson:"_id" json:"-"`
	UserID         primitive.ObjectID `bson:"userId" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"-"`
	LastModifiedAt time.Time          `bson:"lastModifiedAt" json:"-"`
	Title          string             `json:"title" bson:"title" validate:"required"`
	Description    string             `json:"description" bson:"description"`
	Tags           []string           `json:"tags" bson:"tags"`

	EstimatedDuration time.Duration `json:"estimatedDuration" bson:"estimatedDuration" validate:"required,gt=0"`
	Difficulty        int           `json:"difficulty" bson:"difficulty" validate:"required,min=1,max=10"`
	Importance        int           `json:"importance" bson:"importance" validate:"required,min=1,max=10"`
	DueAt             time.Time     `json:"dueAt" bson:"dueAt" validate:"required"`
	Status            Status        `json:"status" bson:"status"`
	PriorityScore     float64       `json:"priorityScore" bson:"priorityScore"`
}
