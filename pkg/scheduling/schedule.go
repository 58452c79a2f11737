package scheduling

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptimizationSettings records how a schedule was generated
type OptimizationSettings struct {
	Algorithm   string    `json:"algorithm" bson:"algorithm"`
	Factors     []string  `json:"factors" bson:"factors"`
	GeneratedAt time.Time `json:"generatedAt" bson:"generatedAt"`
}

// Schedule is the persisted record of one scheduling run
type Schedule struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	RunID     string             `json:"runId" bson:"runId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	IsActive  bool               `json:"isActive" bson:"isActive"`

	OptimizationSettings OptimizationSettings `json:"optimizationSettings" bson:"optimizationSettings"`
	TotalScheduled       time.Duration        `json:"totalScheduled" bson:"totalScheduled"`
	BlockCount           int                  `json:"blockCount" bson:"blockCount"`
}

// Plan is the full result of one scheduling run returned to the caller
type Plan struct {
	Schedule   Schedule         `json:"schedule"`
	Blocks     []ScheduledBlock `json:"blocks"`
	Infeasible []InfeasibleItem `json:"infeasible"`
	Summary    PlanSummary      `json:"summary"`
}

// PlanSummary aggregates a plan for the API response
type PlanSummary struct {
	ItemsConsidered int           `json:"itemsConsidered"`
	ItemsScheduled  int           `json:"itemsScheduled"`
	ItemsInfeasible int           `json:"itemsInfeasible"`
	TotalScheduled  time.Duration `json:"totalScheduled"`
}
