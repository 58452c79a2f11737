package scheduling

import (
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InfeasibleItem reports an item that could not be fully placed before its due
// date, with the theoretical capacity of its own deadline-bounded window so
// callers can tell "impossible" apart from "lost to a higher priority item"
type InfeasibleItem struct {
	ItemID            primitive.ObjectID `json:"itemId"`
	Title             string             `json:"title"`
	RequiredDuration  time.Duration      `json:"requiredDuration"`
	ScheduledDuration time.Duration      `json:"scheduledDuration"`
	AvailableDuration time.Duration      `json:"availableDuration"`
	DueAt             time.Time          `json:"dueAt"`
}

// CheckFeasibility compares what each item got against what it needed. For any
// shortfall the slot builder is re-run over the window bounded by the item's
// due date, ignoring every other item's consumption, and the resulting capacity
// is reported alongside the shortfall. Items are never silently dropped.
func CheckFeasibility(items []*WorkItem, blocks []ScheduledBlock, commitments []FixedCommitment, preferences *users.SchedulingPreferences, window date.Timespan) []InfeasibleItem {
	var infeasible []InfeasibleItem

	scheduled := ScheduledPerItem(blocks)

	for _, item := range items {
		if scheduled[item.ID] >= item.EstimatedDuration {
			continue
		}

		itemWindow := date.Timespan{
			Start: window.Start,
			End:   date.MinTime(item.DueAt, window.End),
		}

		var available time.Duration
		if itemWindow.IsStartBeforeEnd() {
			available = TotalCapacity(BuildSlots(commitments, preferences, itemWindow))
		}

		infeasible = append(infeasible, InfeasibleItem{
			ItemID:            item.ID,
			Title:             item.Title,
			RequiredDuration:  item.EstimatedDuration,
			ScheduledDuration: scheduled[item.ID],
			AvailableDuration: available,
			DueAt:             item.DueAt,
		})
	}

	return infeasible
}
