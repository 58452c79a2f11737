package scheduling

import (
	"fmt"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/users"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduledBlock is one contiguous stretch of work on an item produced by a
// scheduling run
type ScheduledBlock struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	ScheduleID primitive.ObjectID `json:"scheduleId" bson:"scheduleId"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	ItemID     primitive.ObjectID `json:"itemId" bson:"itemId"`
	Title      string             `json:"title" bson:"title"`
	Date       date.Timespan      `json:"date" bson:"date"`
}

// Allocate places ranked items into free slots, first fit in priority order.
// Each block is capped at MaxContinuousWork and followed by a BreakBuffer that
// consumes slot capacity as well, so no later item starts inside a break.
// Slots are shared mutable state across items: what an earlier item consumes is
// gone for every later one. The result is deterministic for identical inputs
// and makes no claim of global optimality.
func Allocate(rankedItems []*WorkItem, slots []*FreeSlot, preferences *users.SchedulingPreferences) ([]ScheduledBlock, error) {
	var blocks []ScheduledBlock

	for _, slot := range slots {
		if !slot.IsStartBeforeEnd() {
			return nil, errors.Wrapf(ErrInternalInconsistency, "slot %s ends before it starts", slot.String())
		}
	}

	for _, item := range rankedItems {
		remaining := item.EstimatedDuration

		for _, slot := range slots {
			if remaining <= 0 {
				break
			}

			// An item may fill a slot with several blocks, separated by breaks
			for remaining > 0 {
				capacity := slot.Remaining()
				if capacity <= 0 {
					break
				}

				blockLength := minDuration(remaining, capacity, preferences.MaxContinuousWork)
				if blockLength < preferences.MinimumBlockSize {
					// Too small to be worth sitting down for; leave the slot to the next item
					break
				}

				block := ScheduledBlock{
					ItemID: item.ID,
					UserID: item.UserID,
					Title:  fmt.Sprintf("Work on: %s", item.Title),
					Date: date.Timespan{
						Start: slot.Cursor,
						End:   slot.Cursor.Add(blockLength),
					},
				}

				if block.Date.End.After(slot.End) {
					return nil, errors.Wrapf(ErrInternalInconsistency, "block %s escapes its slot %s", block.Date.String(), slot.String())
				}

				if len(blocks) > 0 {
					last := blocks[len(blocks)-1]
					if last.Date.IntersectsWith(block.Date) {
						return nil, errors.Wrapf(ErrInternalInconsistency, "block %s overlaps block %s", block.Date.String(), last.Date.String())
					}
				}

				blocks = append(blocks, block)
				remaining -= blockLength
				slot.Consume(blockLength + preferences.BreakBuffer)
			}
		}
	}

	return blocks, nil
}

// ScheduledPerItem sums the block durations of every item
func ScheduledPerItem(blocks []ScheduledBlock) map[primitive.ObjectID]time.Duration {
	scheduled := make(map[primitive.ObjectID]time.Duration)
	for _, block := range blocks {
		scheduled[block.ItemID] += block.Date.Duration()
	}
	return scheduled
}

func minDuration(durations ...time.Duration) time.Duration {
	minimum := durations[0]
	for _, duration := range durations[1:] {
		if duration < minimum {
			minimum = duration
		}
	}
	return minimum
}
