package scheduling

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockScheduleRepository is a schedule repository for testing
type MockScheduleRepository struct {
	Schedules []*Schedule
	Blocks    []ScheduledBlock
}

// Add persists a schedule together with its blocks
func (m *MockScheduleRepository) Add(_ context.Context, schedule *Schedule, blocks []ScheduledBlock) error {
	schedule.CreatedAt = time.Now()
	schedule.ID = primitive.NewObjectID()

	m.Schedules = append(m.Schedules, schedule)

	for i := range blocks {
		blocks[i].ID = primitive.NewObjectID()
		blocks[i].ScheduleID = schedule.ID
		m.Blocks = append(m.Blocks, blocks[i])
	}

	return nil
}

// FindLatestByUser finds the most recent active schedule of a user
func (m *MockScheduleRepository) FindLatestByUser(_ context.Context, userID string) (*Schedule, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	var latest *Schedule
	for _, schedule := range m.Schedules {
		if schedule.UserID != userObjectID || !schedule.IsActive {
			continue
		}

		if latest == nil || schedule.CreatedAt.After(latest.CreatedAt) {
			latest = schedule
		}
	}

	if latest == nil {
		return nil, errors.New("no active schedule found")
	}

	return latest, nil
}

// FindBlocksBySchedule finds the blocks of one schedule
func (m *MockScheduleRepository) FindBlocksBySchedule(_ context.Context, scheduleID string, userID string) ([]ScheduledBlock, error) {
	var blocks []ScheduledBlock
	for _, block := range m.Blocks {
		if block.ScheduleID.Hex() == scheduleID && block.UserID.Hex() == userID {
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}

// DeactivateAllForUser marks every schedule of a user inactive
func (m *MockScheduleRepository) DeactivateAllForUser(_ context.Context, userID primitive.ObjectID) error {
	for _, schedule := range m.Schedules {
		if schedule.UserID == userID {
			schedule.IsActive = false
		}
	}

	return nil
}
