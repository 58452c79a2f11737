package scheduling

import (
	"context"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockWorkItemRepository is a work item repository for testing
type MockWorkItemRepository struct {
	Items []*WorkItem
}

// Add adds a work item
func (m *MockWorkItemRepository) Add(_ context.Context, item *WorkItem) error {
	item.CreatedAt = time.Now()
	item.LastModifiedAt = time.Now()
	item.ID = primitive.NewObjectID()

	if item.Status == "" {
		item.Status = StatusPending
	}

	m.Items = append(m.Items, item)
	return nil
}

// Update updates a work item
func (m *MockWorkItemRepository) Update(_ context.Context, item *WorkItemUpdate) error {
	for i, existing := range m.Items {
		if existing.ID == item.ID && existing.UserID == item.UserID {
			m.Items[i] = (*WorkItem)(item)
			return nil
		}
	}

	return errors.New("work item not found")
}

// FindAll finds all work items of a user; pagination is ignored and only time
// based $gte filters are supported
func (m *MockWorkItemRepository) FindAll(_ context.Context, userID string, _ int, _ int, filters []Filter) ([]WorkItem, int, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, 0, err
	}

	var items []WorkItem
	for _, item := range m.Items {
		if item.UserID != userObjectID {
			continue
		}

		if !matchesTimeFilters(item, filters) {
			continue
		}

		items = append(items, *item)
	}

	return items, len(items), nil
}

func matchesTimeFilters(item *WorkItem, filters []Filter) bool {
	for _, filter := range filters {
		threshold, ok := filter.Value.(time.Time)
		if !ok || filter.Operator != "$gte" {
			continue
		}

		var field time.Time
		switch filter.Field {
		case "lastModifiedAt":
			field = item.LastModifiedAt
		case "dueAt":
			field = item.DueAt
		default:
			continue
		}

		if field.Before(threshold) {
			return false
		}
	}

	return true
}

// FindByID finds a specific work item
func (m *MockWorkItemRepository) FindByID(_ context.Context, itemID string, userID string) (WorkItem, error) {
	for _, item := range m.Items {
		if item.ID.Hex() == itemID && item.UserID.Hex() == userID {
			return *item, nil
		}
	}

	return WorkItem{}, errors.New("work item not found")
}

// FindUpdatableByID finds a work item as an updatable view
func (m *MockWorkItemRepository) FindUpdatableByID(_ context.Context, itemID string, userID string) (*WorkItemUpdate, error) {
	for _, item := range m.Items {
		if item.ID.Hex() == itemID && item.UserID.Hex() == userID {
			update := WorkItemUpdate(*item)
			return &update, nil
		}
	}

	return nil, errors.New("work item not found")
}

// FindPendingInWindow finds pending work items due inside a window
func (m *MockWorkItemRepository) FindPendingInWindow(_ context.Context, userID string, window date.Timespan, includeIDs []string) ([]*WorkItem, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	var items []*WorkItem
	for _, item := range m.Items {
		if item.UserID != userObjectID || item.Status != StatusPending {
			continue
		}

		if item.DueAt.Before(window.Start) || item.DueAt.After(window.End) {
			continue
		}

		if len(includeIDs) > 0 && !containsID(includeIDs, item.ID.Hex()) {
			continue
		}

		copied := *item
		items = append(items, &copied)
	}

	return items, nil
}

// UpdateStatus moves a work item into another lifecycle state
func (m *MockWorkItemRepository) UpdateStatus(_ context.Context, itemID primitive.ObjectID, userID primitive.ObjectID, status Status) error {
	for _, item := range m.Items {
		if item.ID == itemID && item.UserID == userID {
			item.Status = status
			item.LastModifiedAt = time.Now()
			return nil
		}
	}

	return errors.New("work item not found")
}

// CountByStatus groups a user's work items by status
func (m *MockWorkItemRepository) CountByStatus(_ context.Context, userID string) (map[Status]int64, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int64)
	for _, item := range m.Items {
		if item.UserID == userObjectID {
			counts[item.Status]++
		}
	}

	return counts, nil
}

// AverageScore computes the mean priority score over pending items
func (m *MockWorkItemRepository) AverageScore(_ context.Context, userID string) (float64, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, item := range m.Items {
		if item.UserID == userObjectID && item.Status == StatusPending {
			sum += item.PriorityScore
			count++
		}
	}

	if count == 0 {
		return 0, nil
	}

	return sum / float64(count), nil
}

// Delete removes a work item
func (m *MockWorkItemRepository) Delete(_ context.Context, itemID string, userID string) error {
	for i, item := range m.Items {
		if item.ID.Hex() == itemID && item.UserID.Hex() == userID {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}

	return errors.New("work item not found")
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
