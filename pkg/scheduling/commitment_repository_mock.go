package scheduling

import (
	"context"
	"sort"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCommitmentRepository is a commitment repository for testing
type MockCommitmentRepository struct {
	Commitments []*FixedCommitment
}

// Add adds a fixed commitment
func (m *MockCommitmentRepository) Add(_ context.Context, commitment *FixedCommitment) error {
	commitment.CreatedAt = time.Now()
	commitment.LastModifiedAt = time.Now()
	commitment.ID = primitive.NewObjectID()

	m.Commitments = append(m.Commitments, commitment)
	return nil
}

// FindAll finds all commitments of a user; pagination is ignored
func (m *MockCommitmentRepository) FindAll(_ context.Context, userID string, _ int, _ int) ([]FixedCommitment, int, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, 0, err
	}

	var commitments []FixedCommitment
	for _, commitment := range m.Commitments {
		if commitment.UserID == userObjectID {
			commitments = append(commitments, *commitment)
		}
	}

	return commitments, len(commitments), nil
}

// FindInWindow finds the commitments intersecting a planning window
func (m *MockCommitmentRepository) FindInWindow(_ context.Context, userID string, window date.Timespan) ([]FixedCommitment, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	var commitments []FixedCommitment
	for _, commitment := range m.Commitments {
		if commitment.UserID == userObjectID && commitment.Date.IntersectsWith(window) {
			commitments = append(commitments, *commitment)
		}
	}

	sort.Slice(commitments, func(i, j int) bool {
		return commitments[i].Date.Start.Before(commitments[j].Date.Start)
	})

	return commitments, nil
}

// Delete removes a fixed commitment
func (m *MockCommitmentRepository) Delete(_ context.Context, commitmentID string, userID string) error {
	for i, commitment := range m.Commitments {
		if commitment.ID.Hex() == commitmentID && commitment.UserID.Hex() == userID {
			m.Commitments = append(m.Commitments[:i], m.Commitments[i+1:]...)
			return nil
		}
	}

	return errors.New("commitment not found")
}
