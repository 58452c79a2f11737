package scheduling

import (
	"context"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommitmentRepositoryInterface is an interface for a *MongoDBCommitmentRepository
type CommitmentRepositoryInterface interface {
	Add(ctx context.Context, commitment *FixedCommitment) error
	FindAll(ctx context.Context, userID string, page int, pageSize int) ([]FixedCommitment, int, error)
	FindInWindow(ctx context.Context, userID string, window date.Timespan) ([]FixedCommitment, error)
	Delete(ctx context.Context, commitmentID string, userID string) error
}

// MongoDBCommitmentRepository does everything related to storing and finding fixed commitments
type MongoDBCommitmentRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// Add adds a fixed commitment
func (s *MongoDBCommitmentRepository) Add(ctx context.Context, commitment *FixedCommitment) error {
	commitment.CreatedAt = time.Now()
	commitment.LastModifiedAt = time.Now()
	commitment.ID = primitive.NewObjectID()

	_, err := s.DB.InsertOne(ctx, commitment)
	return err
}

// FindAll finds all commitments of a user, paginated and sorted by start time
func (s *MongoDBCommitmentRepository) FindAll(ctx context.Context, userID string, page int, pageSize int) ([]FixedCommitment, int, error) {
	commitments := []FixedCommitment{}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, 0, err
	}

	offset := page * pageSize

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"date.start": 1})
	findOptions.SetSkip(int64(offset))
	findOptions.SetLimit(int64(pageSize))

	filter := bson.M{"userId": userObjectID}

	cursor, err := s.DB.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.DB.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = cursor.All(ctx, &commitments)
	if err != nil {
		return nil, 0, err
	}

	return commitments, int(count), nil
}

// FindInWindow finds the commitments that intersect a planning window, sorted by start time
func (s *MongoDBCommitmentRepository) FindInWindow(ctx context.Context, userID string, window date.Timespan) ([]FixedCommitment, error) {
	var commitments []FixedCommitment

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"date.start": 1})

	cursor, err := s.DB.Find(ctx, bson.M{
		"userId":     userObjectID,
		"date.start": bson.M{"$lt": window.End},
		"date.end":   bson.M{"$gt": window.Start},
	}, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &commitments)
	if err != nil {
		return nil, err
	}

	return commitments, nil
}

// Delete removes a fixed commitment
func (s *MongoDBCommitmentRepository) Delete(ctx context.Context, commitmentID string, userID string) error {
	commitmentObjectID, err := primitive.ObjectIDFromHex(commitmentID)
	if err != nil {
		return err
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	result, err := s.DB.DeleteOne(ctx, bson.M{"_id": commitmentObjectID, "userId": userObjectID})
	if err != nil {
		return err
	}

	if result.DeletedCount != 1 {
		return errors.New("deleted count != 1")
	}

	return nil
}
