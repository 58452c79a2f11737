package scheduling

import (
	"context"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScheduleRepositoryInterface is an interface for a *MongoDBScheduleRepository
type ScheduleRepositoryInterface interface {
	Add(ctx context.Context, schedule *Schedule, blocks []ScheduledBlock) error
	FindLatestByUser(ctx context.Context, userID string) (*Schedule, error)
	FindBlocksBySchedule(ctx context.Context, scheduleID string, userID string) ([]ScheduledBlock, error)
	DeactivateAllForUser(ctx context.Context, userID primitive.ObjectID) error
}

// MongoDBScheduleRepository stores schedules and their scheduled blocks
type MongoDBScheduleRepository struct {
	DB       *mongo.Collection
	BlocksDB *mongo.Collection
	Logger   logger.Interface
}

// Add persists a schedule together with its blocks
func (s *MongoDBScheduleRepository) Add(ctx context.Context, schedule *Schedule, blocks []ScheduledBlock) error {
	schedule.CreatedAt = time.Now()
	schedule.ID = primitive.NewObjectID()

	_, err := s.DB.InsertOne(ctx, schedule)
	if err != nil {
		return err
	}

	if len(blocks) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(blocks))
	for i := range blocks {
		blocks[i].ID = primitive.NewObjectID()
		blocks[i].ScheduleID = schedule.ID
		documents = append(documents, blocks[i])
	}

	_, err = s.BlocksDB.InsertMany(ctx, documents)
	return err
}

// FindLatestByUser finds the most recent active schedule of a user
func (s *MongoDBScheduleRepository) FindLatestByUser(ctx context.Context, userID string) (*Schedule, error) {
	schedule := Schedule{}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	findOptions := options.FindOne()
	findOptions.SetSort(bson.M{"createdAt": -1})

	result := s.DB.FindOne(ctx, bson.M{"userId": userObjectID, "isActive": true}, findOptions)
	if result.Err() != nil {
		return nil, result.Err()
	}

	err = result.Decode(&schedule)
	if err != nil {
		return nil, err
	}

	return &schedule, nil
}

// FindBlocksBySchedule finds the blocks of one schedule in chronological order
func (s *MongoDBScheduleRepository) FindBlocksBySchedule(ctx context.Context, scheduleID string, userID string) ([]ScheduledBlock, error) {
	blocks := []ScheduledBlock{}

	scheduleObjectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return nil, err
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"date.start": 1})

	cursor, err := s.BlocksDB.Find(ctx, bson.M{"scheduleId": scheduleObjectID, "userId": userObjectID}, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &blocks)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// DeactivateAllForUser marks every schedule of a user inactive, a new run replaces them
func (s *MongoDBScheduleRepository) DeactivateAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.DB.UpdateMany(ctx,
		bson.M{"userId": userID, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false}})
	return err
}
