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

// WorkItemRepositoryInterface is an interface for a *MongoDBWorkItemRepository
type WorkItemRepositoryInterface interface {
	Add(ctx context.Context, item *WorkItem) error
	Update(ctx context.Context, item *WorkItemUpdate) error
	FindAll(ctx context.Context, userID string, page int, pageSize int, filters []Filter) ([]WorkItem, int, error)
	FindByID(ctx context.Context, itemID string, userID string) (WorkItem, error)
	FindUpdatableByID(ctx context.Context, itemID string, userID string) (*WorkItemUpdate, error)
	FindPendingInWindow(ctx context.Context, userID string, window date.Timespan, includeIDs []string) ([]*WorkItem, error)
	UpdateStatus(ctx context.Context, itemID primitive.ObjectID, userID primitive.ObjectID, status Status) error
	CountByStatus(ctx context.Context, userID string) (map[Status]int64, error)
	AverageScore(ctx context.Context, userID string) (float64, error)
	Delete(ctx context.Context, itemID string, userID string) error
}

// MongoDBWorkItemRepository does everything related to storing and finding work items
type MongoDBWorkItemRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// Add adds a work item
func (s *MongoDBWorkItemRepository) Add(ctx context.Context, item *WorkItem) error {
	item.CreatedAt = time.Now()
	item.LastModifiedAt = time.Now()
	item.ID = primitive.NewObjectID()

	if item.Status == "" {
		item.Status = StatusPending
	}

	_, err := s.DB.InsertOne(ctx, item)
	return err
}

// Update updates a work item
func (s *MongoDBWorkItemRepository) Update(ctx context.Context, item *WorkItemUpdate) error {
	item.LastModifiedAt = time.Now()

	result, err := s.DB.UpdateOne(ctx,
		bson.M{"_id": item.ID, "userId": item.UserID},
		bson.M{"$set": item})
	if err != nil {
		return err
	}

	if result.MatchedCount != 1 {
		return errors.New("updated count != 1")
	}

	return nil
}

// FindAll finds all work items of a user, paginated and sorted by due date
func (s *MongoDBWorkItemRepository) FindAll(ctx context.Context, userID string, page int, pageSize int, filters []Filter) ([]WorkItem, int, error) {
	items := []WorkItem{}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, 0, err
	}

	offset := page * pageSize

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"dueAt": 1})
	findOptions.SetSkip(int64(offset))
	findOptions.SetLimit(int64(pageSize))

	filter := bson.M{"userId": userObjectID}

	for _, queryFilter := range filters {
		filter[queryFilter.Field] = bson.M{queryFilter.Operator: queryFilter.Value}
	}

	cursor, err := s.DB.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.DB.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = cursor.All(ctx, &items)
	if err != nil {
		return nil, 0, err
	}

	return items, int(count), nil
}

// FindByID finds a specific work item
func (s *MongoDBWorkItemRepository) FindByID(ctx context.Context, itemID string, userID string) (WorkItem, error) {
	item := WorkItem{}

	itemObjectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return item, err
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return item, err
	}

	result := s.DB.FindOne(ctx, bson.M{"_id": itemObjectID, "userId": userObjectID})
	if result.Err() != nil {
		return item, result.Err()
	}

	err = result.Decode(&item)
	return item, err
}

// FindUpdatableByID finds a work item as an updatable view
func (s *MongoDBWorkItemRepository) FindUpdatableByID(ctx context.Context, itemID string, userID string) (*WorkItemUpdate, error) {
	item := WorkItemUpdate{}

	itemObjectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, err
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	result := s.DB.FindOne(ctx, bson.M{"_id": itemObjectID, "userId": userObjectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	err = result.Decode(&item)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// FindPendingInWindow finds the pending work items due inside a planning
// window, highest priority score first; includeIDs narrows the result when set
func (s *MongoDBWorkItemRepository) FindPendingInWindow(ctx context.Context, userID string, window date.Timespan, includeIDs []string) ([]*WorkItem, error) {
	var items []*WorkItem

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"userId": userObjectID,
		"status": StatusPending,
		"dueAt":  bson.M{"$gte": window.Start, "$lte": window.End},
	}

	if len(includeIDs) > 0 {
		var objectIDs []primitive.ObjectID
		for _, id := range includeIDs {
			objectID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				return nil, err
			}
			objectIDs = append(objectIDs, objectID)
		}
		filter["_id"] = bson.M{"$in": objectIDs}
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"priorityScore": -1})

	cursor, err := s.DB.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	err = cursor.All(ctx, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateStatus moves a work item into another lifecycle state
func (s *MongoDBWorkItemRepository) UpdateStatus(ctx context.Context, itemID primitive.ObjectID, userID primitive.ObjectID, status Status) error {
	result, err := s.DB.UpdateOne(ctx,
		bson.M{"_id": itemID, "userId": userID},
		bson.M{"$set": bson.M{"status": status, "lastModifiedAt": time.Now()}})
	if err != nil {
		return err
	}

	if result.MatchedCount != 1 {
		return errors.New("updated count != 1")
	}

	return nil
}

// CountByStatus groups a user's work items by status
func (s *MongoDBWorkItemRepository) CountByStatus(ctx context.Context, userID string) (map[Status]int64, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	cursor, err := s.DB.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userObjectID}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}

	var results []struct {
		Status Status `bson:"_id"`
		Count  int64  `bson:"count"`
	}

	err = cursor.All(ctx, &results)
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int64)
	for _, result := range results {
		counts[result.Status] = result.Count
	}

	return counts, nil
}

// AverageScore computes the mean priority score over a user's pending work items
func (s *MongoDBWorkItemRepository) AverageScore(ctx context.Context, userID string) (float64, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, err
	}

	cursor, err := s.DB.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userObjectID, "status": StatusPending}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": nil, "average": bson.M{"$avg": "$priorityScore"}}}},
	})
	if err != nil {
		return 0, err
	}

	var results []struct {
		Average float64 `bson:"average"`
	}

	err = cursor.All(ctx, &results)
	if err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Average, nil
}

// Delete removes a work item
func (s *MongoDBWorkItemRepository) Delete(ctx context.Context, itemID string, userID string) error {
	itemObjectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return err
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	result, err := s.DB.DeleteOne(ctx, bson.M{"_id": itemObjectID, "userId": userObjectID})
	if err != nil {
		return err
	}

	if result.DeletedCount != 1 {
		return errors.New("deleted count != 1")
	}

	return nil
}
