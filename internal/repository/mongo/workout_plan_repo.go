// internal/repository/mongo/workout_plan_repo.go
package mongo

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutPlanCollectionName = "workout_plans"

// mongoWorkoutPlanRepository implements repository.WorkoutPlanRepository
type mongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutPlanRepository creates a new WorkoutPlan repository.
func NewMongoWorkoutPlanRepository(db *mongo.Database) repository.WorkoutPlanRepository {
	return &mongoWorkoutPlanRepository{
		collection: db.Collection(workoutPlanCollectionName),
	}
}

// Create inserts a new workout plan.
func (r *mongoWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	if plan.MemberID == primitive.NilObjectID || plan.TrainerID == primitive.NilObjectID || plan.Name == "" {
		return primitive.NilObjectID, errors.New("plan requires memberId, trainerId, and name")
	}
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedObjectID(result)
}

// GetByID retrieves a single workout plan by its ID.
func (r *mongoWorkoutPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	return findOne[domain.WorkoutPlan](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoWorkoutPlanRepository) ListByMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	return r.find(ctx, bson.M{"memberId": memberID})
}

func (r *mongoWorkoutPlanRepository) ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	return r.find(ctx, bson.M{"trainerId": trainerID})
}

// ListActiveByMember returns the member's active plans that have not ended at now.
// This is the snapshot the plan overlap check runs against.
func (r *mongoWorkoutPlanRepository) ListActiveByMember(ctx context.Context, memberID primitive.ObjectID, now time.Time) ([]domain.WorkoutPlan, error) {
	return r.find(ctx, bson.M{
		"memberId": memberID,
		"isActive": true,
		"endDate":  bson.M{"$gte": now},
	})
}

func (r *mongoWorkoutPlanRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutPlan, error) {
	// Sort by start date, newest first
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	plans, err := findAll[domain.WorkoutPlan](ctx, r.collection, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return plans, nil
}

// Update writes the plan's descriptive fields. Owner, dates and duration are
// fixed at creation; activation goes through SetActive.
func (r *mongoWorkoutPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.ID == primitive.NilObjectID {
		return errors.New("workout plan ID is required for update")
	}

	plan.UpdatedAt = time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": plan.ID}, planUpdate(plan))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound // Plan with that ID didn't exist
	}
	return nil
}

func planUpdate(plan *domain.WorkoutPlan) bson.M {
	return bson.M{
		"$set": bson.M{
			"name":        plan.Name,
			"description": plan.Description,
			"goal":        plan.Goal,
			"difficulty":  plan.Difficulty,
			"exercises":   plan.Exercises,
			"schedule":    plan.Schedule,
			"updatedAt":   plan.UpdatedAt,
		},
	}
}

// SetActive writes the activation flag and nothing else.
func (r *mongoWorkoutPlanRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoWorkoutPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutPlanIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Overlap check: active plans of a member that have not ended
			Keys: bson.D{{Key: "memberId", Value: 1}, {Key: "isActive", Value: 1}, {Key: "endDate", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "trainerId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "memberId", Value: 1}, {Key: "startDate", Value: -1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
