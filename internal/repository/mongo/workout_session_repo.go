package mongo

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	workoutSessionCollectionName = "workout_sessions"
	activeSessionIndexName       = "one_active_session_per_member"
)

type mongoWorkoutSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutSessionRepository creates a new WorkoutSession repository.
func NewMongoWorkoutSessionRepository(db *mongo.Database) repository.WorkoutSessionRepository {
	return &mongoWorkoutSessionRepository{
		collection: db.Collection(workoutSessionCollectionName),
	}
}

// Create inserts a session. The active flag is derived from the state before
// writing; a second active session for the same member fails with ErrDuplicate.
func (r *mongoWorkoutSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session.MemberID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("session requires memberId")
	}
	session.ID = primitive.NewObjectID()
	session.SetState(session.State)
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, duplicate(err)
	}
	return insertedObjectID(result)
}

func (r *mongoWorkoutSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return findOne[domain.WorkoutSession](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoWorkoutSessionRepository) ListByMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{"memberId": memberID})
}

// ListByMemberAndStates returns the member's sessions in any of states.
func (r *mongoWorkoutSessionRepository) ListByMemberAndStates(ctx context.Context, memberID primitive.ObjectID, states []schedule.SessionState) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{"memberId": memberID, "state": bson.M{"$in": states}})
}

// ListByMemberInRange returns sessions whose sessionDate lies in [from, to].
func (r *mongoWorkoutSessionRepository) ListByMemberInRange(ctx context.Context, memberID primitive.ObjectID, from, to time.Time) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{
		"memberId":    memberID,
		"sessionDate": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoWorkoutSessionRepository) ListByPlan(ctx context.Context, planID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{"workoutPlanId": planID})
}

func (r *mongoWorkoutSessionRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "sessionDate", Value: -1}})
	sessions, err := findAll[domain.WorkoutSession](ctx, r.collection, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}
	return sessions, nil
}

// Update writes the session only while its stored state is still from.
func (r *mongoWorkoutSessionRepository) Update(ctx context.Context, session *domain.WorkoutSession, from schedule.SessionState) error {
	if session.ID == primitive.NilObjectID {
		return errors.New("session ID is required for update")
	}

	session.SetState(session.State)
	session.UpdatedAt = time.Now().UTC()
	filter, update := sessionUpdate(session, from)
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		// A second active session for the member violates the partial index.
		return duplicate(err)
	}
	if result.MatchedCount == 0 {
		n, err := r.collection.CountDocuments(ctx, bson.M{"_id": session.ID})
		if err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrStaleState
	}
	return nil
}

// sessionUpdate matches the session only in state from.
func sessionUpdate(session *domain.WorkoutSession, from schedule.SessionState) (bson.M, bson.M) {
	filter := bson.M{"_id": session.ID, "state": from}
	update := bson.M{
		"$set": bson.M{
			"startTime":      session.StartTime,
			"endTime":        session.EndTime,
			"state":          session.State,
			"active":         session.Active,
			"exercises":      session.Exercises,
			"overallRating":  session.OverallRating,
			"notes":          session.Notes,
			"caloriesBurned": session.CaloriesBurned,
			"updatedAt":      session.UpdatedAt,
		},
	}
	return filter, update
}

func (r *mongoWorkoutSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutSessionIndexes creates the session indexes, including the
// unique partial index that allows one active session per member.
func EnsureWorkoutSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "memberId", Value: 1}},
			Options: options.Index().
				SetName(activeSessionIndexName).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
		{
			Keys: bson.D{{Key: "memberId", Value: 1}, {Key: "sessionDate", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "memberId", Value: 1}, {Key: "state", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "workoutPlanId", Value: 1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
