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

const gymCollectionName = "gyms"

// mongoGymRepository implements repository.GymRepository
type mongoGymRepository struct {
	collection *mongo.Collection
}

// NewMongoGymRepository creates a new Gym repository backed by MongoDB.
func NewMongoGymRepository(db *mongo.Database) repository.GymRepository {
	return &mongoGymRepository{
		collection: db.Collection(gymCollectionName),
	}
}

func (r *mongoGymRepository) Create(ctx context.Context, gym *domain.Gym) (primitive.ObjectID, error) {
	if gym.Name == "" {
		return primitive.NilObjectID, errors.New("gym name is required")
	}
	gym.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	gym.CreatedAt = now
	gym.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, gym)
	if err != nil {
		return primitive.NilObjectID, duplicate(err)
	}
	return insertedObjectID(result)
}

func (r *mongoGymRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Gym, error) {
	return findOne[domain.Gym](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoGymRepository) List(ctx context.Context) ([]domain.Gym, error) {
	return r.find(ctx, bson.M{})
}

// ListByCity matches the city case-insensitively.
func (r *mongoGymRepository) ListByCity(ctx context.Context, city string) ([]domain.Gym, error) {
	return r.find(ctx, bson.M{"address.city": city}, options.Find().
		SetCollation(&options.Collation{Locale: "en", Strength: 2}))
}

func (r *mongoGymRepository) ListActive(ctx context.Context) ([]domain.Gym, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *mongoGymRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Gym, error) {
	opts = append([]*options.FindOptions{options.Find().SetSort(bson.D{{Key: "name", Value: 1}})}, opts...)
	gyms, err := findAll[domain.Gym](ctx, r.collection, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("list gyms: %w", err)
	}
	return gyms, nil
}

func (r *mongoGymRepository) Update(ctx context.Context, gym *domain.Gym) error {
	if gym.ID == primitive.NilObjectID {
		return errors.New("gym ID is required for update")
	}

	gym.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":           gym.Name,
			"address":        gym.Address,
			"phone":          gym.Phone,
			"email":          gym.Email,
			"operatingHours": gym.OperatingHours,
			"facilities":     gym.Facilities,
			"maxCapacity":    gym.MaxCapacity,
			"isActive":       gym.IsActive,
			"updatedAt":      gym.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": gym.ID}, update)
	if err != nil {
		return duplicate(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoGymRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureGymIndexes creates necessary indexes for the gyms collection.
func EnsureGymIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "address.city", Value: 1}},
			Options: options.Index().SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
