package mongo

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements the repository.TrainerRepository interface using MongoDB.
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new instance of mongoTrainerRepository.
// It expects a connected *mongo.Database instance.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a new trainer. Emails are stored lower-cased.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if trainer.Email == "" || trainer.GymID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("trainer email and gym ID are required")
	}

	trainer.ID = primitive.NewObjectID()
	trainer.Email = strings.ToLower(trainer.Email)
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trainer)
	if err != nil {
		// Unique index on email
		return primitive.NilObjectID, duplicate(err)
	}
	return insertedObjectID(result)
}

func (r *mongoTrainerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	return findOne[domain.Trainer](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoTrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	return findOne[domain.Trainer](ctx, r.collection, bson.M{"email": strings.ToLower(email)})
}

func (r *mongoTrainerRepository) ListByGym(ctx context.Context, gymID primitive.ObjectID) ([]domain.Trainer, error) {
	return r.find(ctx, bson.M{"gymId": gymID})
}

func (r *mongoTrainerRepository) ListActiveByGym(ctx context.Context, gymID primitive.ObjectID) ([]domain.Trainer, error) {
	return r.find(ctx, bson.M{"gymId": gymID, "isActive": true})
}

func (r *mongoTrainerRepository) ListBySpecialty(ctx context.Context, specialty string) ([]domain.Trainer, error) {
	return r.find(ctx, bson.M{"specialties": strings.ToLower(specialty), "isActive": true})
}

func (r *mongoTrainerRepository) find(ctx context.Context, filter bson.M) ([]domain.Trainer, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	trainers, err := findAll[domain.Trainer](ctx, r.collection, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return trainers, nil
}

// Update replaces the mutable fields of a trainer. GymID and CreatedAt are kept.
func (r *mongoTrainerRepository) Update(ctx context.Context, trainer *domain.Trainer) error {
	if trainer.ID == primitive.NilObjectID {
		return errors.New("trainer ID is required for update")
	}

	trainer.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":            trainer.Name,
			"email":           strings.ToLower(trainer.Email),
			"phone":           trainer.Phone,
			"certifications":  trainer.Certifications,
			"specialties":     trainer.Specialties,
			"experienceYears": trainer.ExperienceYears,
			"bio":             trainer.Bio,
			"profileImageKey": trainer.ProfileImageKey,
			"hourlyRate":      trainer.HourlyRate,
			"availability":    trainer.Availability,
			"isActive":        trainer.IsActive,
			"updatedAt":       trainer.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trainer.ID}, update)
	if err != nil {
		return duplicate(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoTrainerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainerIndexes creates necessary indexes for the trainers collection.
// Call this once during application startup.
func EnsureTrainerIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "gymId", Value: 1}, {Key: "isActive", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "specialties", Value: 1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
