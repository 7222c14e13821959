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

const memberCollectionName = "members"

type mongoMemberRepository struct {
	collection *mongo.Collection
}

// NewMongoMemberRepository creates a new Member repository backed by MongoDB.
func NewMongoMemberRepository(db *mongo.Database) repository.MemberRepository {
	return &mongoMemberRepository{
		collection: db.Collection(memberCollectionName),
	}
}

func (r *mongoMemberRepository) Create(ctx context.Context, member *domain.Member) (primitive.ObjectID, error) {
	if member.Email == "" || member.MembershipType == "" {
		return primitive.NilObjectID, errors.New("member email and membership type are required")
	}

	member.ID = primitive.NewObjectID()
	member.Email = strings.ToLower(member.Email)
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now
	if member.JoinDate.IsZero() {
		member.JoinDate = now
	}

	result, err := r.collection.InsertOne(ctx, member)
	if err != nil {
		return primitive.NilObjectID, duplicate(err)
	}
	return insertedObjectID(result)
}

func (r *mongoMemberRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Member, error) {
	return findOne[domain.Member](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoMemberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return findOne[domain.Member](ctx, r.collection, bson.M{"email": strings.ToLower(email)})
}

func (r *mongoMemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoMemberRepository) ListActive(ctx context.Context) ([]domain.Member, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *mongoMemberRepository) ListByMembership(ctx context.Context, t domain.MembershipType) ([]domain.Member, error) {
	return r.find(ctx, bson.M{"membershipType": t})
}

func (r *mongoMemberRepository) find(ctx context.Context, filter bson.M) ([]domain.Member, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "joinDate", Value: -1}})
	members, err := findAll[domain.Member](ctx, r.collection, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *mongoMemberRepository) Update(ctx context.Context, member *domain.Member) error {
	if member.ID == primitive.NilObjectID {
		return errors.New("member ID is required for update")
	}

	member.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":           member.Name,
			"email":          strings.ToLower(member.Email),
			"phone":          member.Phone,
			"membershipType": member.MembershipType,
			"isActive":       member.IsActive,
			"updatedAt":      member.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": member.ID}, update)
	if err != nil {
		return duplicate(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoMemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureMemberIndexes creates necessary indexes for the members collection.
func EnsureMemberIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "membershipType", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "joinDate", Value: -1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
