package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	instructorserrors "motovasiya/internal/instructors/errors"
	"motovasiya/pkg/config"
	"motovasiya/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Instructors"
)

type InstructorRepository interface {
	Create(ctx context.Context, instructor *model.Instructor) error
	FindByID(ctx context.Context, id string) (*model.Instructor, error)
	FindByEmail(ctx context.Context, email string) (*model.Instructor, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*model.Instructor, error)
	Update(ctx context.Context, id string, instructor *model.Instructor) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoInstructorRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoInstructorRepository(cfg *config.Config) InstructorRepository {
	db := cfg.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoInstructorRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoInstructorRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoInstructorRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create instructor email index: %w", err)
	}
	return nil
}

func (r *mongoInstructorRepository) Create(ctx context.Context, instructor *model.Instructor) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	instructor.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, instructor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return instructorserrors.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create instructor: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		instructor.ID = oid.Hex()
	}
	return nil
}

func (r *mongoInstructorRepository) FindByID(ctx context.Context, id string) (*model.Instructor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", instructorserrors.ErrInvalidID, id)
	}

	var instructor model.Instructor
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&instructor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, instructorserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find instructor: %w", err)
	}

	return &instructor, nil
}

func (r *mongoInstructorRepository) FindByEmail(ctx context.Context, email string) (*model.Instructor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var instructor model.Instructor
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&instructor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, instructorserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find instructor by email: %w", err)
	}

	return &instructor, nil
}

func (r *mongoInstructorRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.Instructor, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find instructors: %w", err)
	}
	defer cursor.Close(ctx)

	var instructors []*model.Instructor
	if err = cursor.All(ctx, &instructors); err != nil {
		return nil, fmt.Errorf("failed to decode instructors: %w", err)
	}

	return instructors, nil
}

func (r *mongoInstructorRepository) Update(ctx context.Context, id string, instructor *model.Instructor) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", instructorserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":     instructor.Name,
			"surname":  instructor.Surname,
			"email":    instructor.Email,
			"bio":      instructor.Bio,
			"photo":    instructor.Photo,
			"active":   instructor.Active,
			"is_admin": instructor.IsAdmin,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return instructorserrors.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update instructor: %w", err)
	}
	if result.MatchedCount == 0 {
		return instructorserrors.ErrNotFound
	}

	return nil
}

func (r *mongoInstructorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", instructorserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete instructor: %w", err)
	}
	if result.DeletedCount == 0 {
		return instructorserrors.ErrNotFound
	}

	return nil
}
