package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	motorcycleserrors "motovasiya/internal/motorcycles/errors"
	"motovasiya/pkg/config"
	"motovasiya/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Motorcycles"
)

type MotorcycleRepository interface {
	Create(ctx context.Context, motorcycle *model.Motorcycle) error
	FindByID(ctx context.Context, id string) (*model.Motorcycle, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*model.Motorcycle, error)
	Update(ctx context.Context, id string, motorcycle *model.Motorcycle) error
	Delete(ctx context.Context, id string) error
}

type mongoMotorcycleRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoMotorcycleRepository(cfg *config.Config) MotorcycleRepository {
	db := cfg.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoMotorcycleRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoMotorcycleRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoMotorcycleRepository) Create(ctx context.Context, motorcycle *model.Motorcycle) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	motorcycle.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, motorcycle)
	if err != nil {
		return fmt.Errorf("failed to create motorcycle: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		motorcycle.ID = oid.Hex()
	}
	return nil
}

func (r *mongoMotorcycleRepository) FindByID(ctx context.Context, id string) (*model.Motorcycle, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", motorcycleserrors.ErrInvalidID, id)
	}

	var motorcycle model.Motorcycle
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&motorcycle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, motorcycleserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find motorcycle: %w", err)
	}

	return &motorcycle, nil
}

func (r *mongoMotorcycleRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.Motorcycle, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find motorcycles: %w", err)
	}
	defer cursor.Close(ctx)

	var motorcycles []*model.Motorcycle
	if err = cursor.All(ctx, &motorcycles); err != nil {
		return nil, fmt.Errorf("failed to decode motorcycles: %w", err)
	}

	return motorcycles, nil
}

func (r *mongoMotorcycleRepository) Update(ctx context.Context, id string, motorcycle *model.Motorcycle) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", motorcycleserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":        motorcycle.Name,
			"image":       motorcycle.Image,
			"description": motorcycle.Description,
			"active":      motorcycle.Active,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update motorcycle: %w", err)
	}
	if result.MatchedCount == 0 {
		return motorcycleserrors.ErrNotFound
	}

	return nil
}

func (r *mongoMotorcycleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", motorcycleserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete motorcycle: %w", err)
	}
	if result.DeletedCount == 0 {
		return motorcycleserrors.ErrNotFound
	}

	return nil
}
