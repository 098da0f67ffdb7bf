// File: database/repository/service/service_mongo.go
package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceRepository reads the treatment catalog.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetNames(ctx context.Context) ([]models.ServiceName, error)
	UpsertByName(ctx context.Context, svc models.Service) error
	EnsureIndexes(ctx context.Context) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a ServiceRepository over the "services" collection.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{coll: db.Collection("services")}
}

// GetAll returns the full catalog in natural order.
func (r *mongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := r.findAll(ctx, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetNames returns the catalog projected to name only.
func (r *mongoServiceRepo) GetNames(ctx context.Context) ([]models.ServiceName, error) {
	names := []models.ServiceName{}
	if err := r.findAll(ctx, bson.M{"name": 1}, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *mongoServiceRepo) findAll(ctx context.Context, projection bson.M, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("error decoding services: %w", err)
	}
	return nil
}

// UpsertByName replaces the slots of the named service, creating it when absent.
func (r *mongoServiceRepo) UpsertByName(ctx context.Context, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": svc.Name}
	update := bson.M{"$set": bson.M{"name": svc.Name, "slots": svc.Slots}}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("error upserting service %q: %w", svc.Name, err)
	}
	return nil
}

// EnsureIndexes makes service names unique.
func (r *mongoServiceRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
