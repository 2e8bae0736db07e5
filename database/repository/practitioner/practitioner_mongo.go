package practitionerRepo

import (
	"context"
	"fmt"
	"time"

	"hometeam/database"
	"hometeam/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPractitionerRepo implements PractitionerRepository using MongoDB.
type MongoPractitionerRepo struct {
	coll *mongo.Collection
}

// NewMongoPractitionerRepo creates a PractitionerRepository backed by the
// "practitioners" collection.
func NewMongoPractitionerRepo() PractitionerRepository {
	coll := database.MongoClient.Database("hometeam").Collection("practitioners")
	return &MongoPractitionerRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPractitionerRepo) GetAll() ([]models.Practitioner, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioners: %w", err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, fmt.Errorf("failed to decode practitioners: %w", err)
	}
	return practitioners, nil
}

// Create inserts a new practitioner document.
func (r *MongoPractitionerRepo) Create(p *models.Practitioner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create practitioner: %w", err)
	}
	return nil
}

// Update replaces an existing practitioner document.
func (r *MongoPractitionerRepo) Update(p *models.Practitioner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": p.ID}
	update := bson.M{"$set": p}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update practitioner with id %d: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("practitioner with id %d not found", p.ID)
	}
	return nil
}

// Delete removes a practitioner document by its ID.
func (r *MongoPractitionerRepo) Delete(id int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete practitioner with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("practitioner with id %d not found", id)
	}
	return nil
}

// SetField patches a single boolean field, used for the featured and
// verified toggles.
func (r *MongoPractitionerRepo) SetField(id int, field string, value bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{field: value}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to toggle %s on practitioner %d: %w", field, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("practitioner with id %d not found", id)
	}
	return nil
}
