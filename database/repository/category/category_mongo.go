package categoryRepo

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

// categoryDoc carries the display position alongside the category so the
// user-defined order survives the round trip.
type categoryDoc struct {
	models.Category `bson:",inline"`
	Position        int `bson:"position"`
}

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo creates a CategoryRepository backed by the
// "categories" collection.
func NewMongoCategoryRepo() CategoryRepository {
	coll := database.MongoClient.Database("hometeam").Collection("categories")
	return &MongoCategoryRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCategoryRepo) GetAll() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	cats := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		cats = append(cats, d.Category)
	}
	return cats, nil
}

func (r *MongoCategoryRepo) Create(cat *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// New categories append at the end of the display order.
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	_, err = r.coll.InsertOne(ctx, categoryDoc{Category: *cat, Position: int(count)})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepo) Update(cat *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": cat.ID}
	update := bson.M{"$set": bson.M{"name": cat.Name, "icon": cat.Icon}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update category with id %d: %w", cat.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("category with id %d not found", cat.ID)
	}
	return nil
}

func (r *MongoCategoryRepo) Delete(id int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete category with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category with id %d not found", id)
	}
	return nil
}

// ReplaceAll overwrites the stored list, renumbering positions to match the
// given order. Used after move-up/move-down reordering.
func (r *MongoCategoryRepo) ReplaceAll(cats []models.Category) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	if len(cats) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(cats))
	for i, cat := range cats {
		docs = append(docs, categoryDoc{Category: cat, Position: i})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to rewrite categories: %w", err)
	}
	return nil
}
