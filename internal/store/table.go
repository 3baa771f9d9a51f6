package store

import (
	"context"
	"time"

	"catalog-backend/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Table keeps gallery entries in a Mongo collection shaped like the links
// table: _id, created_at, url, title, description, image_url, category.
type Table struct {
	col *mongo.Collection
	now func() time.Time
}

func NewTable(col *mongo.Collection) *Table {
	return &Table{col: col, now: time.Now}
}

func (t *Table) List(ctx context.Context) ([]catalog.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := t.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]catalog.Entry, 0)
	for cursor.Next(ctx) {
		var item catalog.Entry
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory is used by operator tooling; the gallery always loads the
// full list and filters in memory.
func (t *Table) ListByCategory(ctx context.Context, category string) ([]catalog.Entry, error) {
	if category == "" || category == catalog.CategoryAll {
		return t.List(ctx)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := t.col.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]catalog.Entry, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *Table) Insert(ctx context.Context, fields catalog.Fields) (catalog.Entry, error) {
	item := catalog.Entry{
		ID:        primitive.NewObjectID().Hex(),
		CreatedAt: t.now().UTC().Truncate(time.Millisecond),
		Fields:    fields,
	}
	if _, err := t.col.InsertOne(ctx, item); err != nil {
		return catalog.Entry{}, err
	}
	return item, nil
}

func (t *Table) Update(ctx context.Context, id string, fields catalog.Fields) error {
	set := bson.M{
		"url":         fields.URL,
		"title":       fields.Title,
		"description": fields.Description,
		"image_url":   fields.ImageURL,
		"category":    fields.Category,
	}
	res, err := t.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *Table) Delete(ctx context.Context, id string) error {
	res, err := t.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
