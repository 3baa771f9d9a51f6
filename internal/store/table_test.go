package store

import (
	"context"
	"testing"
	"time"

	"catalog-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestTable(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list decodes rows newest first", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "2"},
				{Key: "created_at", Value: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
				{Key: "url", Value: nil},
				{Key: "title", Value: "Resume"},
				{Key: "image_url", Value: `["https://cdn.test/cv.pdf"]`},
				{Key: "category", Value: "Resume"},
			},
		)
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch,
			bson.D{
				{Key: "_id", Value: "1"},
				{Key: "created_at", Value: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
				{Key: "url", Value: "https://example.test"},
				{Key: "image_url", Value: "https://cdn.test/legacy.jpg"},
				{Key: "category", Value: "Project"},
			},
		)
		mt.AddMockResponses(first, second)

		items, err := NewTable(mt.Coll).List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, "2", items[0].ID)
		assert.Nil(mt, items[0].URL)
		assert.Equal(mt, []string{"https://cdn.test/cv.pdf"}, items[0].Media())
		assert.Equal(mt, "1", items[1].ID)
		assert.Equal(mt, []string{"https://cdn.test/legacy.jpg"}, items[1].Media())
		assert.Equal(mt, catalog.UntitledTitle, items[1].DisplayTitle())
	})

	mt.Run("list by category filters server side", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "3"},
				{Key: "created_at", Value: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
				{Key: "title", Value: "Bridge"},
				{Key: "category", Value: "Architecture"},
			},
		))

		items, err := NewTable(mt.Coll).ListByCategory(context.Background(), "Architecture")
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "Bridge", items[0].DisplayTitle())

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		filter := started.Command.Lookup("filter").Document()
		assert.Equal(mt, "Architecture", filter.Lookup("category").StringValue())
	})

	mt.Run("insert assigns id and created_at", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		table := NewTable(mt.Coll)
		fixed := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
		table.now = func() time.Time { return fixed }

		title := "Tower"
		item, err := table.Insert(context.Background(), catalog.Fields{Title: &title, Category: "Architecture"})
		require.NoError(mt, err)
		assert.Len(mt, item.ID, 24)
		assert.Equal(mt, fixed, item.CreatedAt)
		assert.Equal(mt, "Tower", *item.Title)
	})

	mt.Run("update of unknown id is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := NewTable(mt.Coll).Update(context.Background(), "missing", catalog.Fields{})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete removes a row", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		assert.NoError(mt, NewTable(mt.Coll).Delete(context.Background(), "1"))
	})

	mt.Run("delete of unknown id is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.ErrorIs(mt, NewTable(mt.Coll).Delete(context.Background(), "1"), ErrNotFound)
	})
}
