package commissions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		err := NewRepository(mt.Coll).Create(context.Background(), Inquiry{ID: "1", Service: ServiceWeb, Status: StatusNew})
		assert.NoError(mt, err)
	})

	mt.Run("list decodes documents", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "1"},
				{Key: "service", Value: "sketch"},
				{Key: "name", Value: "Rani"},
				{Key: "status", Value: "new"},
				{Key: "created_at", Value: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
			},
		))

		items, err := NewRepository(mt.Coll).List(context.Background(), ListFilter{Service: "sketch"}, 20, 0)
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "Rani", items[0].Name)
	})

	mt.Run("update status returns the new document", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: "1"},
				{Key: "status", Value: "contacted"},
			}},
		})

		got, err := NewRepository(mt.Coll).UpdateStatus(context.Background(), "1", StatusContacted, time.Now())
		require.NoError(mt, err)
		assert.Equal(mt, StatusContacted, got.Status)
	})
}

func TestFilterToBSON(t *testing.T) {
	assert.Equal(t, bson.M{}, filterToBSON(ListFilter{}))
	assert.Equal(t, bson.M{"status": "new", "service": "web"}, filterToBSON(ListFilter{Status: "new", Service: "web"}))
}
