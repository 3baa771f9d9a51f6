package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catalog-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTable struct {
	entries []catalog.Entry
	err     error
	updated map[string]catalog.Fields
}

func (s *stubTable) List(ctx context.Context) ([]catalog.Entry, error) {
	return s.entries, s.err
}

func (s *stubTable) Insert(ctx context.Context, fields catalog.Fields) (catalog.Entry, error) {
	if s.err != nil {
		return catalog.Entry{}, s.err
	}
	return catalog.Entry{ID: "new", Fields: fields}, nil
}

func (s *stubTable) Update(ctx context.Context, id string, fields catalog.Fields) error {
	if s.err != nil {
		return s.err
	}
	if s.updated == nil {
		s.updated = map[string]catalog.Fields{}
	}
	s.updated[id] = fields
	return nil
}

func (s *stubTable) Delete(ctx context.Context, id string) error {
	return s.err
}

type stubObjects struct {
	url string
	err error
}

func (s stubObjects) Put(ctx context.Context, file Upload) (string, error) {
	return s.url, s.err
}

func TestClientWrapsFailuresAsStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	c := &Client{table: &stubTable{err: boom}, objects: stubObjects{err: boom}}
	ctx := context.Background()

	_, err := c.ListEntries(ctx)
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpList, se.Op)
	assert.ErrorIs(t, err, boom)

	_, err = c.InsertEntry(ctx, catalog.Fields{})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpInsert, se.Op)

	err = c.DeleteEntry(ctx, "1")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpDelete, se.Op)

	_, err = c.UploadFile(ctx, Upload{Name: "a.png", Body: strings.NewReader("x")})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpUpload, se.Op)
}

func TestClientBlankIDIsNotFound(t *testing.T) {
	c := &Client{table: &stubTable{}, objects: stubObjects{}}

	err := c.UpdateEntry(context.Background(), "  ", catalog.Fields{})
	assert.ErrorIs(t, err, ErrNotFound)
	err = c.DeleteEntry(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientPassesThrough(t *testing.T) {
	table := &stubTable{entries: []catalog.Entry{{ID: "2"}, {ID: "1"}}}
	c := &Client{table: table, objects: stubObjects{url: "https://cdn.test/a.png"}}
	ctx := context.Background()

	items, err := c.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	title := "Title"
	require.NoError(t, c.UpdateEntry(ctx, " 2 ", catalog.Fields{Title: &title}))
	assert.Equal(t, "Title", *table.updated["2"].Title)

	got, err := c.UploadFile(ctx, Upload{Name: "a.png", Body: strings.NewReader("x"), Size: 1})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.png", got)
}

func TestUserMessageFallsBack(t *testing.T) {
	assert.Equal(t, "Failed", UserMessage(errors.New("boom"), "Failed"))
	wrapped := wrap(OpUpload, &BucketMissingError{Bucket: "images"})
	assert.Contains(t, UserMessage(wrapped, "Failed"), "images")
	assert.ErrorIs(t, wrapped, ErrBucketNotFound)
}
