package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/metrics"
)

type entryTable interface {
	List(ctx context.Context) ([]catalog.Entry, error)
	Insert(ctx context.Context, fields catalog.Fields) (catalog.Entry, error)
	Update(ctx context.Context, id string, fields catalog.Fields) error
	Delete(ctx context.Context, id string) error
}

type objectStore interface {
	Put(ctx context.Context, file Upload) (string, error)
}

// Client is the Store backed by a Mongo table and an object bucket.
type Client struct {
	table   entryTable
	objects objectStore
}

func NewClient(table *Table, objects *Objects) *Client {
	return &Client{table: table, objects: objects}
}

func (c *Client) ListEntries(ctx context.Context) ([]catalog.Entry, error) {
	start := time.Now()
	items, err := c.table.List(ctx)
	metrics.ObserveStore(OpList, start, err)
	if err != nil {
		return nil, wrap(OpList, err)
	}
	return items, nil
}

func (c *Client) InsertEntry(ctx context.Context, fields catalog.Fields) (catalog.Entry, error) {
	start := time.Now()
	item, err := c.table.Insert(ctx, fields)
	metrics.ObserveStore(OpInsert, start, err)
	if err != nil {
		return catalog.Entry{}, wrap(OpInsert, err)
	}
	return item, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id string, fields catalog.Fields) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return wrap(OpUpdate, ErrNotFound)
	}
	start := time.Now()
	err := c.table.Update(ctx, id, fields)
	metrics.ObserveStore(OpUpdate, start, err)
	return wrap(OpUpdate, err)
}

func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return wrap(OpDelete, ErrNotFound)
	}
	start := time.Now()
	err := c.table.Delete(ctx, id)
	metrics.ObserveStore(OpDelete, start, err)
	return wrap(OpDelete, err)
}

func (c *Client) UploadFile(ctx context.Context, file Upload) (string, error) {
	if file.Body == nil {
		return "", wrap(OpUpload, errors.New("empty upload"))
	}
	start := time.Now()
	publicURL, err := c.objects.Put(ctx, file)
	metrics.ObserveStore(OpUpload, start, err)
	if err != nil {
		return "", wrap(OpUpload, err)
	}
	metrics.AddUploadBytes(file.Size)
	return publicURL, nil
}
