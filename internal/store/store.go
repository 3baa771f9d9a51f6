package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"catalog-backend/internal/catalog"
)

const (
	OpList   = "list"
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
	OpUpload = "upload"
)

var (
	ErrNotFound       = errors.New("entry not found")
	ErrBucketNotFound = errors.New("bucket not found")
)

// Store is the remote persistence the gallery is built on: one table of
// entries and one public bucket for uploaded files.
type Store interface {
	ListEntries(ctx context.Context) ([]catalog.Entry, error)
	InsertEntry(ctx context.Context, fields catalog.Fields) (catalog.Entry, error)
	UpdateEntry(ctx context.Context, id string, fields catalog.Fields) error
	DeleteEntry(ctx context.Context, id string) error
	UploadFile(ctx context.Context, file Upload) (string, error)
}

type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Error wraps every failure reported by a Store.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// BucketMissingError is surfaced verbatim to admins as a setup hint.
type BucketMissingError struct {
	Bucket string
}

func (e *BucketMissingError) Error() string {
	return fmt.Sprintf("Please create a public storage bucket named %q before uploading.", e.Bucket)
}

func (e *BucketMissingError) Is(target error) bool {
	return target == ErrBucketNotFound
}

// UserMessage is the text shown to the admin for a failed store call.
// Bucket setup errors keep their hint, everything else uses fallback.
func UserMessage(err error, fallback string) string {
	var missing *BucketMissingError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	return fallback
}
