// Package storetest provides an in-memory store.Store for tests.
package storetest

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/store"
)

type Call struct {
	Op     string
	ID     string
	Fields catalog.Fields
	Upload string
}

// Fake keeps entries in memory and records every call. Hooks let a test
// fail or delay individual operations.
type Fake struct {
	mu      sync.Mutex
	entries []catalog.Entry
	calls   []Call
	seq     int
	clock   time.Time

	ListErr   error
	InsertErr error
	UpdateErr error
	DeleteErr error
	// UploadErr is consulted per file name; a missing key uploads fine.
	UploadErr map[string]error
	// BeforeList runs before ListEntries returns, outside the lock.
	BeforeList func(ctx context.Context)
}

func New(entries ...catalog.Entry) *Fake {
	f := &Fake{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	f.entries = append(f.entries, entries...)
	f.seq = len(entries)
	return f
}

func (f *Fake) ListEntries(ctx context.Context) ([]catalog.Entry, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: store.OpList})
	err := f.ListErr
	out := make([]catalog.Entry, len(f.entries))
	copy(out, f.entries)
	hook := f.BeforeList
	f.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}
	if err != nil {
		return nil, &store.Error{Op: store.OpList, Err: err}
	}
	return out, nil
}

func (f *Fake) InsertEntry(ctx context.Context, fields catalog.Fields) (catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: store.OpInsert, Fields: fields})
	if f.InsertErr != nil {
		return catalog.Entry{}, &store.Error{Op: store.OpInsert, Err: f.InsertErr}
	}
	f.seq++
	f.clock = f.clock.Add(time.Minute)
	item := catalog.Entry{ID: fmt.Sprintf("%d", f.seq), CreatedAt: f.clock, Fields: fields}
	f.entries = append([]catalog.Entry{item}, f.entries...)
	return item, nil
}

func (f *Fake) UpdateEntry(ctx context.Context, id string, fields catalog.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: store.OpUpdate, ID: id, Fields: fields})
	if f.UpdateErr != nil {
		return &store.Error{Op: store.OpUpdate, Err: f.UpdateErr}
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Fields = fields
			return nil
		}
	}
	return &store.Error{Op: store.OpUpdate, Err: store.ErrNotFound}
}

func (f *Fake) DeleteEntry(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: store.OpDelete, ID: id})
	if f.DeleteErr != nil {
		return &store.Error{Op: store.OpDelete, Err: f.DeleteErr}
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return &store.Error{Op: store.OpDelete, Err: store.ErrNotFound}
}

func (f *Fake) UploadFile(ctx context.Context, file store.Upload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: store.OpUpload, Upload: file.Name})
	if err, ok := f.UploadErr[file.Name]; ok {
		return "", &store.Error{Op: store.OpUpload, Err: err}
	}
	if file.Body != nil {
		_, _ = io.Copy(io.Discard, file.Body)
	}
	return "https://cdn.test/images/" + file.Name, nil
}

func (f *Fake) Entries() []catalog.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]catalog.Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallsTo counts recorded calls of one operation.
func (f *Fake) CallsTo(op string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (f *Fake) SetListErr(err error) {
	f.mu.Lock()
	f.ListErr = err
	f.mu.Unlock()
}

func Ptr(s string) *string { return &s }
