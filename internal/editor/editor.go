// Package editor is the create/edit dialog for one gallery entry.
package editor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/metadata"
	"catalog-backend/internal/notice"
	"catalog-backend/internal/store"
	"catalog-backend/internal/validation"
)

type Status string

const (
	StatusClosed     Status = "closed"
	StatusOpen       Status = "open"
	StatusSubmitting Status = "submitting"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

var (
	ErrNotAdmin   = errors.New("editor: admin mode required")
	ErrClosed     = errors.New("editor: not open")
	ErrBusy       = errors.New("editor: another action is in progress")
	ErrStale      = errors.New("editor: result arrived after the dialog changed")
	ErrBadIndex   = errors.New("editor: media index out of range")
	ErrEmptyURL   = errors.New("editor: url is empty")
	ErrValidation = errors.New("editor: validation failed")
)

// ValidationError lists the rejected fields by their validator tag.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "editor: validation failed"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (metadata.Metadata, bool)
}

type Deps struct {
	Store     store.Store
	Metadata  MetadataFetcher
	Notifier  notice.Notifier
	Validator *validation.Validator
	Log       *slog.Logger
	// Saved runs after a successful submit, outside the editor lock.
	Saved func(ctx context.Context)
	// EditEnded runs when an edit session is cancelled or saved.
	EditEnded func()
}

// Draft is the form content.
type Draft struct {
	URL         string
	Title       string
	Description string
	Category    string
	Media       []string
}

type Editor struct {
	store     store.Store
	meta      MetadataFetcher
	notify    notice.Notifier
	val       *validation.Validator
	log       *slog.Logger
	saved     func(ctx context.Context)
	editEnded func()

	mu        sync.Mutex
	status    Status
	mode      Mode
	editingID string
	original  catalog.Fields
	draft     Draft
	uploading bool
	fetching  bool
	gen       uint64
}

func New(deps Deps) *Editor {
	val := deps.Validator
	if val == nil {
		val = validation.New()
	}
	return &Editor{
		store:     deps.Store,
		meta:      deps.Metadata,
		notify:    deps.Notifier,
		val:       val,
		log:       logging.OrDiscard(deps.Log),
		saved:     deps.Saved,
		editEnded: deps.EditEnded,
		status:    StatusClosed,
		draft:     emptyDraft(),
	}
}

func emptyDraft() Draft {
	return Draft{Category: catalog.CategoryProject, Media: []string{}}
}

// OpenCreate opens an empty form. Only admins see the create affordance.
func (e *Editor) OpenCreate(isAdmin bool) error {
	if !isAdmin {
		return ErrNotAdmin
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == StatusSubmitting {
		return ErrBusy
	}
	e.reset()
	e.status = StatusOpen
	e.mode = ModeCreate
	return nil
}

// OpenEdit prefills the form from an existing entry.
func (e *Editor) OpenEdit(entry catalog.Entry, isAdmin bool) error {
	if !isAdmin {
		return ErrNotAdmin
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == StatusSubmitting {
		return ErrBusy
	}
	e.reset()
	e.status = StatusOpen
	e.mode = ModeEdit
	e.editingID = entry.ID
	e.original = entry.Editable()
	e.draft = Draft{
		URL:         catalog.Deref(entry.URL),
		Title:       catalog.Deref(entry.Title),
		Description: catalog.Deref(entry.Description),
		Category:    entry.Category,
		Media:       entry.Media(),
	}
	if e.draft.Category == "" {
		e.draft.Category = catalog.CategoryProject
	}
	return nil
}

// Cancel closes the dialog and clears the form. In-flight uploads and
// fetches are dropped when they complete. A submit cannot be cancelled once
// the store call is out.
func (e *Editor) Cancel() error {
	e.mu.Lock()
	if e.status == StatusSubmitting {
		e.mu.Unlock()
		return ErrBusy
	}
	wasEdit := e.status != StatusClosed && e.mode == ModeEdit
	e.reset()
	e.mu.Unlock()

	if wasEdit && e.editEnded != nil {
		e.editEnded()
	}
	return nil
}

// reset requires e.mu.
func (e *Editor) reset() {
	e.gen++
	e.status = StatusClosed
	e.mode = ""
	e.editingID = ""
	e.original = catalog.Fields{}
	e.draft = emptyDraft()
	e.uploading = false
	e.fetching = false
}

// Patch holds the text fields a form change may set. Nil leaves a field as is.
type Patch struct {
	URL         *string
	Title       *string
	Description *string
	Category    *string
}

func (e *Editor) Update(p Patch) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	if p.URL != nil {
		e.draft.URL = *p.URL
	}
	if p.Title != nil {
		e.draft.Title = *p.Title
	}
	if p.Description != nil {
		e.draft.Description = *p.Description
	}
	if p.Category != nil {
		e.draft.Category = strings.TrimSpace(*p.Category)
		if e.draft.Category == "" {
			e.draft.Category = catalog.CategoryProject
		}
	}
	return nil
}

func (e *Editor) SetURL(v string) error         { return e.Update(Patch{URL: &v}) }
func (e *Editor) SetTitle(v string) error       { return e.Update(Patch{Title: &v}) }
func (e *Editor) SetDescription(v string) error { return e.Update(Patch{Description: &v}) }
func (e *Editor) SetCategory(v string) error    { return e.Update(Patch{Category: &v}) }

// editable requires e.mu.
func (e *Editor) editable() error {
	switch e.status {
	case StatusOpen:
		return nil
	case StatusSubmitting:
		return ErrBusy
	default:
		return ErrClosed
	}
}

func (e *Editor) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Editor) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.draft
	d.Media = append([]string{}, e.draft.Media...)
	return d
}
