package gallery

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"catalog-backend/internal/logging"
	"catalog-backend/internal/notice"
	"catalog-backend/internal/store"
)

const (
	MsgDeleted      = "Project removed successfully"
	MsgDeleteFailed = "Failed to delete project"
)

var ErrNothingPending = errors.New("gallery: no delete pending")

// Deletion is the yes/no dialog in front of every delete.
type Deletion struct {
	store  store.Store
	view   *View
	notify notice.Notifier
	log    *slog.Logger

	mu      sync.Mutex
	pending string
	busy    bool
}

func NewDeletion(st store.Store, view *View, notify notice.Notifier, log *slog.Logger) *Deletion {
	return &Deletion{store: st, view: view, notify: notify, log: logging.OrDiscard(log)}
}

func (d *Deletion) Request(id string) {
	d.mu.Lock()
	d.pending = id
	d.mu.Unlock()
}

func (d *Deletion) Cancel() {
	d.mu.Lock()
	d.pending = ""
	d.mu.Unlock()
}

func (d *Deletion) Pending() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Confirm deletes the pending entry. The dialog closes whether or not the
// store call succeeds.
func (d *Deletion) Confirm(ctx context.Context) error {
	d.mu.Lock()
	id := d.pending
	if id == "" || d.busy {
		d.mu.Unlock()
		return ErrNothingPending
	}
	d.pending = ""
	d.busy = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.busy = false
		d.mu.Unlock()
	}()

	if err := d.store.DeleteEntry(ctx, id); err != nil {
		d.log.Error("gallery delete: failed", slog.String("entry_id", id), slog.String("error", err.Error()))
		d.notify.Notify(notice.Error, MsgDeleteFailed)
		return err
	}

	d.view.Remove(id)
	d.log.Info("gallery delete: ok", slog.String("entry_id", id))
	d.notify.Notify(notice.Success, MsgDeleted)
	return nil
}
