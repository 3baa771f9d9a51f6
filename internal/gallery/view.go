// Package gallery holds the visitor's copy of the catalog: the list loaded
// from the store, the active category filter and the delete confirmation.
package gallery

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/notice"
	"catalog-backend/internal/store"
)

const MsgLoadFailed = "Failed to load gallery"

// ErrStale is returned by Refresh when a newer refresh, a Remove or an
// Invalidate happened while the list call was in flight. Its result was dropped.
var ErrStale = errors.New("gallery: stale refresh discarded")

type View struct {
	store  store.Store
	notify notice.Notifier
	log    *slog.Logger

	mu      sync.Mutex
	entries []catalog.Entry
	loading bool
	filter  string
	gen     uint64
}

func NewView(st store.Store, notify notice.Notifier, log *slog.Logger) *View {
	return &View{
		store:   st,
		notify:  notify,
		log:     logging.OrDiscard(log),
		entries: []catalog.Entry{},
		filter:  catalog.CategoryAll,
	}
}

// Refresh replaces the list with the store's current rows. On failure the
// previous list is kept and a notice is raised.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	v.mu.Unlock()

	entries, err := v.store.ListEntries(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		v.log.Debug("gallery refresh: stale result dropped", slog.Uint64("generation", gen))
		return ErrStale
	}
	v.loading = false
	if err != nil {
		v.log.Error("gallery refresh: list failed", slog.String("error", err.Error()))
		v.notify.Notify(notice.Error, MsgLoadFailed)
		return err
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	v.entries = entries
	return nil
}

// Invalidate drops any in-flight refresh.
func (v *View) Invalidate() {
	v.mu.Lock()
	v.gen++
	v.loading = false
	v.mu.Unlock()
}

// Remove patches the list after a confirmed delete. A refresh that started
// before the delete could still carry the row, so it is dropped.
func (v *View) Remove(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.loading = false
	for i := range v.entries {
		if v.entries[i].ID == id {
			v.entries = append(v.entries[:i:i], v.entries[i+1:]...)
			return true
		}
	}
	return false
}

// SetFilter accepts any value. A category that is not present simply
// matches nothing.
func (v *View) SetFilter(filter string) {
	if filter == "" {
		filter = catalog.CategoryAll
	}
	v.mu.Lock()
	v.filter = filter
	v.mu.Unlock()
}

func (v *View) Filter() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *View) Entries() []catalog.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]catalog.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v *View) Find(id string) (catalog.Entry, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.entries {
		if e.ID == id {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

type State struct {
	Loading    bool            `json:"loading"`
	Filter     string          `json:"filter"`
	Categories []string        `json:"categories"`
	Entries    []catalog.Entry `json:"-"`
	Visible    []catalog.Entry `json:"-"`
}

// State derives categories and the visible subset from one consistent read.
func (v *View) State() State {
	v.mu.Lock()
	entries := make([]catalog.Entry, len(v.entries))
	copy(entries, v.entries)
	st := State{Loading: v.loading, Filter: v.filter, Entries: entries}
	v.mu.Unlock()

	st.Categories = Categories(entries)
	st.Visible = Visible(st.Filter, entries)
	return st
}

// Categories is "All" followed by each distinct category in first-seen order.
func Categories(entries []catalog.Entry) []string {
	out := []string{catalog.CategoryAll}
	seen := map[string]struct{}{catalog.CategoryAll: {}}
	for _, e := range entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

func Visible(filter string, entries []catalog.Entry) []catalog.Entry {
	if filter == catalog.CategoryAll {
		out := make([]catalog.Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == filter {
			out = append(out, e)
		}
	}
	return out
}
