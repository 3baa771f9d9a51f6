// Package session is the per-visitor controller. It owns the gallery view,
// the editor, the delete dialog, the passcode gate and the admin flag, and
// turns them into one render snapshot.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"catalog-backend/internal/admin"
	"catalog-backend/internal/editor"
	"catalog-backend/internal/gallery"
	"catalog-backend/internal/i18n"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/notice"
	"catalog-backend/internal/store"
	"catalog-backend/internal/validation"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	ErrNotAdmin      = errors.New("session: admin mode required")
	ErrEntryNotFound = errors.New("session: entry not in gallery")
	ErrUnknownLang   = errors.New("session: unsupported language")
	ErrUnknownTheme  = errors.New("session: unsupported theme")
)

type Deps struct {
	Store     store.Store
	Metadata  editor.MetadataFetcher
	Checker   admin.Checker
	Validator *validation.Validator
	Log       *slog.Logger
}

type Session struct {
	id  string
	log *slog.Logger

	notices  *notice.Queue
	view     *gallery.View
	deletion *gallery.Deletion
	editor   *editor.Editor
	gate     *admin.Gate

	mu         sync.Mutex
	isAdmin    bool
	lang       i18n.Lang
	theme      Theme
	loaded     bool
	editTarget string
}

func New(id string, deps Deps) *Session {
	log := logging.OrDiscard(deps.Log).With(slog.String("session_id", shortID(id)))
	q := notice.NewQueue()
	s := &Session{
		id:      id,
		log:     log,
		notices: q,
		lang:    i18n.Default,
		theme:   ThemeLight,
	}
	s.view = gallery.NewView(deps.Store, q, log)
	s.deletion = gallery.NewDeletion(deps.Store, s.view, q, log)
	s.gate = admin.NewGate(deps.Checker, q, log)
	s.editor = editor.New(editor.Deps{
		Store:     deps.Store,
		Metadata:  deps.Metadata,
		Notifier:  q,
		Validator: deps.Validator,
		Log:       log,
		Saved: func(ctx context.Context) {
			_ = s.view.Refresh(ctx)
		},
		EditEnded: s.endEdit,
	})
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Editor() *editor.Editor { return s.editor }

// EnsureLoaded runs the initial gallery load once per session.
func (s *Session) EnsureLoaded(ctx context.Context) {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return
	}
	s.loaded = true
	s.mu.Unlock()

	_ = s.view.Refresh(ctx)
}

func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return s.view.Refresh(ctx)
}

func (s *Session) SetFilter(filter string) {
	s.view.SetFilter(strings.TrimSpace(filter))
}

func (s *Session) SetLang(raw string) error {
	lang, ok := i18n.Parse(raw)
	if !ok {
		return ErrUnknownLang
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	return nil
}

func (s *Session) SetTheme(raw string) error {
	theme := Theme(strings.ToLower(strings.TrimSpace(raw)))
	if theme != ThemeLight && theme != ThemeDark {
		return ErrUnknownTheme
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return nil
}

func (s *Session) Lang() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin
}

func (s *Session) OpenGate()  { s.gate.Open() }
func (s *Session) CloseGate() { s.gate.Close() }

// Login submits the passcode to the gate and sets the admin flag on a match.
func (s *Session) Login(passcode string) bool {
	ok := s.gate.Submit(passcode, i18n.For(s.Lang()).Admin)
	if ok {
		s.mu.Lock()
		s.isAdmin = true
		s.mu.Unlock()
	}
	return ok
}

// Logout clears the flag and closes any admin dialog.
func (s *Session) Logout() {
	s.mu.Lock()
	s.isAdmin = false
	s.mu.Unlock()

	_ = s.editor.Cancel()
	s.deletion.Cancel()
	s.gate.Close()
	s.notices.Notify(notice.Info, admin.MsgLoggedOut)
}

func (s *Session) OpenCreate() error {
	return s.editor.OpenCreate(s.IsAdmin())
}

// OpenEdit opens the editor on an entry of the loaded gallery.
func (s *Session) OpenEdit(id string) error {
	entry, ok := s.view.Find(id)
	if !ok {
		return ErrEntryNotFound
	}
	if err := s.editor.OpenEdit(entry, s.IsAdmin()); err != nil {
		return err
	}
	s.mu.Lock()
	s.editTarget = id
	s.mu.Unlock()
	return nil
}

func (s *Session) endEdit() {
	s.mu.Lock()
	s.editTarget = ""
	s.mu.Unlock()
}

func (s *Session) RequestDelete(id string) error {
	if !s.IsAdmin() {
		return ErrNotAdmin
	}
	if _, ok := s.view.Find(id); !ok {
		return ErrEntryNotFound
	}
	s.deletion.Request(id)
	return nil
}

func (s *Session) ConfirmDelete(ctx context.Context) error {
	if !s.IsAdmin() {
		s.deletion.Cancel()
		return ErrNotAdmin
	}
	return s.deletion.Confirm(ctx)
}

func (s *Session) CancelDelete() {
	s.deletion.Cancel()
}

// Close drops in-flight results; called when the session expires.
func (s *Session) Close() {
	s.view.Invalidate()
	_ = s.editor.Cancel()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
