package session

import (
	"catalog-backend/internal/admin"
	"catalog-backend/internal/editor"
	"catalog-backend/internal/gallery"
	"catalog-backend/internal/i18n"
	"catalog-backend/internal/notice"
)

type GallerySnapshot struct {
	Loading    bool           `json:"loading"`
	Filter     string         `json:"filter"`
	Categories []string       `json:"categories"`
	Cards      []gallery.Card `json:"cards"`
	Total      int            `json:"total"`
	EmptyText  string         `json:"empty_text,omitempty"`
	AdminHint  string         `json:"admin_hint,omitempty"`
	Editing    string         `json:"editing,omitempty"`
}

// Snapshot is everything a client needs to render the page.
type Snapshot struct {
	Lang          i18n.Lang       `json:"lang"`
	Theme         Theme           `json:"theme"`
	IsAdmin       bool            `json:"is_admin"`
	Gallery       GallerySnapshot `json:"gallery"`
	Editor        editor.Snapshot `json:"editor"`
	Gate          admin.GateState `json:"gate"`
	PendingDelete string          `json:"pending_delete,omitempty"`
	Notices       []notice.Notice `json:"notices"`

	Text i18n.Bundle `json:"-"`
}

// Snapshot renders the current state and drains pending notices.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	isAdmin, lang, theme, editing := s.isAdmin, s.lang, s.theme, s.editTarget
	s.mu.Unlock()

	text := i18n.For(lang)
	st := s.view.State()
	gal := GallerySnapshot{
		Loading:    st.Loading,
		Filter:     st.Filter,
		Categories: st.Categories,
		Cards:      gallery.Cards(st.Visible, text.Catalog, isAdmin),
		Total:      len(st.Entries),
		Editing:    editing,
	}
	if !st.Loading && len(st.Visible) == 0 {
		gal.EmptyText = text.Catalog.Empty
		if isAdmin {
			gal.AdminHint = text.Catalog.EmptyAdmin
		}
	}

	return Snapshot{
		Lang:          lang,
		Theme:         theme,
		IsAdmin:       isAdmin,
		Gallery:       gal,
		Editor:        s.editor.Snapshot(),
		Gate:          s.gate.State(),
		PendingDelete: s.deletion.Pending(),
		Notices:       s.notices.Drain(),
		Text:          text,
	}
}
