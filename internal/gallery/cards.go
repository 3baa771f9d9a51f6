package gallery

import (
	"catalog-backend/internal/catalog"
	"catalog-backend/internal/i18n"
)

type Media struct {
	URL  string            `json:"url"`
	Kind catalog.MediaKind `json:"kind"`
}

// Card is the render model of one grid tile.
type Card struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Kind        catalog.CardKind `json:"kind"`
	URL         string           `json:"url,omitempty"`
	Cover       *Media           `json:"cover,omitempty"`
	Media       []Media          `json:"media"`
	ActionLabel string           `json:"action_label,omitempty"`
	CanEdit     bool             `json:"can_edit"`
	CanDelete   bool             `json:"can_delete"`
}

func Cards(entries []catalog.Entry, text i18n.Catalog, isAdmin bool) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, NewCard(e, text, isAdmin))
	}
	return cards
}

func NewCard(e catalog.Entry, text i18n.Catalog, isAdmin bool) Card {
	refs := e.Media()
	media := make([]Media, 0, len(refs))
	for _, ref := range refs {
		media = append(media, Media{URL: ref, Kind: catalog.ClassifyMedia(ref)})
	}

	card := Card{
		ID:          e.ID,
		Title:       e.DisplayTitle(),
		Description: e.DisplayDescription(),
		Category:    e.Category,
		Kind:        e.Kind(),
		Media:       media,
		CanEdit:     isAdmin,
		CanDelete:   isAdmin,
	}
	if len(media) > 0 {
		cover := media[0]
		card.Cover = &cover
	}

	label := text.ViewProject
	if e.Category == catalog.CategoryResume {
		label = text.ViewResume
	}
	switch card.Kind {
	case catalog.CardLink:
		card.URL = catalog.Deref(e.URL)
		card.ActionLabel = label
	case catalog.CardGallery:
		card.ActionLabel = label
	}
	return card
}
