package editor

import "catalog-backend/internal/catalog"

type MediaItem struct {
	Index int               `json:"index"`
	URL   string            `json:"url"`
	Kind  catalog.MediaKind `json:"kind"`
	Cover bool              `json:"cover"`
}

// Snapshot is the render model of the dialog.
type Snapshot struct {
	Status      Status      `json:"status"`
	Mode        Mode        `json:"mode,omitempty"`
	EditingID   string      `json:"editing_id,omitempty"`
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Categories  []string    `json:"categories"`
	Media       []MediaItem `json:"media"`
	Uploading   bool        `json:"uploading"`
	Fetching    bool        `json:"fetching"`
	Submitting  bool        `json:"submitting"`
}

func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	media := make([]MediaItem, 0, len(e.draft.Media))
	for i, ref := range e.draft.Media {
		media = append(media, MediaItem{Index: i, URL: ref, Kind: catalog.ClassifyMedia(ref), Cover: i == 0})
	}
	return Snapshot{
		Status:      e.status,
		Mode:        e.mode,
		EditingID:   e.editingID,
		URL:         e.draft.URL,
		Title:       e.draft.Title,
		Description: e.draft.Description,
		Category:    e.draft.Category,
		Categories:  append([]string{}, catalog.Categories...),
		Media:       media,
		Uploading:   e.uploading,
		Fetching:    e.fetching,
		Submitting:  e.status == StatusSubmitting,
	}
}
