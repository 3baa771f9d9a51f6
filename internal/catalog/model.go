package catalog

import (
	"strings"
	"time"
)

const (
	CategoryAll          = "All"
	CategoryProject      = "Project"
	CategoryResume       = "Resume"
	CategoryArchitecture = "Architecture"
	CategoryBlog         = "Blog"

	UntitledTitle      = "Untitled Work"
	DefaultDescription = "A curated piece of work"
)

// Categories offered by the editor. Stored entries may carry any other value.
var Categories = []string{CategoryProject, CategoryResume, CategoryArchitecture, CategoryBlog}

// Fields are the mutable columns of a gallery entry.
type Fields struct {
	URL         *string `bson:"url" json:"url"`
	Title       *string `bson:"title" json:"title"`
	Description *string `bson:"description" json:"description"`
	ImageURL    *string `bson:"image_url" json:"image_url"`
	Category    string  `bson:"category" json:"category"`
}

type Entry struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Fields    `bson:",inline"`
}

type CardKind string

const (
	CardLink        CardKind = "link"
	CardGallery     CardKind = "gallery"
	CardPlaceholder CardKind = "placeholder"
)

// Editable returns a copy of the entry's mutable fields.
func (e Entry) Editable() Fields {
	return Fields{
		URL:         copyString(e.URL),
		Title:       copyString(e.Title),
		Description: copyString(e.Description),
		ImageURL:    copyString(e.ImageURL),
		Category:    e.Category,
	}
}

func (e Entry) Media() []string {
	return DecodeMedia(e.ImageURL)
}

// Cover is the first media reference, or "" when the entry has none.
func (e Entry) Cover() string {
	media := e.Media()
	if len(media) == 0 {
		return ""
	}
	return media[0]
}

func (e Entry) DisplayTitle() string {
	if e.Title == nil || strings.TrimSpace(*e.Title) == "" {
		return UntitledTitle
	}
	return *e.Title
}

func (e Entry) DisplayDescription() string {
	if e.Description == nil || strings.TrimSpace(*e.Description) == "" {
		return DefaultDescription
	}
	return *e.Description
}

func (e Entry) Kind() CardKind {
	if e.URL != nil && strings.TrimSpace(*e.URL) != "" {
		return CardLink
	}
	if len(e.Media()) > 0 {
		return CardGallery
	}
	return CardPlaceholder
}

// OptionalString maps blank input to nil, the way absent columns are stored.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
