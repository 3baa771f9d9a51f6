package catalog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaDocument MediaKind = "document"
	MediaVideo    MediaKind = "video"
)

// EncodeMedia stores nothing for an empty list and a JSON array otherwise.
func EncodeMedia(refs []string) *string {
	if len(refs) == 0 {
		return nil
	}
	raw, err := json.Marshal(refs)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

// DecodeMedia reads the image_url column. Older rows hold a single bare URL
// instead of a JSON array; anything that does not parse is treated as that.
func DecodeMedia(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return []string{}
	}

	var refs []string
	if err := json.Unmarshal([]byte(value), &refs); err != nil {
		return []string{*raw}
	}
	if refs == nil {
		return []string{}
	}
	return refs
}

func ClassifyMedia(ref string) MediaKind {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".pdf":
		return MediaDocument
	case ".mp4", ".webm", ".ogg":
		return MediaVideo
	default:
		return MediaImage
	}
}
