package editor

import "strings"

// AddMediaURL appends a typed URL to the media list.
func (e *Editor) AddMediaURL(raw string) error {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return ErrEmptyURL
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	e.draft.Media = append(e.draft.Media, ref)
	return nil
}

func (e *Editor) RemoveMedia(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(e.draft.Media) {
		return ErrBadIndex
	}
	media := make([]string, 0, len(e.draft.Media)-1)
	media = append(media, e.draft.Media[:index]...)
	e.draft.Media = append(media, e.draft.Media[index+1:]...)
	return nil
}

// MoveMedia moves one element so that it ends up at index to.
func (e *Editor) MoveMedia(from, to int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	n := len(e.draft.Media)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrBadIndex
	}
	if from == to {
		return nil
	}
	ref := e.draft.Media[from]
	rest := make([]string, 0, n)
	rest = append(rest, e.draft.Media[:from]...)
	rest = append(rest, e.draft.Media[from+1:]...)

	media := make([]string, 0, n)
	media = append(media, rest[:to]...)
	media = append(media, ref)
	e.draft.Media = append(media, rest[to:]...)
	return nil
}

// MakeCover moves the element at index to the front.
func (e *Editor) MakeCover(index int) error {
	return e.MoveMedia(index, 0)
}
