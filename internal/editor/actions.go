package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/notice"
	"catalog-backend/internal/store"
	"catalog-backend/internal/validation"
)

const (
	MsgNeedURL       = "Please enter a URL first"
	MsgFetched       = "Metadata fetched successfully"
	MsgFetchFailed   = "Could not fetch metadata automatically"
	MsgUploaded      = "Image uploaded successfully"
	MsgUploadedMany  = "%d files uploaded successfully"
	MsgUploadFailed  = "Failed to upload %s"
	MsgTitleRequired = "Title is required"
	MsgAdded         = "Project added to gallery"
	MsgUpdated       = "Project updated"
	MsgAddFailed     = "Failed to add project"
	MsgUpdateFailed  = "Failed to update project"
)

// Upload stores files one after another and appends their public URLs.
// The first failure stops the batch; files uploaded before it are kept.
func (e *Editor) Upload(ctx context.Context, files []store.Upload) ([]string, error) {
	e.mu.Lock()
	if err := e.editable(); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	if e.uploading {
		e.mu.Unlock()
		return nil, ErrBusy
	}
	e.uploading = true
	gen := e.gen
	e.mu.Unlock()

	added := make([]string, 0, len(files))
	var failed string
	var uploadErr error
	for _, f := range files {
		url, err := e.store.UploadFile(ctx, f)
		if err != nil {
			failed, uploadErr = f.Name, err
			break
		}
		added = append(added, url)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return nil, ErrStale
	}
	e.uploading = false
	e.draft.Media = append(e.draft.Media, added...)

	if uploadErr != nil {
		e.log.Error("editor upload: failed",
			slog.String("file", failed),
			slog.Int("kept", len(added)),
			slog.String("error", uploadErr.Error()),
		)
		e.notify.Notify(notice.Error, store.UserMessage(uploadErr, fmt.Sprintf(MsgUploadFailed, failed)))
		return added, uploadErr
	}

	switch len(added) {
	case 0:
	case 1:
		e.notify.Notify(notice.Success, MsgUploaded)
	default:
		e.notify.Notify(notice.Success, fmt.Sprintf(MsgUploadedMany, len(added)))
	}
	return added, nil
}

// AutoFetch fills title and description from the URL's page metadata and
// appends the page image to the media list.
func (e *Editor) AutoFetch(ctx context.Context) (bool, error) {
	e.mu.Lock()
	if err := e.editable(); err != nil {
		e.mu.Unlock()
		return false, err
	}
	target := strings.TrimSpace(e.draft.URL)
	if target == "" {
		e.mu.Unlock()
		e.notify.Notify(notice.Error, MsgNeedURL)
		return false, ErrEmptyURL
	}
	if e.fetching {
		e.mu.Unlock()
		return false, ErrBusy
	}
	e.fetching = true
	gen := e.gen
	e.mu.Unlock()

	md, ok := e.meta.Fetch(ctx, target)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return false, ErrStale
	}
	e.fetching = false
	if !ok {
		e.notify.Notify(notice.Error, MsgFetchFailed)
		return false, nil
	}

	e.draft.Title = md.Title
	e.draft.Description = md.Description
	if img := strings.TrimSpace(md.ImageURL); img != "" {
		e.draft.Media = append(e.draft.Media, img)
	}
	e.notify.Notify(notice.Success, MsgFetched)
	return true, nil
}

type submission struct {
	Title string `validate:"required"`
}

// Submit validates the draft and writes it to the store. On success the
// dialog resets and closes and the Saved hook refreshes the gallery; on
// failure the dialog stays open with the draft intact.
func (e *Editor) Submit(ctx context.Context) error {
	e.mu.Lock()
	if err := e.editable(); err != nil {
		e.mu.Unlock()
		return err
	}
	if e.uploading || e.fetching {
		e.mu.Unlock()
		return ErrBusy
	}
	if err := e.val.Struct(submission{Title: strings.TrimSpace(e.draft.Title)}); err != nil {
		e.mu.Unlock()
		e.notify.Notify(notice.Error, MsgTitleRequired)
		return &ValidationError{Fields: validationFields(e.val, err)}
	}

	mode, id := e.mode, e.editingID
	fields := e.payload()
	e.status = StatusSubmitting
	gen := e.gen
	e.mu.Unlock()

	var err error
	if mode == ModeEdit {
		err = e.store.UpdateEntry(ctx, id, fields)
	} else {
		_, err = e.store.InsertEntry(ctx, fields)
	}

	e.mu.Lock()
	current := gen == e.gen
	if err != nil {
		if !current {
			e.mu.Unlock()
			return ErrStale
		}
		e.status = StatusOpen
		e.mu.Unlock()
		msg := MsgAddFailed
		if mode == ModeEdit {
			msg = MsgUpdateFailed
		}
		e.log.Error("editor submit: failed", slog.String("mode", string(mode)), slog.String("entry_id", id), slog.String("error", err.Error()))
		e.notify.Notify(notice.Error, msg)
		return err
	}
	// The write happened, so the gallery resyncs even if the dialog moved on.
	if current {
		e.reset()
	}
	e.mu.Unlock()

	e.log.Info("editor submit: ok", slog.String("mode", string(mode)), slog.String("entry_id", id))
	if mode == ModeEdit {
		e.notify.Notify(notice.Success, MsgUpdated)
		if current && e.editEnded != nil {
			e.editEnded()
		}
	} else {
		e.notify.Notify(notice.Success, MsgAdded)
	}
	if e.saved != nil {
		e.saved(ctx)
	}
	return nil
}

// payload requires e.mu. Fields left untouched in edit mode are sent back
// exactly as they were loaded.
func (e *Editor) payload() catalog.Fields {
	orig := e.original
	edit := e.mode == ModeEdit

	fields := catalog.Fields{
		URL:         keepOrSet(edit, orig.URL, e.draft.URL),
		Title:       keepOrSet(edit, orig.Title, e.draft.Title),
		Description: keepOrSet(edit, orig.Description, e.draft.Description),
		ImageURL:    catalog.EncodeMedia(e.draft.Media),
		Category:    e.draft.Category,
	}
	if edit && sameMedia(catalog.DecodeMedia(orig.ImageURL), e.draft.Media) {
		fields.ImageURL = copyPtr(orig.ImageURL)
	}
	if fields.Category == "" {
		fields.Category = catalog.CategoryProject
	}
	return fields
}

func keepOrSet(edit bool, orig *string, value string) *string {
	if edit && catalog.Deref(orig) == value {
		return copyPtr(orig)
	}
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func copyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func sameMedia(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func validationFields(val *validation.Validator, err error) map[string]string {
	fields := map[string]string{}
	for _, fe := range val.ValidationErrors(err) {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return fields
}
