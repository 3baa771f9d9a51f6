package editor

import (
	"context"
	"errors"
	"testing"

	"catalog-backend/internal/metadata"
	"catalog-backend/internal/notice"
	"catalog-backend/internal/store"
	"catalog-backend/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSecondFailureKeepsFirst(t *testing.T) {
	fake := storetest.New()
	fake.UploadErr = map[string]error{"b.png": errors.New("payload too large")}
	h := newHarness(t, nil, fake)
	require.NoError(t, h.ed.OpenCreate(true))

	added, err := h.ed.Upload(context.Background(), []store.Upload{upload("a.png"), upload("b.png"), upload("c.png")})

	require.Error(t, err)
	assert.Equal(t, []string{"https://cdn.test/images/a.png"}, added)
	assert.Equal(t, []string{"https://cdn.test/images/a.png"}, h.ed.Draft().Media)
	assert.Equal(t, 2, fake.CallsTo(store.OpUpload))
	assert.False(t, h.ed.Snapshot().Uploading)
	assert.Equal(t, []notice.Notice{{Level: notice.Error, Message: "Failed to upload b.png"}}, h.notices.Drain())
}

func TestUploadMissingBucketShowsHint(t *testing.T) {
	fake := storetest.New()
	fake.UploadErr = map[string]error{"a.png": &store.BucketMissingError{Bucket: "images"}}
	h := newHarness(t, nil, fake)
	require.NoError(t, h.ed.OpenCreate(true))

	_, err := h.ed.Upload(context.Background(), []store.Upload{upload("a.png")})

	assert.ErrorIs(t, err, store.ErrBucketNotFound)
	notes := h.notices.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, `Please create a public storage bucket named "images" before uploading.`, notes[0].Message)
}

func TestUploadAppendsAfterExistingMedia(t *testing.T) {
	h := newHarness(t, nil, storetest.New())
	require.NoError(t, h.ed.OpenCreate(true))
	require.NoError(t, h.ed.AddMediaURL("https://cdn.test/typed.png"))

	_, err := h.ed.Upload(context.Background(), []store.Upload{upload("a.png"), upload("b.pdf")})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.test/typed.png", "https://cdn.test/images/a.png", "https://cdn.test/images/b.pdf"}, h.ed.Draft().Media)
	assert.Equal(t, []notice.Notice{{Level: notice.Success, Message: "2 files uploaded successfully"}}, h.notices.Drain())
}

type cancellingStore struct {
	*storetest.Fake
	onUpload func()
}

func (c *cancellingStore) UploadFile(ctx context.Context, f store.Upload) (string, error) {
	c.onUpload()
	return c.Fake.UploadFile(ctx, f)
}

func TestUploadAfterCancelIsDropped(t *testing.T) {
	fake := storetest.New()
	cs := &cancellingStore{Fake: fake}
	h := newHarness(t, cs, fake)
	cs.onUpload = func() { _ = h.ed.Cancel() }
	require.NoError(t, h.ed.OpenCreate(true))

	_, err := h.ed.Upload(context.Background(), []store.Upload{upload("a.png")})

	assert.ErrorIs(t, err, ErrStale)
	assert.Empty(t, h.ed.Draft().Media)
	assert.Empty(t, h.notices.Drain())
}

func TestUploadRequiresOpenDialog(t *testing.T) {
	h := newHarness(t, nil, storetest.New())
	_, err := h.ed.Upload(context.Background(), []store.Upload{upload("a.png")})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAutoFetchNeedsURL(t *testing.T) {
	h := newHarness(t, nil, storetest.New())
	require.NoError(t, h.ed.OpenCreate(true))

	ok, err := h.ed.AutoFetch(context.Background())

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrEmptyURL)
	assert.Empty(t, h.meta.calls)
	assert.Equal(t, []notice.Notice{{Level: notice.Error, Message: MsgNeedURL}}, h.notices.Drain())
}

func TestAutoFetchPopulatesAndAppendsImage(t *testing.T) {
	h := newHarness(t, nil, storetest.New())
	h.meta.ok = true
	h.meta.md = metadata.Metadata{Title: "Site", Description: "About", ImageURL: "https://cdn.test/og.png"}
	require.NoError(t, h.ed.OpenCreate(true))
	require.NoError(t, h.ed.SetURL("https://example.test"))
	require.NoError(t, h.ed.AddMediaURL("https://cdn.test/mine.png"))

	ok, err := h.ed.AutoFetch(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	d := h.ed.Draft()
	assert.Equal(t, "Site", d.Title)
	assert.Equal(t, "About", d.Description)
	assert.Equal(t, []string{"https://cdn.test/mine.png", "https://cdn.test/og.png"}, d.Media)
	assert.Equal(t, []string{"https://example.test"}, h.meta.calls)
	assert.Equal(t, []notice.Notice{{Level: notice.Success, Message: MsgFetched}}, h.notices.Drain())
}

func TestAutoFetchFailureLeavesDraft(t *testing.T) {
	h := newHarness(t, nil, storetest.New())
	require.NoError(t, h.ed.OpenCreate(true))
	require.NoError(t, h.ed.Update(Patch{URL: storetest.Ptr("https://example.test"), Title: storetest.Ptr("Mine")}))

	ok, err := h.ed.AutoFetch(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Mine", h.ed.Draft().Title)
	assert.Equal(t, []notice.Notice{{Level: notice.Error, Message: MsgFetchFailed}}, h.notices.Drain())
}
