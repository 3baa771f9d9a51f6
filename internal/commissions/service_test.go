package commissions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryRepo struct {
	mu    sync.Mutex
	items []Inquiry
	err   error
}

func (m *memoryRepo) Create(ctx context.Context, inquiry Inquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.items = append([]Inquiry{inquiry}, m.items...)
	return nil
}

func (m *memoryRepo) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Inquiry, 0)
	for _, it := range m.items {
		if filter.Status != "" && it.Status != filter.Status {
			continue
		}
		if filter.Service != "" && it.Service != filter.Service {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *memoryRepo) Count(ctx context.Context, filter ListFilter) (int64, error) {
	items, _ := m.List(ctx, filter, 0, 0)
	return int64(len(items)), nil
}

func (m *memoryRepo) UpdateStatus(ctx context.Context, id string, status string, now time.Time) (Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			m.items[i].UpdatedAt = now
			return m.items[i], nil
		}
	}
	return Inquiry{}, mongo.ErrNoDocuments
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Inquiry
	err  error
}

func (r *recordingNotifier) SendCommissionNotification(ctx context.Context, inquiry Inquiry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, inquiry)
	return "msg-1", r.err
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func TestCreateNormalizes(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, time.UTC, nil)
	fixed := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.Create(context.Background(), CreateRequest{
		Service: " Sketch ",
		Name:    " Rani ",
		Phone:   "+628123456789",
		Message: " A portrait please ",
	}, "id")

	require.NoError(t, err)
	assert.Len(t, got.ID, 24)
	assert.Equal(t, ServiceSketch, got.Service)
	assert.Equal(t, "Rani", got.Name)
	assert.Equal(t, ChannelWhatsApp, got.Channel)
	assert.Equal(t, StatusNew, got.Status)
	assert.Equal(t, "id", got.Lang)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Len(t, repo.items, 1)
}

func TestCreateRequiresContact(t *testing.T) {
	svc := NewService(&memoryRepo{}, nil, nil)
	_, err := svc.Create(context.Background(), CreateRequest{Service: "web", Name: "A", Message: "hi"}, "")
	assert.ErrorIs(t, err, ErrMissingContact)

	_, err = svc.Create(context.Background(), CreateRequest{Service: "mural", Name: "A", Email: "a@b.test", Message: "hi"}, "")
	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestCreateDefaultsToEmailChannel(t *testing.T) {
	svc := NewService(&memoryRepo{}, nil, nil)
	got, err := svc.Create(context.Background(), CreateRequest{Service: "web", Name: "A", Email: "a@b.test", Phone: "+6281111111", Message: "hi"}, "en")
	require.NoError(t, err)
	assert.Equal(t, ChannelEmail, got.Channel)
}

func TestListAdminValidatesFilter(t *testing.T) {
	repo := &memoryRepo{items: []Inquiry{{ID: "1", Service: "web", Status: StatusNew}, {ID: "2", Service: "sketch", Status: StatusAccepted}}}
	svc := NewService(repo, nil, nil)

	items, total, err := svc.ListAdmin(context.Background(), ListFilter{Service: "WEB"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "1", items[0].ID)

	_, _, err = svc.ListAdmin(context.Background(), ListFilter{Status: "archived"}, 20, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus(t *testing.T) {
	repo := &memoryRepo{items: []Inquiry{{ID: "1", Status: StatusNew}}}
	svc := NewService(repo, nil, nil)

	got, err := svc.UpdateStatus(context.Background(), "1", "Contacted")
	require.NoError(t, err)
	assert.Equal(t, StatusContacted, got.Status)

	_, err = svc.UpdateStatus(context.Background(), "2", StatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(context.Background(), "1", "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNotifyOwner(t *testing.T) {
	assert.NoError(t, NewService(&memoryRepo{}, nil, nil).NotifyOwner(context.Background(), Inquiry{}))

	n := &recordingNotifier{err: errors.New("smtp down")}
	err := NewService(&memoryRepo{}, nil, n).NotifyOwner(context.Background(), Inquiry{ID: "1"})
	assert.Error(t, err)
	assert.Equal(t, 1, n.count())
}
