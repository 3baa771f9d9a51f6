package commissions

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidService = errors.New("invalid service")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrMissingContact = errors.New("email or phone is required")
	ErrNotFound       = errors.New("inquiry not found")
)

type Notifier interface {
	SendCommissionNotification(ctx context.Context, inquiry Inquiry) (string, error)
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{repo: repo, location: location, notifier: notifier, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateRequest, lang string) (Inquiry, error) {
	service := strings.ToLower(strings.TrimSpace(req.Service))
	if !IsValidService(service) {
		return Inquiry{}, ErrInvalidService
	}
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if email == "" && phone == "" {
		return Inquiry{}, ErrMissingContact
	}

	channel := strings.ToLower(strings.TrimSpace(req.Channel))
	if channel == "" {
		channel = ChannelEmail
		if email == "" {
			channel = ChannelWhatsApp
		}
	}

	now := s.now().In(s.location)
	inquiry := Inquiry{
		ID:        primitive.NewObjectID().Hex(),
		Service:   service,
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Phone:     phone,
		Channel:   channel,
		Message:   strings.TrimSpace(req.Message),
		Lang:      lang,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return Inquiry{}, err
	}
	return inquiry, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.Service = strings.ToLower(strings.TrimSpace(filter.Service))

	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}
	if filter.Service != "" && !IsValidService(filter.Service) {
		return nil, 0, ErrInvalidService
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Inquiry, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return Inquiry{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, strings.TrimSpace(id), status, s.now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, ErrNotFound
		}
		return Inquiry{}, err
	}
	return updated, nil
}

// NotifyOwner emails the site owner; it is a no-op without a mailer.
func (s *Service) NotifyOwner(ctx context.Context, inquiry Inquiry) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendCommissionNotification(ctx, inquiry)
	return err
}
