package event

import (
	"context"
	"log/slog"

	"github.com/innohub/api/internal/platform/cache"
	"github.com/innohub/api/internal/platform/validate"
)

type Service struct {
	repo   Repository
	cache  *cache.Store
	logger *slog.Logger
}

func NewService(repo Repository, cacheStore *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cacheStore,
		logger: logger,
	}
}

func (service *Service) ListActive(context context.Context) ([]*Event, error) {
	var cached []*Event
	if service.cache.GetSection(context, sectionName, &cached) {
		return cached, nil
	}

	events, err := service.repo.ListActiveEvents(context)
	if err != nil {
		return nil, err
	}

	service.cache.SetSection(context, sectionName, events)
	return events, nil
}

func (service *Service) ListEvents(context context.Context, limit, offset int) ([]*Event, int, error) {
	return service.repo.ListEvents(context, limit, offset)
}

func (service *Service) GetEvent(context context.Context, id int64) (*Event, error) {
	return service.repo.GetEvent(context, id)
}

func (service *Service) CreateEvent(context context.Context, event *Event) error {
	if err := service.validate(event); err != nil {
		return err
	}

	if err := service.repo.CreateEvent(context, event); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("event_created", slog.Int64("event_id", event.ID))
	return nil
}

func (service *Service) UpdateEvent(context context.Context, id int64, event *Event) error {
	event.ID = id
	if err := service.validate(event); err != nil {
		return err
	}

	if err := service.repo.UpdateEvent(context, event); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("event_updated", slog.Int64("event_id", id))
	return nil
}

func (service *Service) DeleteEvent(context context.Context, id int64) error {
	if err := service.repo.DeleteEvent(context, id); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Warn("event_deleted", slog.Int64("event_id", id))
	return nil
}

func (service *Service) ToggleActive(context context.Context, id int64) (*Event, error) {
	event, err := service.repo.GetEvent(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetEventActive(context, id, !event.IsActive); err != nil {
		return nil, err
	}
	event.IsActive = !event.IsActive

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("event_toggled",
		slog.Int64("event_id", id),
		slog.Bool("is_active", event.IsActive),
	)
	return event, nil
}

func (service *Service) validate(event *Event) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, event.Title).MaxLen(FieldTitle, event.Title, 200).
		Custom(FieldEventDate, event.EventDate.IsZero(), "This field is required")

	if event.ImageURL != nil {
		validator.URL(FieldImageURL, *event.ImageURL)
	}

	return validator.Err()
}
