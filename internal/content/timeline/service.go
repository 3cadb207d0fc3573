package timeline

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

func (service *Service) ListActive(context context.Context) ([]*Entry, error) {
	var cached []*Entry
	if service.cache.GetSection(context, sectionName, &cached) {
		return cached, nil
	}

	entries, err := service.repo.ListActiveEntries(context)
	if err != nil {
		return nil, err
	}

	service.cache.SetSection(context, sectionName, entries)
	return entries, nil
}

func (service *Service) ListEntries(context context.Context, limit, offset int) ([]*Entry, int, error) {
	return service.repo.ListEntries(context, limit, offset)
}

func (service *Service) GetEntry(context context.Context, id int64) (*Entry, error) {
	return service.repo.GetEntry(context, id)
}

func (service *Service) CreateEntry(context context.Context, entry *Entry) error {
	if err := service.validate(entry); err != nil {
		return err
	}

	if err := service.repo.CreateEntry(context, entry); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("timeline_entry_created", slog.Int64("entry_id", entry.ID))
	return nil
}

func (service *Service) UpdateEntry(context context.Context, id int64, entry *Entry) error {
	entry.ID = id
	if err := service.validate(entry); err != nil {
		return err
	}

	if err := service.repo.UpdateEntry(context, entry); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("timeline_entry_updated", slog.Int64("entry_id", id))
	return nil
}

func (service *Service) DeleteEntry(context context.Context, id int64) error {
	if err := service.repo.DeleteEntry(context, id); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Warn("timeline_entry_deleted", slog.Int64("entry_id", id))
	return nil
}

func (service *Service) ToggleActive(context context.Context, id int64) (*Entry, error) {
	entry, err := service.repo.GetEntry(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetEntryActive(context, id, !entry.IsActive); err != nil {
		return nil, err
	}
	entry.IsActive = !entry.IsActive

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("timeline_entry_toggled",
		slog.Int64("entry_id", id),
		slog.Bool("is_active", entry.IsActive),
	)
	return entry, nil
}

func (service *Service) validate(entry *Entry) error {
	validator := &validate.Validator{}
	validator.Required(FieldYear, entry.Year).MaxLen(FieldYear, entry.Year, 20).
		Required(FieldTitle, entry.Title).MaxLen(FieldTitle, entry.Title, 200)

	return validator.Err()
}
