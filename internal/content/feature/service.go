package feature

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

func (service *Service) ListActive(context context.Context) ([]*Feature, error) {
	var cached []*Feature
	if service.cache.GetSection(context, sectionName, &cached) {
		return cached, nil
	}

	features, err := service.repo.ListActiveFeatures(context)
	if err != nil {
		return nil, err
	}

	service.cache.SetSection(context, sectionName, features)
	return features, nil
}

func (service *Service) ListFeatures(context context.Context, limit, offset int) ([]*Feature, int, error) {
	return service.repo.ListFeatures(context, limit, offset)
}

func (service *Service) GetFeature(context context.Context, id int64) (*Feature, error) {
	return service.repo.GetFeature(context, id)
}

func (service *Service) CreateFeature(context context.Context, feature *Feature) error {
	if err := service.validate(feature); err != nil {
		return err
	}

	if err := service.repo.CreateFeature(context, feature); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("feature_created", slog.Int64("feature_id", feature.ID))
	return nil
}

func (service *Service) UpdateFeature(context context.Context, id int64, feature *Feature) error {
	feature.ID = id
	if err := service.validate(feature); err != nil {
		return err
	}

	if err := service.repo.UpdateFeature(context, feature); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("feature_updated", slog.Int64("feature_id", id))
	return nil
}

func (service *Service) DeleteFeature(context context.Context, id int64) error {
	if err := service.repo.DeleteFeature(context, id); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Warn("feature_deleted", slog.Int64("feature_id", id))
	return nil
}

func (service *Service) ToggleActive(context context.Context, id int64) (*Feature, error) {
	feature, err := service.repo.GetFeature(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetFeatureActive(context, id, !feature.IsActive); err != nil {
		return nil, err
	}
	feature.IsActive = !feature.IsActive

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("feature_toggled",
		slog.Int64("feature_id", id),
		slog.Bool("is_active", feature.IsActive),
	)
	return feature, nil
}

func (service *Service) validate(feature *Feature) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, feature.Title).MaxLen(FieldTitle, feature.Title, 200).
		Required(FieldDescription, feature.Description)

	return validator.Err()
}
