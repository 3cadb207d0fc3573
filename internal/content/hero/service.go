package hero

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

// ListActive serves the public site: active slides only, cached.
func (service *Service) ListActive(context context.Context) ([]*Hero, error) {
	var cached []*Hero
	if service.cache.GetSection(context, sectionName, &cached) {
		return cached, nil
	}

	heroes, err := service.repo.ListActiveHeroes(context)
	if err != nil {
		return nil, err
	}

	service.cache.SetSection(context, sectionName, heroes)
	return heroes, nil
}

func (service *Service) ListHeroes(context context.Context, limit, offset int) ([]*Hero, int, error) {
	return service.repo.ListHeroes(context, limit, offset)
}

func (service *Service) GetHero(context context.Context, id int64) (*Hero, error) {
	return service.repo.GetHero(context, id)
}

func (service *Service) CreateHero(context context.Context, hero *Hero) error {
	if err := service.validate(hero); err != nil {
		return err
	}

	if err := service.repo.CreateHero(context, hero); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("hero_created", slog.Int64("hero_id", hero.ID))
	return nil
}

func (service *Service) UpdateHero(context context.Context, id int64, hero *Hero) error {
	hero.ID = id
	if err := service.validate(hero); err != nil {
		return err
	}

	if err := service.repo.UpdateHero(context, hero); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("hero_updated", slog.Int64("hero_id", id))
	return nil
}

func (service *Service) DeleteHero(context context.Context, id int64) error {
	if err := service.repo.DeleteHero(context, id); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Warn("hero_deleted", slog.Int64("hero_id", id))
	return nil
}

// ToggleActive flips the visibility flag and returns the updated slide.
func (service *Service) ToggleActive(context context.Context, id int64) (*Hero, error) {
	hero, err := service.repo.GetHero(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetHeroActive(context, id, !hero.IsActive); err != nil {
		return nil, err
	}
	hero.IsActive = !hero.IsActive

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("hero_toggled",
		slog.Int64("hero_id", id),
		slog.Bool("is_active", hero.IsActive),
	)
	return hero, nil
}

func (service *Service) validate(hero *Hero) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, hero.Title).MaxLen(FieldTitle, hero.Title, 200)

	if hero.ImageURL != nil {
		validator.URL(FieldImageURL, *hero.ImageURL)
	}
	if hero.CTALink != nil {
		validator.URL(FieldCTALink, *hero.CTALink)
	}

	return validator.Err()
}
