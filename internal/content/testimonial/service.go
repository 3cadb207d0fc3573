package testimonial

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

func (service *Service) ListActive(context context.Context) ([]*Testimonial, error) {
	var cached []*Testimonial
	if service.cache.GetSection(context, sectionName, &cached) {
		return cached, nil
	}

	testimonials, err := service.repo.ListActiveTestimonials(context)
	if err != nil {
		return nil, err
	}

	service.cache.SetSection(context, sectionName, testimonials)
	return testimonials, nil
}

func (service *Service) ListTestimonials(context context.Context, limit, offset int) ([]*Testimonial, int, error) {
	return service.repo.ListTestimonials(context, limit, offset)
}

func (service *Service) GetTestimonial(context context.Context, id int64) (*Testimonial, error) {
	return service.repo.GetTestimonial(context, id)
}

func (service *Service) CreateTestimonial(context context.Context, testimonial *Testimonial) error {
	if err := service.validate(testimonial); err != nil {
		return err
	}

	if err := service.repo.CreateTestimonial(context, testimonial); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("testimonial_created", slog.Int64("testimonial_id", testimonial.ID))
	return nil
}

func (service *Service) UpdateTestimonial(context context.Context, id int64, testimonial *Testimonial) error {
	testimonial.ID = id
	if err := service.validate(testimonial); err != nil {
		return err
	}

	if err := service.repo.UpdateTestimonial(context, testimonial); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("testimonial_updated", slog.Int64("testimonial_id", id))
	return nil
}

func (service *Service) DeleteTestimonial(context context.Context, id int64) error {
	if err := service.repo.DeleteTestimonial(context, id); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Warn("testimonial_deleted", slog.Int64("testimonial_id", id))
	return nil
}

func (service *Service) ToggleActive(context context.Context, id int64) (*Testimonial, error) {
	testimonial, err := service.repo.GetTestimonial(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetTestimonialActive(context, id, !testimonial.IsActive); err != nil {
		return nil, err
	}
	testimonial.IsActive = !testimonial.IsActive

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("testimonial_toggled",
		slog.Int64("testimonial_id", id),
		slog.Bool("is_active", testimonial.IsActive),
	)
	return testimonial, nil
}

func (service *Service) validate(testimonial *Testimonial) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, testimonial.Name).MaxLen(FieldName, testimonial.Name, 100).
		Required(FieldQuote, testimonial.Quote).
		Range(FieldRating, testimonial.Rating, MinRating, MaxRating)

	if testimonial.AvatarURL != nil {
		validator.URL(FieldAvatarURL, *testimonial.AvatarURL)
	}

	return validator.Err()
}
