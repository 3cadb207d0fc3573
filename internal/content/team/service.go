package team

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

func (service *Service) ListActive(context context.Context) ([]*Member, error) {
	var cached []*Member
	if service.cache.GetSection(context, sectionName, &cached) {
		return cached, nil
	}

	members, err := service.repo.ListActiveMembers(context)
	if err != nil {
		return nil, err
	}

	service.cache.SetSection(context, sectionName, members)
	return members, nil
}

func (service *Service) ListMembers(context context.Context, limit, offset int) ([]*Member, int, error) {
	return service.repo.ListMembers(context, limit, offset)
}

func (service *Service) GetMember(context context.Context, id int64) (*Member, error) {
	return service.repo.GetMember(context, id)
}

func (service *Service) CreateMember(context context.Context, member *Member) error {
	if err := service.validate(member); err != nil {
		return err
	}

	if err := service.repo.CreateMember(context, member); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("team_member_created", slog.Int64("member_id", member.ID))
	return nil
}

func (service *Service) UpdateMember(context context.Context, id int64, member *Member) error {
	member.ID = id
	if err := service.validate(member); err != nil {
		return err
	}

	if err := service.repo.UpdateMember(context, member); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("team_member_updated", slog.Int64("member_id", id))
	return nil
}

func (service *Service) DeleteMember(context context.Context, id int64) error {
	if err := service.repo.DeleteMember(context, id); err != nil {
		return err
	}

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Warn("team_member_deleted", slog.Int64("member_id", id))
	return nil
}

func (service *Service) ToggleActive(context context.Context, id int64) (*Member, error) {
	member, err := service.repo.GetMember(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetMemberActive(context, id, !member.IsActive); err != nil {
		return nil, err
	}
	member.IsActive = !member.IsActive

	service.cache.InvalidateSection(context, sectionName)
	service.logger.Info("team_member_toggled",
		slog.Int64("member_id", id),
		slog.Bool("is_active", member.IsActive),
	)
	return member, nil
}

func (service *Service) validate(member *Member) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, member.Name).MaxLen(FieldName, member.Name, 100).
		Required(FieldPosition, member.Position).MaxLen(FieldPosition, member.Position, 100)

	if member.ImageURL != nil {
		validator.URL(FieldImageURL, *member.ImageURL)
	}

	return validator.Err()
}
