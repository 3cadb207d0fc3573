package hero

import "context"

type Repository interface {
	ListActiveHeroes(context context.Context) ([]*Hero, error)
	ListHeroes(context context.Context, limit, offset int) ([]*Hero, int, error)
	GetHero(context context.Context, id int64) (*Hero, error)
	CreateHero(context context.Context, h *Hero) error
	UpdateHero(context context.Context, h *Hero) error
	DeleteHero(context context.Context, id int64) error
	SetHeroActive(context context.Context, id int64, active bool) error
}
