package feature

import "context"

type Repository interface {
	ListActiveFeatures(context context.Context) ([]*Feature, error)
	ListFeatures(context context.Context, limit, offset int) ([]*Feature, int, error)
	GetFeature(context context.Context, id int64) (*Feature, error)
	CreateFeature(context context.Context, f *Feature) error
	UpdateFeature(context context.Context, f *Feature) error
	DeleteFeature(context context.Context, id int64) error
	SetFeatureActive(context context.Context, id int64, active bool) error
}
