package event

import "context"

type Repository interface {
	ListActiveEvents(context context.Context) ([]*Event, error)
	ListEvents(context context.Context, limit, offset int) ([]*Event, int, error)
	GetEvent(context context.Context, id int64) (*Event, error)
	CreateEvent(context context.Context, e *Event) error
	UpdateEvent(context context.Context, e *Event) error
	DeleteEvent(context context.Context, id int64) error
	SetEventActive(context context.Context, id int64, active bool) error
}
