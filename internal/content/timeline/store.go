package timeline

import "context"

type Repository interface {
	ListActiveEntries(context context.Context) ([]*Entry, error)
	ListEntries(context context.Context, limit, offset int) ([]*Entry, int, error)
	GetEntry(context context.Context, id int64) (*Entry, error)
	CreateEntry(context context.Context, e *Entry) error
	UpdateEntry(context context.Context, e *Entry) error
	DeleteEntry(context context.Context, id int64) error
	SetEntryActive(context context.Context, id int64, active bool) error
}
