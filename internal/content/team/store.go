package team

import "context"

type Repository interface {
	ListActiveMembers(context context.Context) ([]*Member, error)
	ListMembers(context context.Context, limit, offset int) ([]*Member, int, error)
	GetMember(context context.Context, id int64) (*Member, error)
	CreateMember(context context.Context, m *Member) error
	UpdateMember(context context.Context, m *Member) error
	DeleteMember(context context.Context, id int64) error
	SetMemberActive(context context.Context, id int64, active bool) error
}
