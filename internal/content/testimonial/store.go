package testimonial

import "context"

type Repository interface {
	ListActiveTestimonials(context context.Context) ([]*Testimonial, error)
	ListTestimonials(context context.Context, limit, offset int) ([]*Testimonial, int, error)
	GetTestimonial(context context.Context, id int64) (*Testimonial, error)
	CreateTestimonial(context context.Context, t *Testimonial) error
	UpdateTestimonial(context context.Context, t *Testimonial) error
	DeleteTestimonial(context context.Context, id int64) error
	SetTestimonialActive(context context.Context, id int64, active bool) error
}
