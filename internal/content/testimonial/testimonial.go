package testimonial

import "time"

// Testimonial represents a partner or customer quote on the landing page.
type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Company    *string   `json:"company"`
	Quote      string    `json:"quote"`
	AvatarURL  *string   `json:"avatar_url"`
	Rating     int       `json:"rating"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	FieldName      = "name"
	FieldQuote     = "quote"
	FieldAvatarURL = "avatar_url"
	FieldRating    = "rating"
)

const (
	MinRating = 1
	MaxRating = 5
)

const sectionName = "testimonial"
