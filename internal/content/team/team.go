package team

import "time"

// Member represents a person on the "our team" page.
type Member struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Bio        *string   `json:"bio"`
	ImageURL   *string   `json:"image_url"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	FieldName     = "name"
	FieldPosition = "position"
	FieldImageURL = "image_url"
)

const sectionName = "team"
