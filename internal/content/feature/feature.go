package feature

import "time"

// Feature represents an entry of the "what we offer" grid.
type Feature struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        *string   `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

const sectionName = "feature"
