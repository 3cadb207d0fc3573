package event

import "time"

// Event represents a scheduled innovation-hub event or workshop.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    *string   `json:"location"`
	ImageURL    *string   `json:"image_url"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle     = "title"
	FieldEventDate = "event_date"
	FieldImageURL  = "image_url"
)

const sectionName = "event"
