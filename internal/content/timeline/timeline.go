package timeline

import "time"

// Entry represents a milestone on the "our journey" timeline.
type Entry struct {
	ID          int64     `json:"id"`
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldYear  = "year"
	FieldTitle = "title"
)

const sectionName = "timeline"
