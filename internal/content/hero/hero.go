package hero

import "time"

// Hero represents a slide of the landing-page hero carousel.
type Hero struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CTAText     *string   `json:"cta_text"`
	CTALink     *string   `json:"cta_link"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle    = "title"
	FieldImageURL = "image_url"
	FieldCTALink  = "cta_link"
)

// sectionName keys the public cache entry for this content type.
const sectionName = "hero"
