package gallery

import "time"

// Painting is a single work in the portfolio gallery.
type Painting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    *string   `json:"imageUrl"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Year        *string   `json:"year"`
	Medium      *string   `json:"medium"`
	Dimensions  *string   `json:"dimensions"`
	Sold        bool      `json:"sold"`
	Price       *float64  `json:"price"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Listing is the gallery page payload: the paintings (newest first) plus
// the distinct categories observed, in order of first appearance. The site
// renders the category filter as "Tümü" plus these values.
type Listing struct {
	Paintings  []*Painting `json:"paintings"`
	Categories []string    `json:"categories"`
}

const (
	FieldTitle    = "title"
	FieldCategory = "category"
	FieldImageURL = "imageUrl"
)
