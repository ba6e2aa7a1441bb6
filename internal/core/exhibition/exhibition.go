package exhibition

import (
	"time"

	"github.com/atelierhq/atelier/pkg/daterange"
)

// Exhibition represents a gallery show with a date range. Status and
// FormattedDate are computed from the date range at read time, never stored.
type Exhibition struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   *string          `json:"description"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
	Location      string           `json:"location"`
	GalleryName   *string          `json:"galleryName"`
	GalleryURL    *string          `json:"galleryUrl"`
	ImageURL      *string          `json:"imageUrl"`
	Images        []string         `json:"images"`
	Status        daterange.Status `json:"status"`
	FormattedDate string           `json:"formattedDate"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// decorate fills the read-time display fields. FormattedDate is the range in
// the localized form the site has always shown.
func (e *Exhibition) decorate(now time.Time) {
	e.Status = daterange.Classify(now, e.StartDate, e.EndDate)
	e.FormattedDate = daterange.Format(e.StartDate) + " - " + daterange.Format(e.EndDate)
}

const (
	FieldTitle      = "title"
	FieldStartDate  = "startDate"
	FieldEndDate    = "endDate"
	FieldLocation   = "location"
	FieldGalleryURL = "galleryUrl"
)
