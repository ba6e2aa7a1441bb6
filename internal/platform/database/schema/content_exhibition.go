package schema

// ContentExhibitionTable represents the 'content.exhibition' table
type ContentExhibitionTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Location    string
	GalleryName string
	GalleryURL  string
	ImageURL    string
	Images      string
	CreatedAt   string
	UpdatedAt   string
}

// ContentExhibition is the schema definition for content.exhibition
var ContentExhibition = ContentExhibitionTable{
	Table:       "content.exhibition",
	ID:          "id",
	Title:       "title",
	Description: "description",
	StartDate:   "startdate",
	EndDate:     "enddate",
	Location:    "location",
	GalleryName: "galleryname",
	GalleryURL:  "galleryurl",
	ImageURL:    "imageurl",
	Images:      "images",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentExhibitionTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.StartDate, t.EndDate, t.Location,
		t.GalleryName, t.GalleryURL, t.ImageURL, t.Images, t.CreatedAt, t.UpdatedAt,
	}
}
