package schema

// ContentPaintingTable represents the 'content.painting' table
type ContentPaintingTable struct {
	Table       string
	ID          string
	Title       string
	ImageURL    string
	Description string
	Category    string
	Year        string
	Medium      string
	Dimensions  string
	Sold        string
	Price       string
	Tags        string
	CreatedAt   string
	UpdatedAt   string
}

// ContentPainting is the schema definition for content.painting
var ContentPainting = ContentPaintingTable{
	Table:       "content.painting",
	ID:          "id",
	Title:       "title",
	ImageURL:    "imageurl",
	Description: "description",
	Category:    "category",
	Year:        "year",
	Medium:      "medium",
	Dimensions:  "dimensions",
	Sold:        "sold",
	Price:       "price",
	Tags:        "tags",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentPaintingTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.ImageURL, t.Description, t.Category, t.Year,
		t.Medium, t.Dimensions, t.Sold, t.Price, t.Tags, t.CreatedAt, t.UpdatedAt,
	}
}
