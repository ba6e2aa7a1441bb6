package schema

// ContentBlogPostTable represents the 'content.blogpost' table
type ContentBlogPostTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	ImageURL    string
	Author      string
	PublishDate string
	Tags        string
	CreatedAt   string
	UpdatedAt   string
}

// ContentBlogPost is the schema definition for content.blogpost
var ContentBlogPost = ContentBlogPostTable{
	Table:       "content.blogpost",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Excerpt:     "excerpt",
	Content:     "content",
	ImageURL:    "imageurl",
	Author:      "author",
	PublishDate: "publishdate",
	Tags:        "tags",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentBlogPostTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Excerpt, t.Content, t.ImageURL,
		t.Author, t.PublishDate, t.Tags, t.CreatedAt, t.UpdatedAt,
	}
}
