package blog

import "time"

// Post is a blog entry. Content is Markdown and may embed image references
// uploaded through the blog image endpoint.
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	Author      string    `json:"author"`
	PublishDate time.Time `json:"publishDate"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle   = "title"
	FieldContent = "content"

	// DefaultAuthor is attributed when a post is saved without one.
	DefaultAuthor = "Admin"

	// excerptLength is the number of leading content characters used when no
	// excerpt is supplied.
	excerptLength = 150
)
