package schema

// ContentContactMessageTable represents the 'content.contactmessage' table
type ContentContactMessageTable struct {
	Table      string
	ID         string
	Name       string
	Email      string
	Subject    string
	Message    string
	IsRead     string
	IsArchived string
	CreatedAt  string
	UpdatedAt  string
}

// ContentContactMessage is the schema definition for content.contactmessage
var ContentContactMessage = ContentContactMessageTable{
	Table:      "content.contactmessage",
	ID:         "id",
	Name:       "name",
	Email:      "email",
	Subject:    "subject",
	Message:    "message",
	IsRead:     "isread",
	IsArchived: "isarchived",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t ContentContactMessageTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Subject, t.Message,
		t.IsRead, t.IsArchived, t.CreatedAt, t.UpdatedAt,
	}
}
