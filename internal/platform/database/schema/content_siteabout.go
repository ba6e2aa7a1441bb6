package schema

// ContentSiteAboutTable represents the 'content.siteabout' singleton table
type ContentSiteAboutTable struct {
	Table           string
	ID              string
	Title           string
	Description     string
	ArtistName      string
	ArtistPortrait  string
	Biography       string
	ArtisticJourney string
	ArtPhilosophy   string
	Education       string
	Skills          string
	ContactMessage  string
	CreatedAt       string
	UpdatedAt       string
}

// ContentSiteAbout is the schema definition for content.siteabout
var ContentSiteAbout = ContentSiteAboutTable{
	Table:           "content.siteabout",
	ID:              "id",
	Title:           "title",
	Description:     "description",
	ArtistName:      "artistname",
	ArtistPortrait:  "artistportrait",
	Biography:       "biography",
	ArtisticJourney: "artisticjourney",
	ArtPhilosophy:   "artphilosophy",
	Education:       "education",
	Skills:          "skills",
	ContactMessage:  "contactmessage",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t ContentSiteAboutTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.ArtistName, t.ArtistPortrait,
		t.Biography, t.ArtisticJourney, t.ArtPhilosophy, t.Education,
		t.Skills, t.ContactMessage, t.CreatedAt, t.UpdatedAt,
	}
}
