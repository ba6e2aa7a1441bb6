package about

import "time"

// ContactButtonText is fixed site policy and intentionally not editable.
const ContactButtonText = "İletişime Geç"

// EducationItem is a single ordered entry in the artist's education history.
type EducationItem struct {
	ID          string `json:"id"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Order       int    `json:"order"`
}

// SiteAbout is the singleton about-page document. It is created with
// defaults on first read and only ever updated afterwards.
type SiteAbout struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	ArtistName      string          `json:"artistName"`
	ArtistPortrait  string          `json:"artistPortrait"`
	Biography       string          `json:"biography"`
	ArtisticJourney string          `json:"artisticJourney"`
	ArtPhilosophy   string          `json:"artPhilosophy"`
	Education       []EducationItem `json:"education"`
	Skills          []string        `json:"skills"`
	ContactMessage  string          `json:"contactMessage"`
	ContactButton   string          `json:"contactButtonText"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// defaultAbout is the document seeded when the page is read before any
// editor has touched it. The site has always shipped with this placeholder
// text.
func defaultAbout() *SiteAbout {
	return &SiteAbout{
		Title:           "Hakkımda Sayfası",
		Description:     "Sanatsal yolculuğum, eserlerim ve felsefem hakkında.",
		ArtistName:      "Sanatçı Adı",
		ArtistPortrait:  "/images/artist-portrait.jpg",
		Biography:       "Sanatçı biyografisi buraya gelecek. Burada sanatçının kişisel hikayesi, sanatsal geçmişi ve eserlerini etkileyen faktörler yer alabilir.",
		ArtisticJourney: "Sanatsal yolculuğum çocukluktan itibaren başladı. İlk fırça darbesinden günümüze kadar olan süreçte yaşadığım deneyimler ve gelişim hikayem.",
		ArtPhilosophy:   "Sanat, benim için hayatın anlamını keşfetme ve paylaşma aracıdır. Her eserimde bir parça ruhumu ve dünya görüşümü aktarmaya çalışırım.",
		Education: []EducationItem{
			{
				ID:          "1",
				StartYear:   "2010",
				EndYear:     "2014",
				Degree:      "Güzel Sanatlar Fakültesi, Resim Bölümü",
				Institution: "İstanbul Üniversitesi",
				Order:       1,
			},
		},
		Skills:         []string{"Yağlı Boya Tekniği"},
		ContactMessage: "Sergiler, sanatsal projeler ve iş birlikleri için benimle iletişime geçebilirsiniz.",
	}
}

const (
	FieldTitle      = "title"
	FieldArtistName = "artistName"
)
