package catalog

// Category is the fixed set of course categories. It is not extensible at
// runtime; unknown values fall back to CategoryFundamentos.
type Category string

const (
	CategoryFrontend    Category = "frontend"
	CategoryBackend     Category = "backend"
	CategoryDevOps      Category = "devops"
	CategoryData        Category = "data"
	CategoryMobile      Category = "mobile"
	CategoryFundamentos Category = "fundamentos"
)

// CategoryInfo pairs a category id with its display label.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// Categories lists every category in display order.
var Categories = []CategoryInfo{
	{ID: CategoryFrontend, Name: "Frontend"},
	{ID: CategoryBackend, Name: "Backend"},
	{ID: CategoryDevOps, Name: "DevOps"},
	{ID: CategoryData, Name: "Dados"},
	{ID: CategoryMobile, Name: "Mobile"},
	{ID: CategoryFundamentos, Name: "Fundamentos"},
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, ci := range Categories {
		if ci.ID == c {
			return true
		}
	}
	return false
}

type Instructor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Course is one curated YouTube playlist resolved against live metadata.
// ID is always the lowercased PlaylistID and is the key used in routes;
// PlaylistID keeps the original case for API calls and external links.
type Course struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Instructor   Instructor `json:"instructor"`
	PlaylistID   string     `json:"playlistId"`
	Thumbnail    string     `json:"thumbnail"`
	Category     Category   `json:"category"`
	TotalLessons int        `json:"totalLessons"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ThumbnailSet struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// Lesson is one video entry of a course playlist. Lessons are ordered by
// fetch order across pages; Position is whatever the API reported and is
// never used for sorting.
type Lesson struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Thumbnails  ThumbnailSet `json:"thumbnails"`
	Position    int          `json:"position"`
}

// PlaylistInfo is the live playlist metadata returned by the batched
// playlists endpoint.
type PlaylistInfo struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	Thumbnails   ThumbnailSet
	ItemCount    int
}
