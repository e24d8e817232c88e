package models

import "fmt"

// Title is a catalog entry: a movie or series.
type Title struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MatchScore     int      `json:"matchScore"`
	Year           int      `json:"year"`
	AgeRating      string   `json:"ageRating"`
	Duration       string   `json:"duration"`
	Genre          []string `json:"genre"`
	BackdropParams string   `json:"backdropParams"`
	PosterParams   string   `json:"posterParams"`
	IsOriginal     bool     `json:"isOriginal,omitempty"`
}

// Clone returns a copy that shares no slices with t.
func (t Title) Clone() Title {
	if t.Genre != nil {
		t.Genre = append([]string(nil), t.Genre...)
	}
	return t
}

// CategoryRow is a named grouping of titles shown on the home feed.
type CategoryRow struct {
	Title  string  `json:"title"`
	Titles []Title `json:"titles"`
}

// TitleView is the response shape for a title, with resolved artwork URLs.
type TitleView struct {
	Title
	BackdropURL string `json:"backdropUrl"`
	PosterURL   string `json:"posterUrl"`
}

// RowView is the response shape for a category row.
type RowView struct {
	Title  string      `json:"title"`
	Titles []TitleView `json:"titles"`
}

// Feed is the response shape for the home page.
type Feed struct {
	Hero    TitleView `json:"hero"`
	Rows    []RowView `json:"rows"`
	Loading bool      `json:"loading"`
}

const (
	PlaceholderImageBase = "https://picsum.photos/seed"
	BackdropWidth        = 1280
	BackdropHeight       = 720
	PosterWidth          = 300
	PosterHeight         = 450

	OriginalsLabel = "SFLIX Originals"
	TrendingLabel  = "Trending Now"
)

// ImageURL resolves a placeholder image for seed at the given pixel size.
func ImageURL(seed string, width, height int) string {
	return fmt.Sprintf("%s/%s/%d/%d", PlaceholderImageBase, seed, width, height)
}

// NewTitleView attaches artwork URLs to t.
func NewTitleView(t Title) TitleView {
	return TitleView{
		Title:       t,
		BackdropURL: ImageURL(t.BackdropParams, BackdropWidth, BackdropHeight),
		PosterURL:   ImageURL(t.PosterParams, PosterWidth, PosterHeight),
	}
}

// NewTitleViews maps titles to views, never returning nil.
func NewTitleViews(titles []Title) []TitleView {
	views := make([]TitleView, 0, len(titles))
	for _, t := range titles {
		views = append(views, NewTitleView(t))
	}
	return views
}

// NewRowViews maps rows to views, never returning nil.
func NewRowViews(rows []CategoryRow) []RowView {
	views := make([]RowView, 0, len(rows))
	for _, r := range rows {
		views = append(views, RowView{Title: r.Title, Titles: NewTitleViews(r.Titles)})
	}
	return views
}

// FallbackHero is shown when the catalog is empty.
var FallbackHero = Title{
	ID:             "hero-1",
	Title:          "Cyberpunk: Neon Dawn",
	Description:    "In a future where memories are currency, a rogue data-thief uncovers a conspiracy that threatens to overwrite humanity's collective consciousness.",
	MatchScore:     98,
	Year:           2024,
	AgeRating:      "TV-MA",
	Duration:       "1 Seasons",
	Genre:          []string{"Sci-Fi", "Action", "Thriller"},
	BackdropParams: "cyberpunk",
	PosterParams:   "cyberpunk_poster",
	IsOriginal:     true,
}
