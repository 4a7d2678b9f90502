// internal/models/production.go
package models

// VisualResult is the outcome of one image generation. Only the echoed
// fields relevant to the visual type are set.
type VisualResult struct {
	Success     bool   `json:"success"`
	ImageURL    string `json:"image_url,omitempty"`
	Error       string `json:"error,omitempty"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Concept     string `json:"concept,omitempty"`
	SlideTitle  string `json:"slide_title,omitempty"`
	SlideNumber *int   `json:"slide_number,omitempty"`
}

const (
	VisualCarouselCover   = "carousel_cover"
	VisualEbookCover      = "ebook_cover"
	VisualSocialGraphic   = "social_graphic"
	VisualInfographicHero = "infographic_hero"
	VisualSlide           = "slide_visual"
)

// ProductionResult is the composite artifact of one pipeline run. Title is
// the content title, or the route's input when the content has none.
type ProductionResult struct {
	Route    Route        `json:"route"`
	Title    string       `json:"title"`
	Research Record       `json:"research"`
	Content  Record       `json:"content"`
	Visual   VisualResult `json:"visual"`
	Post     Record       `json:"post"`
}

// Carousel is the typed view of a carousel content record.
type Carousel struct {
	CarouselTitle  string  `json:"carousel_title"`
	Hook           string  `json:"hook"`
	TargetAudience string  `json:"target_audience"`
	Slides         []Slide `json:"slides"`
	CommentTrigger string  `json:"comment_trigger"`
}

type Slide struct {
	SlideNumber int    `json:"slide_number"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	VisualNote  string `json:"visual_note"`
}

// KeyStat is one entry of a data report's key_stats.
type KeyStat struct {
	Stat     string `json:"stat"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Category string `json:"category"`
}
