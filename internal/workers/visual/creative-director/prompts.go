// internal/workers/visual/creative-director/prompts.go
package creativedirector

import "fmt"

func carouselCoverPrompt(theme, style string) string {
	return fmt.Sprintf(`Create a striking LinkedIn carousel cover image.

THEME: %s
STYLE: %s

Requirements:
- Eye-catching visual that stops scrolling
- Modern tech/business aesthetic
- Abstract representation of the theme
- Gradient purple/indigo background
- NO TEXT in the image
- Professional B2B feel
- 1080x1080 square format composition`, theme, style)
}

func ebookCoverPrompt(title, subtitle, style string) string {
	return fmt.Sprintf(`Create a professional ebook cover design.

TITLE THEME: %s
SUBTITLE: %s
STYLE: %s

Requirements:
- Premium ebook/report cover feel
- Modern tech aesthetic
- Abstract visual representing the topic
- Gradient from deep purple to teal
- Clean, minimalist composition
- Portrait orientation composition (like a book)
- NO TEXT in the image
- Professional B2B look`, title, subtitle, style)
}

func socialGraphicPrompt(concept, platform, style string) string {
	return fmt.Sprintf(`Create a social media graphic for %s.

CONCEPT: %s
STYLE: %s

Requirements:
- Scroll-stopping visual
- Modern tech B2B aesthetic
- Abstract/conceptual representation
- Purple/indigo gradient background
- NO TEXT - visual only
- Clean, bold, professional
- High contrast for mobile viewing`, platform, concept, style)
}

func infographicPrompt(topic, dataContext, style string) string {
	return fmt.Sprintf(`Create a hero image for a data/statistics infographic.

TOPIC: %s
DATA CONTEXT: %s
STYLE: %s

Requirements:
- Professional data visualization aesthetic
- Abstract representation of analytics/data
- Modern dashboard/metrics feel
- Gradient purple to teal colors
- Geometric shapes suggesting charts/graphs
- NO TEXT or actual numbers
- Clean tech look
- Premium report quality`, topic, dataContext, style)
}

func slidePrompt(title, visualNote, style string) string {
	return fmt.Sprintf(`Create a visual element for a carousel slide.

SLIDE CONCEPT: %s
VISUAL DIRECTION: %s
STYLE: %s

Requirements:
- Simple, iconic visual
- Works at small size
- Modern tech aesthetic
- Purple/indigo color scheme
- NO TEXT
- Clean and bold
- Conceptual/abstract representation`, title, visualNote, style)
}
