// internal/workers/distribution/growth-copywriter/models.go
package growthcopywriter

// Token ceilings per copy operation.
const (
	linkedInPostMaxTokens  = 1500
	carouselIntroMaxTokens = 800
	dmResponseMaxTokens    = 600
	emailSequenceMaxTokens = 2500
	landingPageMaxTokens   = 1500
)

// Prompt embedding limits, in characters.
const (
	contentLimit  = 2000
	researchLimit = 1500
	emailLimit    = 1500
)

// Kinds of copy exposed besides the LinkedIn post.
const (
	KindCarouselIntro = "carousel-intro"
	KindDM            = "dm"
	KindEmailSequence = "email-sequence"
	KindLanding       = "landing"
)

var Kinds = []string{KindCarouselIntro, KindDM, KindEmailSequence, KindLanding}
