// internal/workers/content/product-architect/models.go
package productarchitect

import (
	"fmt"
	"strings"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/models"
)

// Options carries the per-format knobs. Zero values fall back to the
// handler config.
type Options struct {
	Title        string `json:"title,omitempty"`
	Pages        int    `json:"pages,omitempty"`
	TemplateType string `json:"template_type,omitempty"`
	SwipeType    string `json:"swipe_type,omitempty"`
}

// UnknownFormatError is returned by CreateContent for an unsupported format.
type UnknownFormatError struct {
	Format    string
	Available []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("Unknown format: %s. Available: %s", e.Format, strings.Join(e.Available, ", "))
}

func (e *UnknownFormatError) Is(target error) bool {
	t, ok := target.(*apperrors.StandardError)
	return ok && t.Code == apperrors.ErrCodeUnknownFormat
}

func (e *UnknownFormatError) As(target interface{}) bool {
	p, ok := target.(**apperrors.StandardError)
	if !ok {
		return false
	}
	*p = apperrors.NewUnknownFormatError(e.Format, e.Available)
	return true
}

// formatSpec binds a format to its token ceiling, the key holding its
// title and the prompt that produces it.
type formatSpec struct {
	maxTokens int
	titleKey  string
	prompt    func(research models.Record, opts Options) string
}

var formatTable = map[models.FormatType]formatSpec{
	models.FormatCarousel:   {maxTokens: 2500, titleKey: "carousel_title", prompt: carouselPrompt},
	models.FormatGuide:      {maxTokens: 4000, titleKey: "guide_title", prompt: guidePrompt},
	models.FormatChecklist:  {maxTokens: 2500, titleKey: "checklist_title", prompt: checklistPrompt},
	models.FormatTemplate:   {maxTokens: 3000, titleKey: "template_title", prompt: templatePrompt},
	models.FormatMinicourse: {maxTokens: 5000, titleKey: "course_title", prompt: minicoursePrompt},
	models.FormatWorksheet:  {maxTokens: 4000, titleKey: "worksheet_title", prompt: worksheetPrompt},
	models.FormatSwipefile:  {maxTokens: 4500, titleKey: "swipefile_title", prompt: swipefilePrompt},
	models.FormatCasestudy:  {maxTokens: 4000, titleKey: "case_study_title", prompt: casestudyPrompt},
	models.FormatToolkit:    {maxTokens: 5000, titleKey: "toolkit_title", prompt: toolkitPrompt},
	models.FormatCheatsheet: {maxTokens: 3000, titleKey: "cheatsheet_title", prompt: cheatsheetPrompt},
	models.FormatDataReport: {maxTokens: 4000, titleKey: "report_title", prompt: dataReportPrompt},
}

// MaxTokens returns the ceiling used for format, or 0 when unknown.
func MaxTokens(format models.FormatType) int {
	return formatTable[format].maxTokens
}

// TitleKey returns the record key holding format's title.
func TitleKey(format models.FormatType) string {
	return formatTable[format].titleKey
}
