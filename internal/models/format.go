// internal/models/format.go
package models

// FormatType identifies a content template.
type FormatType string

const (
	FormatCarousel   FormatType = "carousel"
	FormatGuide      FormatType = "guide"
	FormatChecklist  FormatType = "checklist"
	FormatTemplate   FormatType = "template"
	FormatMinicourse FormatType = "minicourse"
	FormatWorksheet  FormatType = "worksheet"
	FormatSwipefile  FormatType = "swipefile"
	FormatCasestudy  FormatType = "casestudy"
	FormatToolkit    FormatType = "toolkit"
	FormatCheatsheet FormatType = "cheatsheet"
	FormatDataReport FormatType = "datareport"
)

// AllFormats lists every format in catalog order. The data report comes last.
var AllFormats = []FormatType{
	FormatCarousel,
	FormatGuide,
	FormatChecklist,
	FormatTemplate,
	FormatMinicourse,
	FormatWorksheet,
	FormatSwipefile,
	FormatCasestudy,
	FormatToolkit,
	FormatCheatsheet,
	FormatDataReport,
}

func (f FormatType) Valid() bool {
	for _, known := range AllFormats {
		if f == known {
			return true
		}
	}
	return false
}

func FormatNames() []string {
	out := make([]string, len(AllFormats))
	for i, f := range AllFormats {
		out[i] = string(f)
	}
	return out
}

// Route identifies an end-to-end production strategy.
type Route string

const (
	RouteTrendJacker   Route = "trend-jacker"
	RouteProblemSolver Route = "problem-solver"
	RouteDataAuthority Route = "data-authority"
)

var AllRoutes = []Route{RouteTrendJacker, RouteProblemSolver, RouteDataAuthority}

func (r Route) Valid() bool {
	for _, known := range AllRoutes {
		if r == known {
			return true
		}
	}
	return false
}
