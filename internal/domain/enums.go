package domain

type Category string

const (
	CategoryFC   Category = "FC"
	CategoryDLES Category = "DLES"
	CategoryDC   Category = "DC"
	CategoryDE   Category = "DE"
	CategoryOE   Category = "OE"
	CategoryPI   Category = "PI"
	CategoryNGCR Category = "NGCR"

	// CategoryAll is the catalog filter value that matches every category.
	CategoryAll Category = "ALL"
)

// Categories is the canonical category order used for display, aggregation
// and catalog flattening.
var Categories = []Category{
	CategoryFC, CategoryDLES, CategoryDC, CategoryDE, CategoryOE, CategoryPI, CategoryNGCR,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"FC": true, "DLES": true, "DC": true, "DE": true,
	"OE": true, "PI": true, "NGCR": true,
}

// ParseCategory normalises s into a Category. "ALL" and the empty string
// both map to CategoryAll.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "", string(CategoryAll), "all":
		return CategoryAll, true
	}
	if ValidCategories[s] {
		return Category(s), true
	}
	return "", false
}

type PlanEventKind string

const (
	EventCourseAdded   PlanEventKind = "course_added"
	EventCourseRemoved PlanEventKind = "course_removed"
	EventAutoAdded     PlanEventKind = "auto_added"
)

// ProjectCourseType is the course type string that marks project work.
const ProjectCourseType = "Project"
