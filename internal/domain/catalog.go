package domain

import "strings"

// Catalog maps a category to the courses offered in it. A nil Catalog
// means the catalog has not been loaded yet.
type Catalog map[Category][]Course

// Flatten returns every course in canonical category order.
func (c Catalog) Flatten() []Course {
	var out []Course
	for _, cat := range Categories {
		out = append(out, c[cat]...)
	}
	return out
}

// Lookup finds a course by code, case-insensitively.
func (c Catalog) Lookup(code string) (Course, bool) {
	for _, cat := range Categories {
		for _, course := range c[cat] {
			if strings.EqualFold(course.Code, code) {
				return course, true
			}
		}
	}
	return Course{}, false
}

// Size returns the number of courses across all categories.
func (c Catalog) Size() int {
	n := 0
	for _, courses := range c {
		n += len(courses)
	}
	return n
}
