package domain

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownSemester = errors.New("unknown semester")
	ErrIndexOutOfRange = errors.New("course index out of range")
)

// PlanSemesters is the fixed, ordered set of semesters a plan covers.
var PlanSemesters = []int{6, 7, 8}

// LastSemester returns the final semester of the plan.
func LastSemester() int {
	return PlanSemesters[len(PlanSemesters)-1]
}

// IsPlanSemester reports whether n is one of PlanSemesters.
func IsPlanSemester(n int) bool {
	return slices.Contains(PlanSemesters, n)
}

// NextSemester returns the semester after n, or false when n is the last.
func NextSemester(n int) (int, bool) {
	i := slices.Index(PlanSemesters, n)
	if i < 0 || i == len(PlanSemesters)-1 {
		return 0, false
	}
	return PlanSemesters[i+1], true
}

// Plan maps semester number to its ordered course list.
type Plan struct {
	Semesters map[int][]Course `json:"semesters"`
}

// NewPlan returns a plan with an empty list for every semester.
func NewPlan() Plan {
	p := Plan{Semesters: make(map[int][]Course, len(PlanSemesters))}
	for _, s := range PlanSemesters {
		p.Semesters[s] = []Course{}
	}
	return p
}

// Normalize fills in missing semesters and drops semesters outside the
// fixed set. Used after decoding a stored blob.
func (p *Plan) Normalize() {
	if p.Semesters == nil {
		p.Semesters = make(map[int][]Course, len(PlanSemesters))
	}
	for s := range p.Semesters {
		if !IsPlanSemester(s) {
			delete(p.Semesters, s)
		}
	}
	for _, s := range PlanSemesters {
		if p.Semesters[s] == nil {
			p.Semesters[s] = []Course{}
		}
	}
}

// Clone returns a deep copy.
func (p Plan) Clone() Plan {
	out := Plan{Semesters: make(map[int][]Course, len(p.Semesters))}
	for s, courses := range p.Semesters {
		out.Semesters[s] = append([]Course{}, courses...)
	}
	return out
}

// Courses returns the courses planned for semester.
func (p Plan) Courses(semester int) []Course {
	return p.Semesters[semester]
}

// All returns every planned course in semester order.
func (p Plan) All() []Course {
	var all []Course
	for _, s := range PlanSemesters {
		all = append(all, p.Semesters[s]...)
	}
	return all
}

// Count returns the number of planned entries across every semester.
func (p Plan) Count() int {
	n := 0
	for _, courses := range p.Semesters {
		n += len(courses)
	}
	return n
}

// Append adds c to the end of semester.
func (p *Plan) Append(semester int, c Course) error {
	if !IsPlanSemester(semester) {
		return fmt.Errorf("semester %d: %w", semester, ErrUnknownSemester)
	}
	if p.Semesters == nil {
		p.Normalize()
	}
	p.Semesters[semester] = append(p.Semesters[semester], c)
	return nil
}

// RemoveAt removes the entry at index within semester and returns it.
func (p *Plan) RemoveAt(semester, index int) (Course, error) {
	if !IsPlanSemester(semester) {
		return Course{}, fmt.Errorf("semester %d: %w", semester, ErrUnknownSemester)
	}
	courses := p.Semesters[semester]
	if index < 0 || index >= len(courses) {
		return Course{}, fmt.Errorf("semester %d index %d (have %d): %w", semester, index, len(courses), ErrIndexOutOfRange)
	}
	removed := courses[index]
	p.Semesters[semester] = slices.Delete(slices.Clone(courses), index, index+1)
	return removed, nil
}

// IndexOfEntry returns the position of the entry with the given ID in
// semester, or -1.
func (p Plan) IndexOfEntry(semester int, id string) int {
	if id == "" {
		return -1
	}
	for i, c := range p.Semesters[semester] {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// PlannedCodes returns the set of course codes planned for semester.
func (p Plan) PlannedCodes(semester int) map[string]bool {
	codes := make(map[string]bool, len(p.Semesters[semester]))
	for _, c := range p.Semesters[semester] {
		codes[c.Code] = true
	}
	return codes
}
