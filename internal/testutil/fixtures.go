package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/google/uuid"
)

var testCodeCounter atomic.Int64

// Course options
type CourseOption func(*domain.Course)

func WithCode(code string) CourseOption {
	return func(c *domain.Course) {
		c.Code = code
	}
}

func WithTitle(title string) CourseOption {
	return func(c *domain.Course) {
		c.Title = title
	}
}

func WithCredits(credits float64) CourseOption {
	return func(c *domain.Course) {
		c.Credits = credits
	}
}

func WithType(t string) CourseOption {
	return func(c *domain.Course) {
		c.Type = t
	}
}

func AsNPTEL() CourseOption {
	return func(c *domain.Course) {
		c.IsNPTEL = true
	}
}

func NotCountingTowardLimit() CourseOption {
	return func(c *domain.Course) {
		c.CountsTowardLimit = false
	}
}

// NewTestCourse returns a 3-credit theory course that counts toward the
// semester limit, with a unique generated code.
func NewTestCourse(category domain.Category, opts ...CourseOption) domain.Course {
	n := testCodeCounter.Add(1)
	c := domain.Course{
		Code:              fmt.Sprintf("T%s%03d", category, n),
		Title:             fmt.Sprintf("Test %s course %d", category, n),
		Category:          category,
		Credits:           3,
		Type:              "Theory",
		CountsTowardLimit: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestCatalog builds a catalog holding the given courses under their
// own categories.
func NewTestCatalog(courses ...domain.Course) domain.Catalog {
	cat := domain.Catalog{}
	for _, c := range courses {
		cat[c.Category] = append(cat[c.Category], c)
	}
	return cat
}

// NewTestEvent returns a course_added event for semester 6.
func NewTestEvent(code string, createdAt time.Time) *domain.PlanEvent {
	return &domain.PlanEvent{
		ID:         uuid.New().String(),
		Kind:       domain.EventCourseAdded,
		Semester:   6,
		CourseCode: code,
		Credits:    3,
		CreatedAt:  createdAt,
	}
}
