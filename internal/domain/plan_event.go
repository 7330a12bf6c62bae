package domain

import "time"

// PlanEvent records one plan mutation.
type PlanEvent struct {
	ID         string
	Kind       PlanEventKind
	Semester   int
	CourseCode string
	Credits    float64
	EntryID    string
	CreatedAt  time.Time
}
