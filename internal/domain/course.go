package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Course is a catalog entry, and, once planned, an entry in a semester.
// JSON names match the blob format written by earlier planner versions.
type Course struct {
	ID                string   `json:"id,omitempty"`
	Code              string   `json:"code"`
	Title             string   `json:"title"`
	Category          Category `json:"category"`
	Credits           float64  `json:"credits"`
	Type              string   `json:"type"`
	IsNPTEL           bool     `json:"isNPTEL"`
	CountsTowardLimit bool     `json:"countsTowardLimit"`
	AutoAdded         bool     `json:"autoAdded,omitempty"`
	Note              string   `json:"note,omitempty"`
}

// UnmarshalJSON decodes a course, treating a missing countsTowardLimit as
// true the same way catalog imports do.
func (c *Course) UnmarshalJSON(data []byte) error {
	type plain Course
	aux := struct {
		*plain
		CountsTowardLimit *bool `json:"countsTowardLimit"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.CountsTowardLimit = BoolFromPtrWithDefault(true, aux.CountsTowardLimit)
	return nil
}

// Validate checks the fields every catalog or planned course must carry.
func (c *Course) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("course code is required")
	}
	if !ValidCategories[string(c.Category)] {
		return fmt.Errorf("course %s: unknown category %q", c.Code, c.Category)
	}
	if c.Credits < 0 || math.IsNaN(c.Credits) || math.IsInf(c.Credits, 0) {
		return fmt.Errorf("course %s: credits must be a non-negative number", c.Code)
	}
	return nil
}

// LimitExempt reports whether the course is excluded from the per-semester
// credit ceiling.
func (c *Course) LimitExempt() bool {
	return c.IsNPTEL || !c.CountsTowardLimit
}

// IsProject reports whether the course is project work.
func (c *Course) IsProject() bool {
	return c.Type == ProjectCourseType || c.Category == CategoryPI
}

// DisplayID returns the course code, falling back to a truncated entry ID.
func (c *Course) DisplayID() string {
	if c.Code != "" {
		return c.Code
	}
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
