package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// DefaultFollowUpDelay is how long a queued follow-up waits before its
// timer applies it.
const DefaultFollowUpDelay = 100 * time.Millisecond

// DefaultSpanCourse is the course code that occupies two consecutive
// semesters.
const DefaultSpanCourse = "BEXC100N"

// SpanNote is the note attached to the automatic second-semester copy.
func SpanNote(code string) string {
	return fmt.Sprintf("Auto-added (%s spans 2 semesters)", code)
}

// followUp is a queued second step of an add: copy course into target once
// the originating entry has been committed.
type followUp struct {
	originID       string
	originSemester int
	target         int
	course         domain.Course
	timer          *time.Timer
}

type followUpQueue struct {
	items []*followUp
}

func (q *followUpQueue) push(f *followUp) {
	q.items = append(q.items, f)
}

func (q *followUpQueue) len() int {
	return len(q.items)
}

// popAll removes and returns every queued follow-up in enqueue order with
// its timer stopped.
func (q *followUpQueue) popAll() []*followUp {
	items := q.items
	q.items = nil
	for _, f := range items {
		f.stop()
	}
	return items
}

// next removes and returns the first follow-up not originating from
// skipOrigin, with its timer stopped, and the position it held.
func (q *followUpQueue) next(skipOrigin string) (*followUp, int) {
	for i, f := range q.items {
		if skipOrigin != "" && f.originID == skipOrigin {
			continue
		}
		q.items = slices.Delete(q.items, i, i+1)
		f.stop()
		return f, i
	}
	return nil, -1
}

// insert puts f back at position i, clamped to the queue bounds.
func (q *followUpQueue) insert(i int, f *followUp) {
	i = min(max(i, 0), len(q.items))
	q.items = slices.Insert(q.items, i, f)
}

// take removes f if it is still queued.
func (q *followUpQueue) take(f *followUp) bool {
	i := slices.Index(q.items, f)
	if i < 0 {
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	f.stop()
	return true
}

// cancelOrigin drops every follow-up whose originating entry is entryID.
func (q *followUpQueue) cancelOrigin(entryID string) int {
	if entryID == "" {
		return 0
	}
	n := 0
	q.items = slices.DeleteFunc(q.items, func(f *followUp) bool {
		if f.originID != entryID {
			return false
		}
		f.stop()
		n++
		return true
	})
	return n
}

func (f *followUp) stop() {
	if f.timer != nil {
		f.timer.Stop()
	}
}

// autoCopy builds the synthetic entry appended by a follow-up.
func (f *followUp) autoCopy(id string) domain.Course {
	c := f.course
	c.ID = id
	c.AutoAdded = true
	c.Note = SpanNote(f.course.Code)
	return c
}
