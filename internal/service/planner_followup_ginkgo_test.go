package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/store"
	"github.com/alexanderramin/gradplan/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Planner follow-up", func() {
	var (
		ctx     context.Context
		st      *store.MemoryPlanStore
		planner PlannerService
		rec     *recordingListener
	)

	newPlanner := func(delay time.Duration) {
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
		planner = NewPlannerService(ctx, st, PlannerOptions{FollowUpDelay: delay}, NewLogUseCaseObserver(logger))
		rec = &recordingListener{}
		planner.Subscribe(rec)
	}

	courses := func(sem int) []domain.Course {
		return planner.Plan(ctx).Courses(sem)
	}

	BeforeEach(func() {
		ctx = context.Background()
		st = store.NewMemoryPlanStore()
	})

	AfterEach(func() {
		Expect(planner.Close()).To(Succeed())
	})

	Context("when the timer is allowed to fire", func() {
		BeforeEach(func() {
			newPlanner(10 * time.Millisecond)
		})

		It("adds the span course to the following semester", func() {
			_, err := planner.AddCourse(ctx, 6, spanCourse())
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() []domain.Course { return courses(7) }, "2s", "10ms").Should(HaveLen(1))
			auto := courses(7)[0]
			Expect(auto.AutoAdded).To(BeTrue())
			Expect(auto.Note).To(Equal("Auto-added (BEXC100N spans 2 semesters)"))
			Expect(planner.Pending()).To(BeZero())
		})

		It("persists the follow-up like any other mutation", func() {
			_, err := planner.AddCourse(ctx, 7, spanCourse())
			Expect(err).NotTo(HaveOccurred())

			Eventually(st.Saves, "2s", "10ms").Should(Equal(2))
			Expect(st.Load(ctx).Courses(8)).To(HaveLen(1))
		})

		It("notifies listeners with the full plan", func() {
			_, err := planner.AddCourse(ctx, 6, spanCourse())
			Expect(err).NotTo(HaveOccurred())

			Eventually(rec.kinds, "2s", "10ms").Should(Equal([]domain.PlanEventKind{
				domain.EventCourseAdded, domain.EventAutoAdded,
			}))
			last := rec.last()
			Expect(last.Semester).To(Equal(7))
			Expect(last.Plan.Count()).To(Equal(2))
		})
	})

	Context("when the user acts before the timer", func() {
		BeforeEach(func() {
			newPlanner(time.Hour)
		})

		It("never applies the follow-up after its origin is removed", func() {
			_, err := planner.AddCourse(ctx, 6, spanCourse())
			Expect(err).NotTo(HaveOccurred())
			_, err = planner.RemoveCourse(ctx, 6, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(planner.Settle(ctx)).To(Succeed())
			Consistently(func() int { return planner.Plan(ctx).Count() }, "50ms", "10ms").Should(BeZero())
		})

		It("orders the follow-up before the next add", func() {
			_, err := planner.AddCourse(ctx, 7, spanCourse())
			Expect(err).NotTo(HaveOccurred())
			_, err = planner.AddCourse(ctx, 8, testutil.NewTestCourse(domain.CategoryPI, testutil.WithCode("PROJ")))
			Expect(err).NotTo(HaveOccurred())

			Expect(codes(courses(8))).To(Equal([]string{DefaultSpanCourse, "PROJ"}))
		})

		It("keeps independent follow-ups for separate span entries", func() {
			_, err := planner.AddCourse(ctx, 6, spanCourse())
			Expect(err).NotTo(HaveOccurred())
			_, err = planner.AddCourse(ctx, 7, spanCourse())
			Expect(err).NotTo(HaveOccurred())

			// The second add drained the first follow-up into semester 7.
			Expect(codes(courses(7))).To(Equal([]string{DefaultSpanCourse, DefaultSpanCourse}))
			Expect(planner.Pending()).To(Equal(1))

			Expect(planner.Settle(ctx)).To(Succeed())
			Expect(courses(8)).To(HaveLen(1))
		})
	})
})
