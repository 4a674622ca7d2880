package virtual

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type idleSubsystem struct{}

func (idleSubsystem) Periodic() {}

type namedIdleSubsystem struct {
	*SubsystemBase
}

func (namedIdleSubsystem) Periodic() {}

var _ = ginkgo.Describe("Registry", func() {
	var (
		mockCtrl *gomock.Controller
		clock    *fakeClock
		reporter *MockReporter
		registry *Registry
	)

	ginkgo.BeforeEach(func() {
		mockCtrl = gomock.NewController(ginkgo.GinkgoT())
		clock = &fakeClock{
			now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		}
		reporter = NewMockReporter(mockCtrl)
		registry = NewRegistry().
			WithClock(clock).
			WithReporter(reporter)

		// Open both throttle windows at the current time so individual
		// tests control emission by advancing the clock.
		registry.lastTimingTime = clock.now
		registry.lastOverrunTime = clock.now
	})

	ginkgo.AfterEach(func() {
		mockCtrl.Finish()
	})

	newMockSubsystem := func(name string) *MockSubsystem {
		s := NewMockSubsystem(mockCtrl)
		registry.RegisterNamed(name, s)
		return s
	}

	ginkgo.It("should run each subsystem exactly once per cycle, in order", func() {
		a := newMockSubsystem("A")
		b := newMockSubsystem("B")
		c := newMockSubsystem("C")

		gomock.InOrder(
			a.EXPECT().Periodic(),
			b.EXPECT().Periodic(),
			c.EXPECT().Periodic(),
		)

		registry.PeriodicAll()

		Expect(registry.Cycle()).To(Equal(uint64(1)))
		Expect(registry.Subsystems()).To(Equal([]string{"A", "B", "C"}))
	})

	ginkgo.It("should derive a name from the subsystem type", func() {
		registry.Register(&idleSubsystem{})

		Expect(registry.Subsystems()).To(Equal([]string{"idleSubsystem"}))
		Expect(registry.SubsystemByName("idleSubsystem")).ToNot(BeNil())
	})

	ginkgo.It("should prefer a subsystem's own name", func() {
		registry.Register(namedIdleSubsystem{NewSubsystemBase("Vision")})

		Expect(registry.Subsystems()).To(Equal([]string{"Vision"}))
	})

	ginkgo.It("should panic when a name is registered twice", func() {
		registry.RegisterNamed("A", &idleSubsystem{})

		Expect(func() {
			registry.RegisterNamed("A", &idleSubsystem{})
		}).To(Panic())
	})

	ginkgo.It("should measure the duration of each update", func() {
		a := newMockSubsystem("A")
		a.EXPECT().Periodic().Do(func() {
			clock.advance(3 * time.Millisecond)
		})

		registry.PeriodicAll()

		Expect(registry.LastDuration("A")).To(Equal(3 * time.Millisecond))
	})

	ginkgo.It("should not flag an update at exactly the budget", func() {
		a := newMockSubsystem("A")
		a.EXPECT().Periodic().Do(func() {
			clock.advance(OverrunThreshold)
		})

		// No ReportError expectation: 20 ms is within budget.
		registry.PeriodicAll()
	})

	ginkgo.It("should report an overrun past the budget", func() {
		clock.advance(6 * time.Second)

		a := newMockSubsystem("A")
		a.EXPECT().Periodic().Do(func() {
			clock.advance(25 * time.Millisecond)
		})

		reporter.EXPECT().ReportError(gomock.Any()).Do(func(msg string) {
			Expect(msg).To(ContainSubstring("A: 25.000 ms"))
		})

		registry.PeriodicAll()
	})

	ginkgo.It("should suppress overrun reports inside the 5 second window", func() {
		a := newMockSubsystem("A")
		a.EXPECT().Periodic().Do(func() {
			clock.advance(25 * time.Millisecond)
		}).Times(2)

		// First cycle overruns right after the window opened: suppressed.
		registry.PeriodicAll()

		// Five seconds later the overrun is reported again.
		clock.advance(5 * time.Second)
		reporter.EXPECT().ReportError(gomock.Any())
		registry.PeriodicAll()
	})

	ginkgo.It("should emit the full timing report at most once per 10 seconds", func() {
		a := newMockSubsystem("A")
		b := newMockSubsystem("B")
		a.EXPECT().Periodic().AnyTimes()
		b.EXPECT().Periodic().AnyTimes()

		// Inside the window: silent.
		registry.PeriodicAll()

		clock.advance(10 * time.Second)
		reporter.EXPECT().ReportWarning(gomock.Any()).Do(func(msg string) {
			Expect(msg).To(ContainSubstring("A:"))
			Expect(msg).To(ContainSubstring("B:"))
		})
		registry.PeriodicAll()

		// The window reopened on emission, so the next cycle is silent.
		registry.PeriodicAll()
	})

	ginkgo.It("should invoke hooks around every update", func() {
		a := newMockSubsystem("A")
		a.EXPECT().Periodic().Do(func() {
			clock.advance(25 * time.Millisecond)
		})

		var contexts []HookCtx
		hook := NewMockHook(mockCtrl)
		hook.EXPECT().Func(gomock.Any()).Do(func(ctx HookCtx) {
			contexts = append(contexts, ctx)
		}).Times(2)
		registry.AcceptHook(hook)

		reporter.EXPECT().ReportError(gomock.Any()).AnyTimes()
		clock.advance(6 * time.Second)
		registry.PeriodicAll()

		Expect(contexts).To(HaveLen(2))
		Expect(contexts[0].Pos).To(Equal(HookPosBeforeUpdate))
		Expect(contexts[0].Item.Subsystem).To(Equal("A"))
		Expect(contexts[0].Item.Cycle).To(Equal(uint64(1)))
		Expect(contexts[1].Pos).To(Equal(HookPosAfterUpdate))
		Expect(contexts[1].Item.Duration).To(Equal(25 * time.Millisecond))
		Expect(contexts[1].Item.Overrun).To(BeTrue())
	})
})
