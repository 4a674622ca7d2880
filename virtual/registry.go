package virtual

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// OverrunThreshold is the real-time budget for a single subsystem update.
// An update that measures longer than this counts as an overrun for the
// cycle.
const OverrunThreshold = 20 * time.Millisecond

const (
	timingReportPeriod  = 10 * time.Second
	overrunReportPeriod = 5 * time.Second
)

type subsystemRecord struct {
	name         string
	subsystem    Subsystem
	lastDuration time.Duration
}

// A Registry owns an ordered set of subsystems and drives their periodic
// updates. Registration order is execution order and is stable for the life
// of the process; there is no way to remove a subsystem.
//
// The Registry is not safe for concurrent use. Registration is expected to
// happen during single-threaded startup, and PeriodicAll runs on the host's
// main loop.
type Registry struct {
	HookableBase

	clock    Clock
	reporter Reporter

	subsystems []*subsystemRecord
	nameIndex  map[string]int

	cycle           uint64
	lastTimingTime  time.Time
	lastOverrunTime time.Time
}

// NewRegistry creates a Registry using the system clock and a reporter that
// writes to the standard logger.
func NewRegistry() *Registry {
	return &Registry{
		clock:     systemClock{},
		reporter:  NewLogReporter(log.New(os.Stderr, "", log.LstdFlags)),
		nameIndex: make(map[string]int),
	}
}

// WithClock replaces the clock. It is mainly useful in tests.
func (r *Registry) WithClock(clock Clock) *Registry {
	r.clock = clock
	return r
}

// WithReporter replaces the diagnostic sink.
func (r *Registry) WithReporter(reporter Reporter) *Registry {
	r.reporter = reporter
	return r
}

// Register appends a subsystem to the execution order under a name derived
// from the subsystem itself. Registering two subsystems under the same name
// is a programmer error.
func (r *Registry) Register(s Subsystem) {
	r.RegisterNamed(subsystemName(s), s)
}

// RegisterNamed appends a subsystem to the execution order under an explicit
// display name.
func (r *Registry) RegisterNamed(name string, s Subsystem) {
	if _, exists := r.nameIndex[name]; exists {
		panic("subsystem " + name + " already registered")
	}

	r.subsystems = append(r.subsystems, &subsystemRecord{
		name:      name,
		subsystem: s,
	})
	r.nameIndex[name] = len(r.subsystems) - 1
}

// Subsystems returns the registered subsystem names in execution order.
func (r *Registry) Subsystems() []string {
	names := make([]string, len(r.subsystems))
	for i, record := range r.subsystems {
		names[i] = record.name
	}

	return names
}

// SubsystemByName returns the subsystem registered under the given name, or
// nil when no subsystem has that name.
func (r *Registry) SubsystemByName(name string) Subsystem {
	index, ok := r.nameIndex[name]
	if !ok {
		return nil
	}

	return r.subsystems[index].subsystem
}

// LastDuration returns the measured duration of the named subsystem's most
// recent update.
func (r *Registry) LastDuration(name string) time.Duration {
	index, ok := r.nameIndex[name]
	if !ok {
		return 0
	}

	return r.subsystems[index].lastDuration
}

// Cycle returns the number of completed drive cycles.
func (r *Registry) Cycle() uint64 {
	return r.cycle
}

// PeriodicAll runs every registered subsystem once, in registration order,
// measuring each update against the overrun budget. The host must call it
// once per control period.
//
// Two independent throttles gate the diagnostic output: the full timing
// report goes out at most once per 10 s, the overrun report at most once per
// 5 s and only when an overrun occurred this cycle. Each throttle resets
// only when its report is actually emitted.
func (r *Registry) PeriodicAll() {
	now := r.clock.Now()
	shouldReportTiming := now.Sub(r.lastTimingTime) >= timingReportPeriod
	shouldReportOverrun := now.Sub(r.lastOverrunTime) >= overrunReportPeriod

	r.cycle++

	var timingReport strings.Builder
	timingReport.WriteString("virtual subsystem loop times:\n")

	var overrunReport strings.Builder
	fmt.Fprintf(&overrunReport,
		"the following subsystems exceeded %v:\n", OverrunThreshold)

	overrunOccurred := false

	for _, record := range r.subsystems {
		info := UpdateInfo{Cycle: r.cycle, Subsystem: record.name}
		r.InvokeHook(HookCtx{Domain: r, Pos: HookPosBeforeUpdate, Item: info})

		start := r.clock.Now()
		record.subsystem.Periodic()
		end := r.clock.Now()

		elapsed := end.Sub(start)
		record.lastDuration = elapsed

		info.Duration = elapsed
		info.Overrun = elapsed > OverrunThreshold
		r.InvokeHook(HookCtx{Domain: r, Pos: HookPosAfterUpdate, Item: info})

		loopTimeMs := float64(elapsed) / float64(time.Millisecond)

		if info.Overrun {
			overrunOccurred = true
			fmt.Fprintf(&overrunReport,
				"  - %s: %.3f ms\n", record.name, loopTimeMs)
		}

		if shouldReportTiming {
			fmt.Fprintf(&timingReport,
				"  - %s: %.3f ms\n", record.name, loopTimeMs)
		}
	}

	if overrunOccurred && shouldReportOverrun {
		r.reporter.ReportError(overrunReport.String())
		r.lastOverrunTime = now
	}

	if shouldReportTiming {
		r.reporter.ReportWarning(timingReport.String())
		r.lastTimingTime = now
	}
}
