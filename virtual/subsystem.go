// Package virtual drives periodic updates for subsystems that have no
// physical actuator of their own. Subsystems register with a Registry once,
// during startup; the host's main loop then calls PeriodicAll once per
// control period. The Registry times every update, warns about budget
// overruns, and exposes hook points for recording and monitoring.
package virtual

import "reflect"

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Subsystem is a unit of per-cycle work. Periodic is called once per
// control period and is expected to return well within the period; the
// Registry measures it but does not interrupt it.
type Subsystem interface {
	Periodic()
}

// SubsystemBase provides the name bookkeeping for subsystem implementations.
type SubsystemBase struct {
	name string
}

// NewSubsystemBase creates a new SubsystemBase.
func NewSubsystemBase(name string) *SubsystemBase {
	return &SubsystemBase{name: name}
}

// Name returns the name of the subsystem.
func (s *SubsystemBase) Name() string {
	return s.name
}

// subsystemName derives a display name for a subsystem: its own Name when it
// is Named, otherwise the name of its concrete type.
func subsystemName(s Subsystem) string {
	if named, ok := s.(Named); ok && named.Name() != "" {
		return named.Name()
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}
