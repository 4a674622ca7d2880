// Package robot wires the pieces of the library into one owner object that
// the host robot program holds: the subsystem registry, the session data
// recorder, the monitoring server, and the alliance transform.
package robot

import (
	"github.com/steelhawks/HawkLib-Reformed/datarecording"
	"github.com/steelhawks/HawkLib-Reformed/field"
	"github.com/steelhawks/HawkLib-Reformed/monitoring"
	"github.com/steelhawks/HawkLib-Reformed/virtual"
)

// A Robot provides the services required to run the support library inside a
// robot program.
type Robot struct {
	id string

	registry     *virtual.Registry
	dataRecorder datarecording.DataRecorder
	loopLogger   *datarecording.LoopLogger
	monitor      *monitoring.Monitor
	flipper      *field.Flipper
}

// ID returns the unique ID of this session.
func (r *Robot) ID() string {
	return r.id
}

// Registry returns the subsystem registry.
func (r *Robot) Registry() *virtual.Registry {
	return r.registry
}

// DataRecorder returns the session data recorder, or nil when recording is
// disabled.
func (r *Robot) DataRecorder() datarecording.DataRecorder {
	return r.dataRecorder
}

// Monitor returns the monitor, or nil when monitoring is disabled.
func (r *Robot) Monitor() *monitoring.Monitor {
	return r.monitor
}

// Flipper returns the alliance transform.
func (r *Robot) Flipper() *field.Flipper {
	return r.flipper
}

// RegisterSubsystem registers a virtual subsystem for periodic updates.
func (r *Robot) RegisterSubsystem(s virtual.Subsystem) {
	r.registry.Register(s)
}

// Periodic drives one cycle of all registered subsystems. The host must
// call it once per control period from its main loop.
func (r *Robot) Periodic() {
	r.registry.PeriodicAll()
}

// Terminate ends the session, closing the recording.
func (r *Robot) Terminate() {
	if r.loopLogger != nil {
		r.loopLogger.End()
	}

	if r.dataRecorder != nil {
		r.dataRecorder.Close()
	}
}
