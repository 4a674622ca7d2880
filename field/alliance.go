// Package field maps coordinates between the two alliance frames of a
// competition field. Positions and headings are authored in the blue frame;
// a Flipper mirrors them across the field center when the robot plays red.
package field

// An Alliance is the side of the field assigned by the match-control system.
type Alliance int

// The possible alliance assignments. AllianceUnknown is reported before the
// match-control system has assigned a side.
const (
	AllianceUnknown Alliance = iota
	AllianceBlue
	AllianceRed
)

func (a Alliance) String() string {
	switch a {
	case AllianceBlue:
		return "blue"
	case AllianceRed:
		return "red"
	default:
		return "unknown"
	}
}

// An AllianceSource reports the current alliance assignment. It is queried
// on every transform call rather than cached, so a reassignment between
// match stages takes effect immediately.
type AllianceSource interface {
	Alliance() Alliance
}

// AllianceFunc adapts a function to the AllianceSource interface.
type AllianceFunc func() Alliance

// Alliance calls the wrapped function.
func (f AllianceFunc) Alliance() Alliance {
	return f()
}

// FixedAlliance returns a source that always reports the given alliance.
// It is mainly useful in tests and simulation.
func FixedAlliance(a Alliance) AllianceSource {
	return AllianceFunc(func() Alliance { return a })
}
