package virtual

import "log"

// A Reporter is the diagnostic-message sink for the Registry. Reports are
// advisory; they never alter subsystem execution. The host wires this to its
// own diagnostic channel, such as the driver station console.
type Reporter interface {
	// ReportWarning delivers an informational block of text.
	ReportWarning(msg string)

	// ReportError delivers a block of text that demands attention.
	ReportError(msg string)
}

// A LogReporter is a Reporter that writes to a log.Logger.
type LogReporter struct {
	Logger *log.Logger
}

// NewLogReporter returns a Reporter writing to the given logger.
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{Logger: logger}
}

// ReportWarning writes the message with a WARNING prefix.
func (r *LogReporter) ReportWarning(msg string) {
	r.Logger.Printf("WARNING: %s", msg)
}

// ReportError writes the message with an ERROR prefix.
func (r *LogReporter) ReportError(msg string) {
	r.Logger.Printf("ERROR: %s", msg)
}
