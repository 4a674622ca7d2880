package datarecording

import (
	"os"
	"strings"
	"time"

	"github.com/steelhawks/HawkLib-Reformed/virtual"
)

// Table names used by the LoopLogger.
const (
	LoopTimesTable   = "loop_times"
	SessionInfoTable = "session_info"
)

const timestampFormat = "2006-01-02 15:04:05.000000000"

// A LoopEntry is the measurement of one subsystem update in one drive cycle.
type LoopEntry struct {
	Cycle      uint64
	Subsystem  string
	DurationMs float64
	Overrun    bool
}

// A SessionEntry is one property of the recorded session.
type SessionEntry struct {
	Property string
	Value    string
}

// A LoopLogger is a registry hook that records every subsystem update into
// the loop_times table, together with session metadata. Attach it with
// Registry.AcceptHook.
type LoopLogger struct {
	recorder DataRecorder
}

// NewLoopLogger creates a LoopLogger over a recorder and logs the start of
// the session.
func NewLoopLogger(recorder DataRecorder) *LoopLogger {
	l := &LoopLogger{recorder: recorder}

	recorder.CreateTable(LoopTimesTable, LoopEntry{})
	recorder.CreateTable(SessionInfoTable, SessionEntry{})

	l.recordSessionStart()

	return l
}

// Func records the timing of a finished subsystem update.
func (l *LoopLogger) Func(ctx virtual.HookCtx) {
	if ctx.Pos != virtual.HookPosAfterUpdate {
		return
	}

	info := ctx.Item
	l.recorder.InsertData(LoopTimesTable, LoopEntry{
		Cycle:      info.Cycle,
		Subsystem:  info.Subsystem,
		DurationMs: float64(info.Duration) / float64(time.Millisecond),
		Overrun:    info.Overrun,
	})
}

// End logs the end of the session and flushes the recording.
func (l *LoopLogger) End() {
	l.recorder.InsertData(SessionInfoTable, SessionEntry{
		Property: "End Time",
		Value:    time.Now().Format(timestampFormat),
	})

	l.recorder.Flush()
}

func (l *LoopLogger) recordSessionStart() {
	l.recorder.InsertData(SessionInfoTable, SessionEntry{
		Property: "Start Time",
		Value:    time.Now().Format(timestampFormat),
	})

	l.recorder.InsertData(SessionInfoTable, SessionEntry{
		Property: "Command",
		Value:    strings.Join(os.Args, " "),
	})

	wd, err := os.Getwd()
	if err == nil {
		l.recorder.InsertData(SessionInfoTable, SessionEntry{
			Property: "Working Directory",
			Value:    wd,
		})
	}
}
