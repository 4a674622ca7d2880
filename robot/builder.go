package robot

import (
	"github.com/rs/xid"
	"github.com/steelhawks/HawkLib-Reformed/datarecording"
	"github.com/steelhawks/HawkLib-Reformed/field"
	"github.com/steelhawks/HawkLib-Reformed/monitoring"
	"github.com/steelhawks/HawkLib-Reformed/virtual"
)

// Builder can be used to build a robot session.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
	allianceSource field.AllianceSource
	layout         *field.Layout
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:   true,
		recordingOn: true,
	}
}

// WithoutMonitoring sets the session to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutDataRecording sets the session to not record loop data.
func (b Builder) WithoutDataRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithAllianceSource sets the source of the current alliance. When not set,
// the alliance is treated as unknown and field coordinates are never flipped.
func (b Builder) WithAllianceSource(src field.AllianceSource) Builder {
	b.allianceSource = src
	return b
}

// WithFieldLayout sets the field layout, overriding the layout file lookup.
func (b Builder) WithFieldLayout(layout field.Layout) Builder {
	b.layout = &layout
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the robot session.
func (b Builder) Build() *Robot {
	r := &Robot{}

	b.parametersMustBeValid()

	r.id = xid.New().String()

	b.buildFlipper(r)
	b.buildRegistry(r)
	b.buildRecording(r)
	b.buildMonitor(r)

	return r
}

func (b Builder) buildFlipper(r *Robot) {
	layout := field.DefaultLayout
	if b.layout != nil {
		layout = *b.layout
	} else {
		loaded, err := field.LoadLayoutFromEnv()
		if err != nil {
			panic(err)
		}
		layout = loaded
	}

	src := b.allianceSource
	if src == nil {
		src = field.FixedAlliance(field.AllianceUnknown)
	}

	r.flipper = field.NewFlipper(src, layout)
}

func (b Builder) buildRegistry(r *Robot) {
	r.registry = virtual.NewRegistry()
}

func (b Builder) buildRecording(r *Robot) {
	if !b.recordingOn {
		return
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "hawk_session_" + r.id
	}

	r.dataRecorder = datarecording.NewDataRecorder(outputPath)
	r.loopLogger = datarecording.NewLoopLogger(r.dataRecorder)
	r.registry.AcceptHook(r.loopLogger)
}

func (b Builder) buildMonitor(r *Robot) {
	if !b.monitorOn {
		return
	}

	r.monitor = monitoring.NewMonitor()
	if b.monitorPort > 0 {
		r.monitor.WithPortNumber(b.monitorPort)
	}
	r.monitor.RegisterRegistry(r.registry)
	r.monitor.RegisterFlipper(r.flipper)
	r.monitor.StartServer()
}
