// Package monitoring serves a local web dashboard over a running robot
// program. It exposes the registered virtual subsystems, their loop times,
// the alliance state, process resources, and CPU profiles, so a drive-team
// laptop can watch the control loop without attaching a debugger.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/steelhawks/HawkLib-Reformed/field"
	"github.com/steelhawks/HawkLib-Reformed/monitoring/web"
	"github.com/steelhawks/HawkLib-Reformed/virtual"
)

// Monitor turns a robot program into a diagnostics server that a browser on
// the same network can inspect.
type Monitor struct {
	registry   *virtual.Registry
	flipper    *field.Flipper
	portNumber int
	url        string

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterRegistry registers the subsystem registry to be monitored.
func (m *Monitor) RegisterRegistry(r *virtual.Registry) {
	m.registry = r
}

// RegisterFlipper registers the alliance transform so the dashboard can show
// the current alliance and field dimensions.
func (m *Monitor) RegisterFlipper(f *field.Flipper) {
	m.flipper = f
}

// StartServer starts the monitor as a web server, on a custom port if one
// was set.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	fs := web.GetAssets()
	fServer := http.FileServer(fs)
	r.HandleFunc("/api/subsystems", m.listSubsystems)
	r.HandleFunc("/api/subsystem/{name}", m.listSubsystemDetails)
	r.HandleFunc("/api/looptimes", m.listLoopTimes)
	r.HandleFunc("/api/cycle", m.cycle)
	r.HandleFunc("/api/alliance", m.allianceState)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(fServer)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring robot with %s\n", m.url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

// OpenDashboard opens the dashboard in the local browser. StartServer must
// have been called first.
func (m *Monitor) OpenDashboard() {
	if m.url == "" {
		panic("monitor server is not started")
	}

	err := browser.OpenURL(m.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
	}
}

func (m *Monitor) listSubsystems(w http.ResponseWriter, _ *http.Request) {
	bytes, err := json.Marshal(m.registry.Subsystems())
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listSubsystemDetails(
	w http.ResponseWriter,
	r *http.Request,
) {
	name := mux.Vars(r)["name"]

	subsystem := m.registry.SubsystemByName(name)
	if subsystem == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Subsystem not found"))
		dieOnErr(err)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(subsystem)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type loopTimeRsp struct {
	Subsystem string  `json:"subsystem"`
	Ms        float64 `json:"ms"`
	Overrun   bool    `json:"overrun"`
}

func (m *Monitor) listLoopTimes(w http.ResponseWriter, _ *http.Request) {
	names := m.registry.Subsystems()
	rsp := make([]loopTimeRsp, 0, len(names))

	for _, name := range names {
		duration := m.registry.LastDuration(name)
		rsp = append(rsp, loopTimeRsp{
			Subsystem: name,
			Ms:        float64(duration) / float64(time.Millisecond),
			Overrun:   duration > virtual.OverrunThreshold,
		})
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) cycle(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"cycle\":%d}", m.registry.Cycle())
}

type allianceRsp struct {
	Alliance    string  `json:"alliance"`
	ShouldFlip  bool    `json:"should_flip"`
	FieldLength float64 `json:"field_length"`
	FieldWidth  float64 `json:"field_width"`
}

func (m *Monitor) allianceState(w http.ResponseWriter, _ *http.Request) {
	if m.flipper == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	layout := m.flipper.Layout()
	rsp := allianceRsp{
		Alliance:    m.flipper.Alliance().String(),
		ShouldFlip:  m.flipper.ShouldFlip(),
		FieldLength: layout.Length,
		FieldWidth:  layout.Width,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bytes, err := json.Marshal(m.progressBars)
	m.progressBarsLock.Unlock()
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
