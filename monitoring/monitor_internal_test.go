package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	"github.com/steelhawks/HawkLib-Reformed/field"
	"github.com/steelhawks/HawkLib-Reformed/virtual"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type sampleSubsystem struct {
	*virtual.SubsystemBase

	updateCount int
}

func (s *sampleSubsystem) Periodic() {
	s.updateCount++
}

var _ = Describe("Monitor", func() {
	var (
		m        *Monitor
		registry *virtual.Registry
	)

	BeforeEach(func() {
		m = &Monitor{}
		registry = virtual.NewRegistry().
			WithReporter(nullReporter{})
		m.RegisterRegistry(registry)
	})

	It("should list registered subsystems", func() {
		registry.Register(&sampleSubsystem{
			SubsystemBase: virtual.NewSubsystemBase("Vision"),
		})
		registry.Register(&sampleSubsystem{
			SubsystemBase: virtual.NewSubsystemBase("Odometry"),
		})

		recorder := httptest.NewRecorder()
		m.listSubsystems(recorder, nil)

		var names []string
		Expect(json.Unmarshal(recorder.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Vision", "Odometry"}))
	})

	It("should report loop times after a drive cycle", func() {
		registry.Register(&sampleSubsystem{
			SubsystemBase: virtual.NewSubsystemBase("Vision"),
		})
		registry.PeriodicAll()

		recorder := httptest.NewRecorder()
		m.listLoopTimes(recorder, nil)

		var rsp []loopTimeRsp
		Expect(json.Unmarshal(recorder.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(HaveLen(1))
		Expect(rsp[0].Subsystem).To(Equal("Vision"))
		Expect(rsp[0].Overrun).To(BeFalse())
	})

	It("should report the alliance state", func() {
		m.RegisterFlipper(field.NewFlipper(
			field.FixedAlliance(field.AllianceRed),
			field.Layout{Length: 16, Width: 8},
		))

		recorder := httptest.NewRecorder()
		m.allianceState(recorder, nil)

		var rsp allianceRsp
		Expect(json.Unmarshal(recorder.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Alliance).To(Equal("red"))
		Expect(rsp.ShouldFlip).To(BeTrue())
		Expect(rsp.FieldLength).To(Equal(16.0))
	})

	It("should return 404 for alliance state without a flipper", func() {
		recorder := httptest.NewRecorder()
		m.allianceState(recorder, nil)

		Expect(recorder.Code).To(Equal(404))
	})

	It("should manage progress bars", func() {
		bar := m.CreateProgressBar("calibration", 100)
		bar.IncrementInProgress(10)
		bar.MoveInProgressToFinished(4)

		Expect(bar.InProgress).To(Equal(uint64(6)))
		Expect(bar.Finished).To(Equal(uint64(4)))
		Expect(m.progressBars).To(HaveLen(1))

		m.CompleteProgressBar(bar)
		Expect(m.progressBars).To(BeEmpty())
	})
})

type nullReporter struct{}

func (nullReporter) ReportWarning(string) {}
func (nullReporter) ReportError(string)   {}
