package metrics

import (
	"pix_server/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PipelineObserver counts and times notification pipeline steps.
type PipelineObserver struct {
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ usecase.StepObserver = (*PipelineObserver)(nil)

// NewPipelineObserver registers its collectors on reg. A nil reg uses the
// default registry.
func NewPipelineObserver(reg prometheus.Registerer) *PipelineObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &PipelineObserver{
		steps: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_pipeline_steps_total",
				Help: "Notification pipeline steps by outcome",
			},
			[]string{"pipeline", "step", "result"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pix_pipeline_step_duration_ms",
				Help:    "Duration of notification pipeline steps in ms",
				Buckets: []float64{5, 25, 100, 250, 500, 1000, 2500, 5000, 15000},
			},
			[]string{"pipeline", "step"},
		),
	}
}

func (o *PipelineObserver) ObserveStep(pipeline string, r usecase.StepResult) {
	o.steps.WithLabelValues(pipeline, r.Name, r.Outcome()).Inc()
	o.duration.WithLabelValues(pipeline, r.Name).Observe(float64(r.Duration.Milliseconds()))
}
