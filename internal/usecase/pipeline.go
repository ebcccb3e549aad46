package usecase

import (
	"context"
	"errors"
	"time"

	"pix_server/internal/logging"
)

// ErrStepSkipped marks a step whose collaborator is not configured or whose
// input is missing. It is reported, never logged as a failure.
var ErrStepSkipped = errors.New("step skipped")

type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

type StepResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

func (r StepResult) Outcome() string {
	switch {
	case r.Err == nil:
		return "ok"
	case errors.Is(r.Err, ErrStepSkipped):
		return "skipped"
	default:
		return "failed"
	}
}

type StepObserver interface {
	ObserveStep(pipeline string, result StepResult)
}

// Pipeline runs side-effecting steps in order. A failing step never stops the
// following ones and nothing is rolled back.
type Pipeline struct {
	name     string
	steps    []Step
	observer StepObserver
}

func NewPipeline(name string, observer StepObserver) *Pipeline {
	return &Pipeline{name: name, observer: observer}
}

func (p *Pipeline) Add(name string, run func(ctx context.Context) error) *Pipeline {
	p.steps = append(p.steps, Step{Name: name, Run: run})
	return p
}

func (p *Pipeline) Run(ctx context.Context) []StepResult {
	log := logging.FromCtx(ctx).With("pipeline", p.name)
	results := make([]StepResult, 0, len(p.steps))
	for _, s := range p.steps {
		start := time.Now()
		err := runStep(ctx, s)
		res := StepResult{Name: s.Name, Err: err, Duration: time.Since(start)}
		results = append(results, res)

		switch res.Outcome() {
		case "ok":
			log.Info("[pix][pipeline] step done", "step", s.Name, "dur_ms", res.Duration.Milliseconds())
		case "skipped":
			log.Info("[pix][pipeline] step skipped", "step", s.Name, "reason", err.Error())
		default:
			log.Error("[pix][pipeline] step failed", "step", s.Name, "err", err, "dur_ms", res.Duration.Milliseconds())
		}
		if p.observer != nil {
			p.observer.ObserveStep(p.name, res)
		}
	}
	return results
}

// runStep turns a panicking step into a failed result so later steps still run.
func runStep(ctx context.Context, s Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &StepPanicError{Step: s.Name, Value: r}
		}
	}()
	return s.Run(ctx)
}

type StepPanicError struct {
	Step  string
	Value any
}

func (e *StepPanicError) Error() string {
	return "step " + e.Step + " panicked"
}

// FailedSteps returns the names of failed (not skipped) steps.
func FailedSteps(results []StepResult) []string {
	var out []string
	for _, r := range results {
		if r.Outcome() == "failed" {
			out = append(out, r.Name)
		}
	}
	return out
}
