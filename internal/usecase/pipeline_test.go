package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	seen []string
}

func (o *recordingObserver) ObserveStep(pipeline string, result StepResult) {
	o.seen = append(o.seen, pipeline+"/"+result.Name+"="+result.Outcome())
}

func TestPipeline_RunsEveryStepInOrder(t *testing.T) {
	var order []string
	obs := &recordingObserver{}

	results := NewPipeline("fanout", obs).
		Add("first", func(context.Context) error { order = append(order, "first"); return nil }).
		Add("second", func(context.Context) error { order = append(order, "second"); return errors.New("vendor down") }).
		Add("third", func(context.Context) error { order = append(order, "third"); return fmt.Errorf("no phone: %w", ErrStepSkipped) }).
		Add("fourth", func(context.Context) error { order = append(order, "fourth"); panic("boom") }).
		Add("fifth", func(context.Context) error { order = append(order, "fifth"); return nil }).
		Run(context.Background())

	require.Len(t, results, 5)
	assert.Equal(t, []string{"first", "second", "third", "fourth", "fifth"}, order)
	assert.Equal(t, "ok", results[0].Outcome())
	assert.Equal(t, "failed", results[1].Outcome())
	assert.Equal(t, "skipped", results[2].Outcome())
	assert.Equal(t, "failed", results[3].Outcome())

	var panicErr *StepPanicError
	assert.ErrorAs(t, results[3].Err, &panicErr)
	assert.Equal(t, []string{"second", "fourth"}, FailedSteps(results))
	assert.Equal(t, []string{
		"fanout/first=ok",
		"fanout/second=failed",
		"fanout/third=skipped",
		"fanout/fourth=failed",
		"fanout/fifth=ok",
	}, obs.seen)
}

func TestPipeline_Empty(t *testing.T) {
	results := NewPipeline("empty", nil).Run(context.Background())
	assert.Empty(t, results)
	assert.Nil(t, FailedSteps(results))
}
