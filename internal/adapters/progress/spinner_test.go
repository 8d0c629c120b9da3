package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

func TestSpinnerProgressReporter_Display(t *testing.T) {
	r := NewSpinnerProgressReporter()
	r.currentStage = "balances"
	r.stageStartTime = time.Now()

	t.Run("message only", func(t *testing.T) {
		assert.Equal(t, "Reading balances", r.display(usecase.ProgressEvent{Message: "Reading balances"}))
	})

	t.Run("with counter", func(t *testing.T) {
		assert.Equal(t, "Reading balances [2/5]", r.display(usecase.ProgressEvent{Message: "Reading balances", Current: 2, Total: 5}))
	})
}

// The spinner stays inactive without a terminal, so only stage tracking is checked
func TestSpinnerProgressReporter_TracksStages(t *testing.T) {
	r := NewSpinnerProgressReporter()
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "registry", Message: "Reading registry", Spinner: true})
	assert.Equal(t, "registry", r.currentStage)
	started := r.stageStartTime

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "registry", Message: "Reading registry", Spinner: true})
	assert.Equal(t, started, r.stageStartTime)

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: StageDone})
	assert.False(t, r.spinner.Active())
	assert.Equal(t, StageDone, r.currentStage)
}
