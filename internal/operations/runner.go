// Package operations provides the sequential step runner the reporting
// job executes: discover, process, export, distribute. Each step reads
// and writes the shared run state; a failing step aborts the run.
package operations

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Step is one stage of the reporting run
type Step interface {
	// ID returns the unique identifier for this step
	ID() string

	// Name returns the human-readable name for this step
	Name() string

	// Execute runs the step against the shared run state
	Execute(ctx context.Context, state *State) error
}

// StepStatus represents the current status of a step
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// StepResult records how one step finished
type StepResult struct {
	ID       string
	Name     string
	Status   StepStatus
	Duration time.Duration
	Err      error
}

// State is the shared state of one run. Steps communicate through the
// keyed values; the runner never inspects them.
type State struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewState creates an empty run state
func NewState() *State {
	return &State{values: make(map[string]interface{})}
}

// Set stores a value under a key
func (s *State) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get retrieves a value by key
func (s *State) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Runner executes steps in order, logging timings per step
type Runner struct {
	steps []Step
}

// NewRunner creates a runner over the given steps
func NewRunner(steps ...Step) *Runner {
	return &Runner{steps: steps}
}

// Run executes every step sequentially against a fresh state. It stops
// at the first failure and returns the state alongside the per-step
// results; completed steps' output stays available to the caller either
// way.
func (r *Runner) Run(ctx context.Context) (*State, []StepResult, error) {
	state := NewState()
	results := make([]StepResult, 0, len(r.steps))

	for _, step := range r.steps {
		if err := ctx.Err(); err != nil {
			return state, results, err
		}

		slog.InfoContext(ctx, "step started",
			slog.String("step", step.ID()),
			slog.String("name", step.Name()))

		start := time.Now()
		err := step.Execute(ctx, state)
		elapsed := time.Since(start)

		result := StepResult{
			ID:       step.ID(),
			Name:     step.Name(),
			Status:   StepStatusCompleted,
			Duration: elapsed,
		}
		if err != nil {
			result.Status = StepStatusFailed
			result.Err = err
			results = append(results, result)
			slog.ErrorContext(ctx, "step failed",
				slog.String("step", step.ID()),
				slog.Duration("duration", elapsed),
				slog.String("error", err.Error()))
			return state, results, fmt.Errorf("step %s failed: %w", step.ID(), err)
		}

		results = append(results, result)
		slog.InfoContext(ctx, "step completed",
			slog.String("step", step.ID()),
			slog.Duration("duration", elapsed))
	}

	return state, results, nil
}
