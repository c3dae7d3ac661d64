package archive

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// failurePolicy declares what a step failure does to the rest of its plan.
type failurePolicy int

const (
	// abortOnFailure stops the plan and surfaces the step's error.
	// Completed prior steps are not rolled back.
	abortOnFailure failurePolicy = iota
	// warnOnFailure logs the failure and lets the plan continue. Used for
	// auxiliary cleanup whose failure must never fail the primary effect.
	warnOnFailure
)

// step is one primitive action inside a composed operation.
type step struct {
	name   string
	policy failurePolicy
	run    func(ctx context.Context) error
}

// runPlan executes steps in order. Each step blocks until its subprocess
// (if any) exits before the next step starts.
func (m *Manager) runPlan(ctx context.Context, op string, steps []step) error {
	for _, s := range steps {
		err := s.run(ctx)
		if err == nil {
			continue
		}
		if s.policy == warnOnFailure {
			m.log.Warn("auxiliary step failed",
				zap.String("operation", op),
				zap.String("step", s.name),
				zap.Error(err))
			continue
		}
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}
