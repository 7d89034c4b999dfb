package usecase

import (
	"context"
	"log"

	"troca_medidores/internal/domain/entities"
)

// WorkflowController drives the four-step execution screen:
//
//	Summary(1) -> Inspection(2) -> Installation(3) -> Closing(4)
//
// with a conditional edge Inspection -> Closing that bypasses Installation
// when the decision engine suggests an early exit at the moment of
// advancing. Backward navigation mirrors the bypass. Every step change is
// persisted as an immediate write so the position survives a reload.

type WorkflowController struct {
	record *entities.InspectionRecord
	queue  *MutationQueue
}

func NewWorkflowController(record *entities.InspectionRecord, queue *MutationQueue) *WorkflowController {
	if record.CurrentStep < entities.StepSummary || record.CurrentStep > entities.StepClosing {
		record.CurrentStep = entities.StepSummary
	}
	return &WorkflowController{record: record, queue: queue}
}

func (c *WorkflowController) Step() entities.WorkflowStep {
	return c.record.CurrentStep
}

// Advance moves one step forward. Leaving Inspection with an early-exit
// suggestion jumps straight to Closing and pre-selects the suggested closure
// motive when none is set yet, so the Closing step opens with it.
func (c *WorkflowController) Advance(ctx context.Context) (entities.WorkflowStep, error) {
	switch c.record.CurrentStep {
	case entities.StepSummary:
		return c.goTo(ctx, entities.StepInspection)
	case entities.StepInspection:
		outcome := Suggest(*c.record)
		if outcome.EarlyExit() {
			if c.record.ClosureMotive == nil {
				if err := c.queue.SetField(ctx, entities.FieldClosureMotive, float64(outcome), true); err != nil {
					log.Printf("[workflow] auto-assign motive skipped order_id=%d outcome=%d err=%v", c.record.OrderID, outcome, err)
				}
			}
			return c.goTo(ctx, entities.StepClosing)
		}
		return c.goTo(ctx, entities.StepInstallation)
	case entities.StepInstallation:
		return c.goTo(ctx, entities.StepClosing)
	}
	return c.record.CurrentStep, nil
}

// Back moves one step backward, skipping Installation in the mirror of the
// forward bypass: from Closing, "previous" is Inspection whenever the
// current suggestion is an early exit.
func (c *WorkflowController) Back(ctx context.Context) (entities.WorkflowStep, error) {
	switch c.record.CurrentStep {
	case entities.StepClosing:
		if Suggest(*c.record).EarlyExit() {
			return c.goTo(ctx, entities.StepInspection)
		}
		return c.goTo(ctx, entities.StepInstallation)
	case entities.StepInstallation:
		return c.goTo(ctx, entities.StepInspection)
	case entities.StepInspection:
		return c.goTo(ctx, entities.StepSummary)
	}
	return c.record.CurrentStep, nil
}

// GoTo jumps to an arbitrary step. Used by the finalization flow to redirect
// to Installation when installation data is missing.
func (c *WorkflowController) GoTo(ctx context.Context, step entities.WorkflowStep) (entities.WorkflowStep, error) {
	if step < entities.StepSummary || step > entities.StepClosing {
		return c.record.CurrentStep, nil
	}
	return c.goTo(ctx, step)
}

func (c *WorkflowController) goTo(ctx context.Context, step entities.WorkflowStep) (entities.WorkflowStep, error) {
	if c.queue.ReadOnly() {
		// Review mode: the agent may page through a closed order, but the
		// position is not persisted.
		c.record.CurrentStep = step
		return step, nil
	}
	if err := c.queue.SetField(ctx, entities.FieldCurrentStep, float64(step), true); err != nil {
		return c.record.CurrentStep, err
	}
	return c.record.CurrentStep, nil
}
