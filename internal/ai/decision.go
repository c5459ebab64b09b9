package ai

import (
	"github.com/google/uuid"

	"github.com/gspu/vcmi/internal/ai/goals"
)

// Outcome is the result of one decision cycle.
type Outcome uint8

const (
	// OutcomeIdle - no behavior proposed anything
	OutcomeIdle Outcome = iota
	// OutcomeExecuted - the selected goal was executed
	OutcomeExecuted
	// OutcomeFailed - decomposition or execution failed
	OutcomeFailed
)

// String returns human-readable outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "IDLE"
	case OutcomeExecuted:
		return "EXECUTED"
	case OutcomeFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Decision describes what one cycle did.
type Decision struct {
	ID    uuid.UUID
	RunID uuid.UUID
	Turn  int
	Cycle int

	// Candidates is the number of goals pooled from all behaviors.
	Candidates int
	// Behavior is the name of the behavior that proposed Goal.
	Behavior string

	Goal    goals.Goal
	Action  goals.Action
	Outcome Outcome
	Err     error
}

// GoalLabel returns the selected goal's label, or "" for idle cycles.
func (d Decision) GoalLabel() string {
	if d.Outcome == OutcomeIdle {
		return ""
	}
	return d.Goal.Describe()
}

// ActionLabel returns the executed action's label, or "" if nothing was decomposed.
func (d Decision) ActionLabel() string {
	if d.Action.Kind == 0 {
		return ""
	}
	return d.Action.String()
}
