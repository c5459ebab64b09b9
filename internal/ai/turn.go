package ai

import (
	"context"
	"log/slog"
)

// StopReason says why a turn ended.
type StopReason uint8

const (
	// StopIdle - no behavior proposed anything
	StopIdle StopReason = iota
	// StopFailed - a goal could not be decomposed or executed
	StopFailed
	// StopStalled - a goal was selected again on an unchanged state
	StopStalled
	// StopCycleLimit - the per-turn cycle cap was reached
	StopCycleLimit
	// StopCanceled - the caller's context ended
	StopCanceled
)

// String returns human-readable stop reason
func (r StopReason) String() string {
	switch r {
	case StopIdle:
		return "IDLE"
	case StopFailed:
		return "FAILED"
	case StopStalled:
		return "STALLED"
	case StopCycleLimit:
		return "CYCLE_LIMIT"
	case StopCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// TurnResult summarizes one AI turn.
type TurnResult struct {
	Turn      int
	Decisions []Decision
	Reason    StopReason
}

// Executed returns the number of actions performed during the turn.
func (r TurnResult) Executed() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Outcome == OutcomeExecuted {
			n++
		}
	}
	return n
}

// fingerprinter is implemented by snapshots that can detect lack of progress.
type fingerprinter interface {
	Fingerprint() uint64
}

type stallKey struct {
	goal  string
	state uint64
}

// Turn runs cycles until nothing is proposed, a goal fails, the AI picks a
// goal it already picked on the same state, the cycle cap is hit or ctx ends.
// The returned error is the failing cycle's error or ctx.Err().
func (o *Orchestrator) Turn(ctx context.Context) (TurnResult, error) {
	o.turn++
	o.cycle = 0
	res := TurnResult{Turn: o.turn, Reason: StopCycleLimit}
	seen := make(map[stallKey]struct{})

	slog.Info("AI turn started", "turn", o.turn, "behaviors", len(o.behaviors))
	defer func() {
		slog.Info("AI turn finished", "turn", res.Turn, "reason", res.Reason, "executed", res.Executed())
	}()

	for range o.maxCyclesPerTurn {
		if err := ctx.Err(); err != nil {
			res.Reason = StopCanceled
			return res, err
		}

		state := o.deps.State.Snapshot()
		d, best, ok := o.plan(state)

		// Snapshots without a fingerprint are never considered stalled.
		if fp, canFingerprint := state.(fingerprinter); ok && canFingerprint {
			key := stallKey{goal: best.goal.Describe(), state: fp.Fingerprint()}
			if _, dup := seen[key]; dup {
				res.Reason = StopStalled
				return res, nil
			}
			seen[key] = struct{}{}
		}

		d, err := o.act(ctx, state, d, best, ok)
		res.Decisions = append(res.Decisions, d)
		if err != nil {
			res.Reason = StopFailed
			return res, err
		}
		if d.Outcome == OutcomeIdle {
			res.Reason = StopIdle
			return res, nil
		}
	}

	return res, nil
}
