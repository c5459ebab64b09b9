package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gspu/vcmi/internal/ai"
)

// DecisionRecord is one journaled AI decision.
type DecisionRecord struct {
	ID         uuid.UUID
	RunID      uuid.UUID
	Turn       int
	Cycle      int
	Behavior   string
	Goal       string
	Priority   float64
	Action     string
	Candidates int
	Outcome    string
	Error      string
	CreatedAt  time.Time
}

// DecisionRepository stores AI decisions in the ai_decisions table.
type DecisionRepository struct {
	pool *pgxpool.Pool
}

// Compile-time interface check
var _ ai.DecisionRecorder = (*DecisionRepository)(nil)

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(pool *pgxpool.Pool) *DecisionRepository {
	return &DecisionRepository{pool: pool}
}

// RecordDecision inserts a decision.
func (r *DecisionRepository) RecordDecision(ctx context.Context, d ai.Decision) error {
	var errText string
	if d.Err != nil {
		errText = d.Err.Error()
	}
	var priority float64
	if d.Outcome != ai.OutcomeIdle {
		priority = d.Goal.Priority
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO ai_decisions (id, run_id, turn, cycle, behavior, goal, priority, action, candidates, outcome, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID.String(), d.RunID.String(), d.Turn, d.Cycle, d.Behavior, d.GoalLabel(), priority,
		d.ActionLabel(), d.Candidates, d.Outcome.String(), errText,
	)
	if err != nil {
		return fmt.Errorf("recording decision %s: %w", d.ID, err)
	}
	return nil
}

// LoadTurn returns the decisions of one turn of run runID in cycle order.
func (r *DecisionRepository) LoadTurn(ctx context.Context, runID uuid.UUID, turn int) ([]DecisionRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, run_id::text, turn, cycle, behavior, goal, priority, action, candidates, outcome, error, created_at
		FROM ai_decisions
		WHERE run_id = $1 AND turn = $2
		ORDER BY cycle`, runID.String(), turn)
	if err != nil {
		return nil, fmt.Errorf("querying decisions of turn %d: %w", turn, err)
	}
	defer rows.Close()

	var records []DecisionRecord
	for rows.Next() {
		var (
			rec       DecisionRecord
			id, runID string
		)
		if err := rows.Scan(&id, &runID, &rec.Turn, &rec.Cycle, &rec.Behavior, &rec.Goal, &rec.Priority,
			&rec.Action, &rec.Candidates, &rec.Outcome, &rec.Error, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing decision id %q: %w", id, err)
		}
		if rec.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("parsing run id %q: %w", runID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decisions: %w", err)
	}
	return records, nil
}

// CountByOutcome returns how many decisions of run runID ended with each outcome.
func (r *DecisionRepository) CountByOutcome(ctx context.Context, runID uuid.UUID) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT outcome, COUNT(*)
		FROM ai_decisions
		WHERE run_id = $1
		GROUP BY outcome`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("counting decisions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			outcome string
			n       int
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning decision count: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
