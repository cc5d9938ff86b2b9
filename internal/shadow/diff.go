// Package shadow computes comparison records between the baseline and
// candidate engine outputs, off the serving path. Shadow failures are
// recorded as error-variant records and never influence routing.
package shadow

import (
	"context"
	"fmt"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
)

// #region diff-engine

// DiffEngine builds and stores shadow-diff records for canary runs.
type DiffEngine struct {
	store  DiffStore
	runner engine.Runner // candidate engine, used when no result was computed upstream
}

// NewDiffEngine creates a diff engine over the injected store and the
// candidate runner used for fresh shadow executions.
func NewDiffEngine(store DiffStore, runner engine.Runner) *DiffEngine {
	return &DiffEngine{store: store, runner: runner}
}

// Record ensures a candidate result exists, builds the comparison record
// against the v1 baseline, and stores it pruned to the configured cap.
//
// candidate carries the outcome already computed by the selection arbiter
// when the candidate path ran; when it is nil and the rollback latch froze
// the run, the comparison is skipped entirely (nil, nil) since there is
// nothing to diff. Otherwise a fresh execution happens here, subject to the
// force_shadow_error injection flag and isolated error handling.
func (d *DiffEngine) Record(ctx context.Context, cfg config.CanaryConfig, runID string, recordedAt time.Time, v1 engine.Result, candidate *engine.Outcome, rollbackActive bool, in engine.Input) (*DiffRecord, error) {
	if !cfg.ShadowEnabled {
		return nil, nil
	}
	if candidate == nil {
		if rollbackActive {
			return nil, nil
		}
		out := engine.Invoke(ctx, d.runner, in, cfg.ForceShadowError)
		candidate = &out
	} else if cfg.ForceShadowError && candidate.OK() {
		// The injection flag applies to the shadow path even when the
		// arbiter's execution is being reused.
		candidate = &engine.Outcome{Err: &engine.Error{
			Code:    "forced_error",
			Name:    "ForcedEngineError",
			Message: engine.ErrForced.Error(),
		}}
	}

	rec := buildRecord(runID, recordedAt, v1, *candidate)
	if err := d.store.PutShadowDiff(rec, cfg.MaxShadowDiffs); err != nil {
		return nil, fmt.Errorf("store shadow diff %s: %w", runID, err)
	}
	return &rec, nil
}

// #endregion diff-engine

// #region record-builder

func buildRecord(runID string, recordedAt time.Time, v1 engine.Result, candidate engine.Outcome) DiffRecord {
	rec := DiffRecord{RunID: runID, RecordedAt: recordedAt}
	if !candidate.OK() {
		rec.Err = candidate.Err
		return rec
	}
	rec.Metrics = &DiffMetrics{
		V1CandidateCycles:   v1.Stats.CandidateCycles,
		V2CandidateCycles:   candidate.Result.Stats.CandidateCycles,
		DeltaScoreSumScaled: candidate.Result.Stats.ScoreSumScaled - v1.Stats.ScoreSumScaled,
	}
	rec.V2SafetyTriggers = &SafetyTriggers{
		TimeoutReached:   candidate.Result.Stats.TimedOut,
		MaxCyclesReached: candidate.Result.Stats.Limited,
	}
	return rec
}

// #endregion record-builder

// #region non-negative-delta

// NonNegativeDelta derives the rollback sample bit: true when the candidate
// succeeded and its scaled score sum did not regress below the baseline,
// false whenever the candidate run errored.
func NonNegativeDelta(v1 engine.Result, candidate engine.Outcome) bool {
	if !candidate.OK() {
		return false
	}
	return candidate.Result.Stats.ScoreSumScaled-v1.Stats.ScoreSumScaled >= 0
}

// #endregion non-negative-delta
