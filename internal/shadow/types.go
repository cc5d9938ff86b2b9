package shadow

import (
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/engine"
)

// #region diff-metrics

// DiffMetrics compares candidate output against the v1 baseline.
// DeltaScoreSumScaled (candidate minus baseline, fixed-point scaled) is the
// primary equivalence metric.
type DiffMetrics struct {
	V1CandidateCycles   int64 `json:"v1_candidate_cycles"`
	V2CandidateCycles   int64 `json:"v2_candidate_cycles"`
	DeltaScoreSumScaled int64 `json:"delta_score_sum_scaled"`
}

// #endregion diff-metrics

// #region safety-triggers

// SafetyTriggers are the candidate's own internal safety signals as observed
// for this run.
type SafetyTriggers struct {
	TimeoutReached   bool `json:"timeout_reached"`
	MaxCyclesReached bool `json:"max_cycles_reached"`
}

// #endregion safety-triggers

// #region diff-record

// DiffRecord is one run's shadow comparison, keyed by run id. Exactly one of
// Metrics or Err is set: the error variant records an isolated candidate
// failure without affecting the primary path.
type DiffRecord struct {
	RunID            string          `json:"run_id"`
	RecordedAt       time.Time       `json:"recorded_at"`
	Metrics          *DiffMetrics    `json:"metrics,omitempty"`
	V2SafetyTriggers *SafetyTriggers `json:"v2_safety_triggers,omitempty"`
	Err              *engine.Error   `json:"error,omitempty"`
}

// #endregion diff-record

// #region stores

// DiffStore persists the shadow-diff history. Put must append and prune the
// history to maxKept newest records atomically.
type DiffStore interface {
	PutShadowDiff(rec DiffRecord, maxKept int) error
}

// AltDiffStore persists the alternate-shadow history, independent of the
// shadow-diff history.
type AltDiffStore interface {
	PutAltShadowDiff(rec DiffRecord, maxKept int) error
}

// #endregion stores
