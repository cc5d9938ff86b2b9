// Package decision assembles the per-run audit record: routing outcome,
// config snapshot, rollback transition, and aggregate metrics. Pure data
// assembly with no side effects.
package decision

import (
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/arbiter"
	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
	"github.com/loopmarket/match-canary/go-controller/internal/rollback"
)

// #region metrics

// Metrics aggregates the run's engine counters. Candidate-derived values are
// pointers: nil means the candidate never produced a result this run.
type Metrics struct {
	V1CandidateCycles   int64  `json:"v1_candidate_cycles"`
	V2CandidateCycles   *int64 `json:"v2_candidate_cycles,omitempty"`
	DeltaScoreSumScaled *int64 `json:"delta_score_sum_scaled,omitempty"`
	TimeoutReached      bool   `json:"timeout_reached"`
	MaxCyclesReached    bool   `json:"max_cycles_reached"`
}

// #endregion metrics

// #region sample-summary

// SampleSummary is the compact form of the run's rollback sample.
type SampleSummary struct {
	Error            bool `json:"error"`
	Timeout          bool `json:"timeout"`
	Limited          bool `json:"limited"`
	NonNegativeDelta bool `json:"non_negative_delta"`
}

// #endregion sample-summary

// #region record

// Record is the full audit entry for one run.
type Record struct {
	RunID      string    `json:"run_id"`
	RecordedAt time.Time `json:"recorded_at"`

	Mode           arbiter.Mode   `json:"mode"`
	ServedEngine   engine.Version `json:"served_engine"`
	Fallback       bool           `json:"fallback"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
	CanarySelected bool           `json:"canary_selected"`
	SkippedReason  string         `json:"skipped_reason,omitempty"`
	Bucket         int            `json:"bucket"`

	Canary  config.CanaryConfig  `json:"canary_config"`
	Primary config.PrimaryConfig `json:"primary_config"`

	RollbackBefore    rollback.View `json:"rollback_before"`
	RollbackAfter     rollback.View `json:"rollback_after"`
	RollbackTriggered bool          `json:"rollback_triggered"`

	Metrics Metrics        `json:"metrics"`
	Sample  *SampleSummary `json:"sample"` // nil when the run was not canary-selected
}

// #endregion record

// #region build

// Build assembles the audit record for a completed run. sample is nil for
// runs that were not canary-selected.
func Build(runID string, recordedAt time.Time, bkt int, cfg config.Config, v1 engine.Result, d arbiter.RunDecision, before, after rollback.View, triggered bool, sample *rollback.RunSample) Record {
	rec := Record{
		RunID:             runID,
		RecordedAt:        recordedAt,
		Mode:              d.Mode,
		ServedEngine:      d.ServedEngine,
		Fallback:          d.Fallback,
		FallbackReason:    d.FallbackReason,
		CanarySelected:    d.Selection.CanarySelected,
		SkippedReason:     d.Selection.SkippedReason,
		Bucket:            bkt,
		Canary:            cfg.Canary,
		Primary:           cfg.Primary,
		RollbackBefore:    before,
		RollbackAfter:     after,
		RollbackTriggered: triggered,
		Metrics: Metrics{
			V1CandidateCycles: v1.Stats.CandidateCycles,
			TimeoutReached:    d.SafetyTriggers.TimeoutReached,
			MaxCyclesReached:  d.SafetyTriggers.MaxCyclesReached,
		},
	}

	if out := d.CandidateOutcome; out != nil && out.OK() {
		cycles := out.Result.Stats.CandidateCycles
		delta := out.Result.Stats.ScoreSumScaled - v1.Stats.ScoreSumScaled
		rec.Metrics.V2CandidateCycles = &cycles
		rec.Metrics.DeltaScoreSumScaled = &delta
	}

	if sample != nil {
		rec.Sample = &SampleSummary{
			Error:            sample.Error,
			Timeout:          sample.Timeout,
			Limited:          sample.Limited,
			NonNegativeDelta: sample.NonNegativeDelta,
		}
	}
	return rec
}

// #endregion build
