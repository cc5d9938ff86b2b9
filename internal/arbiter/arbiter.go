// Package arbiter decides, per matching run, whether the candidate engine is
// attempted and which engine's result is served. Candidate failures are
// downgraded to a v1 fallback with a reason code; they never reach the
// caller.
package arbiter

import (
	"context"

	"github.com/loopmarket/match-canary/go-controller/internal/bucket"
	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
)

// #region decide

// Decide computes canary membership for a run. Selected means: the canary is
// enabled, no operator skip is forced, the rollback latch is clear, and the
// run's bucket falls inside the rollout threshold.
func Decide(cfg config.CanaryConfig, rollbackActive bool, bkt int) Selection {
	switch {
	case !cfg.Enabled:
		return Selection{SkippedReason: SkipCanaryDisabled}
	case cfg.ForceSkipReason != "":
		return Selection{SkippedReason: SkipForcedPrefix + cfg.ForceSkipReason}
	case rollbackActive:
		return Selection{SkippedReason: SkipRollbackActive}
	case !bucket.InRollout(bkt, cfg.RolloutBps):
		return Selection{SkippedReason: SkipNotInBucket}
	}
	return Selection{CanarySelected: true}
}

// #endregion decide

// #region mode-of

// ModeOf maps the primary config to the run's rollout posture.
func ModeOf(pcfg config.PrimaryConfig) Mode {
	if pcfg.Enabled {
		return ModePrimaryRollout
	}
	return ModeShadowRollout
}

// #endregion mode-of

// #region run

// Run executes the candidate path for a selected run and applies the
// primary-selection policy. v1 is the always-present baseline result; it is
// served unchanged whenever the run is not selected or the candidate cannot
// be trusted.
func Run(ctx context.Context, cfg config.CanaryConfig, pcfg config.PrimaryConfig, sel Selection, v1 engine.Result, candidate engine.Runner, in engine.Input) RunDecision {
	d := RunDecision{
		Selection:    sel,
		Mode:         ModeOf(pcfg),
		ServedEngine: engine.VersionV1,
		Primary:      v1,
	}
	if !sel.CanarySelected {
		return d
	}

	force := cfg.ForceCanaryError
	if pcfg.Enabled {
		force = pcfg.ForcePrimaryError
	}
	out := engine.Invoke(ctx, candidate, in, force)
	d.CandidateOutcome = &out

	if !out.OK() {
		d.Fallback = true
		if pcfg.Enabled {
			d.FallbackReason = FallbackV2Error
		} else {
			d.FallbackReason = FallbackCanaryError
		}
		return d
	}

	if !pcfg.Enabled {
		// Shadow-rollout: the winner of the coin flip gets served candidate
		// output for this run only; triggers stay false.
		d.ServedEngine = engine.VersionV2
		d.Primary = out.Result
		return d
	}

	d.SafetyTriggers = Triggers{
		TimeoutReached:   out.Result.Stats.TimedOut,
		MaxCyclesReached: out.Result.Stats.Limited,
	}
	switch {
	case d.SafetyTriggers.TimeoutReached && pcfg.FallbackOnTimeout:
		d.Fallback = true
		d.FallbackReason = FallbackV2TimeoutSafety
	case d.SafetyTriggers.MaxCyclesReached && pcfg.FallbackOnLimited:
		d.Fallback = true
		d.FallbackReason = FallbackV2LimitedSafety
	default:
		d.ServedEngine = engine.VersionV2
		d.Primary = out.Result
	}
	return d
}

// #endregion run
