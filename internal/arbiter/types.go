package arbiter

import "github.com/loopmarket/match-canary/go-controller/internal/engine"

// #region mode

// Mode is the rollout posture for a run.
type Mode string

const (
	// ModePrimaryRollout: the candidate engine is the default primary and v1
	// is the safety net.
	ModePrimaryRollout Mode = "primary_rollout"
	// ModeShadowRollout: v1 stays primary; the candidate serves only runs it
	// wins as a canary sample.
	ModeShadowRollout Mode = "shadow_rollout"
)

// #endregion mode

// #region skip-reasons

const (
	SkipCanaryDisabled = "canary_disabled"
	SkipForcedPrefix   = "forced_skip:"
	SkipRollbackActive = "rollback_active"
	SkipNotInBucket    = "not_in_bucket"
)

// #endregion skip-reasons

// #region fallback-reasons

const (
	FallbackV2Error         = "v2_error"
	FallbackCanaryError     = "canary_error"
	FallbackV2TimeoutSafety = "v2_timeout_safety"
	FallbackV2LimitedSafety = "v2_limited_safety"
)

// #endregion fallback-reasons

// #region selection

// Selection is the per-run canary membership decision.
type Selection struct {
	CanarySelected bool   `json:"canary_selected"`
	SkippedReason  string `json:"skipped_reason,omitempty"`
}

// #endregion selection

// #region triggers

// Triggers are the operationally binding candidate safety signals for a run.
// In shadow-rollout mode they are always false: a run that never served
// traffic by default must not report binding triggers.
type Triggers struct {
	TimeoutReached   bool `json:"timeout_reached"`
	MaxCyclesReached bool `json:"max_cycles_reached"`
}

// #endregion triggers

// #region run-decision

// RunDecision is the arbiter's full routing outcome for one run.
type RunDecision struct {
	Selection        Selection
	Mode             Mode
	ServedEngine     engine.Version
	Primary          engine.Result // the result actually returned to the caller
	Fallback         bool
	FallbackReason   string
	CandidateOutcome *engine.Outcome // nil when the candidate was never attempted
	SafetyTriggers   Triggers
}

// #endregion run-decision
