package shadow

import (
	"context"
	"fmt"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
)

// #region alternate-runner

// AlternateRunner executes the independently-implemented candidate engine
// purely as a cross-validation signal. It is fully decoupled from routing
// and rollback: its failures are recorded in its own bounded history and go
// no further.
type AlternateRunner struct {
	store  AltDiffStore
	runner engine.Runner
}

// NewAlternateRunner creates an alternate shadow runner over the injected
// store and the alternate engine deployment.
func NewAlternateRunner(store AltDiffStore, runner engine.Runner) *AlternateRunner {
	return &AlternateRunner{store: store, runner: runner}
}

// Record runs the alternate engine and stores the comparison against the v1
// baseline, pruned to its own cap.
func (a *AlternateRunner) Record(ctx context.Context, cfg config.CanaryConfig, runID string, recordedAt time.Time, v1 engine.Result, in engine.Input) (*DiffRecord, error) {
	if !cfg.AltShadowEnabled {
		return nil, nil
	}
	out := engine.Invoke(ctx, a.runner, in, cfg.ForceAltShadowError)
	rec := buildRecord(runID, recordedAt, v1, out)
	if err := a.store.PutAltShadowDiff(rec, cfg.MaxAltShadowDiffs); err != nil {
		return nil, fmt.Errorf("store alt shadow diff %s: %w", runID, err)
	}
	return &rec, nil
}

// #endregion alternate-runner
