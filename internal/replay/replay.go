// Package replay folds recorded engine outcomes through the selection and
// rollback logic entirely in memory. It exists to tune rollback thresholds
// against real traffic before changing production config.
package replay

import (
	"context"
	"errors"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/arbiter"
	"github.com/loopmarket/match-canary/go-controller/internal/bucket"
	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
	"github.com/loopmarket/match-canary/go-controller/internal/rollback"
	"github.com/loopmarket/match-canary/go-controller/internal/shadow"
)

// #region types

// Interaction is one recorded run: the identity that fed bucketing plus both
// engines' observed stats.
type Interaction struct {
	RunID          string       `json:"run_id"`
	ActorType      string       `json:"actor_type"`
	ActorID        string       `json:"actor_id"`
	IdempotencyKey string       `json:"idempotency_key"`
	RequestedAt    string       `json:"requested_at"`
	V1Stats        engine.Stats `json:"v1_stats"`
	CandidateStats engine.Stats `json:"candidate_stats"`
	CandidateErr   bool         `json:"candidate_err"`
}

// Result captures one interaction's pass through the loop.
type Result struct {
	RunID          string              `json:"run_id"`
	Selected       bool                `json:"selected"`
	SkippedReason  string              `json:"skipped_reason,omitempty"`
	ServedEngine   engine.Version      `json:"served_engine"`
	Fallback       bool                `json:"fallback"`
	FallbackReason string              `json:"fallback_reason,omitempty"`
	Sample         *rollback.RunSample `json:"sample,omitempty"`
	Triggered      bool                `json:"triggered"`
}

// Summary aggregates a replay run.
type Summary struct {
	Total        int            `json:"total"`
	Selected     int            `json:"selected"`
	Fallbacks    int            `json:"fallbacks"`
	Latched      bool           `json:"latched"`
	LatchedAtRun string         `json:"latched_at_run,omitempty"`
	FinalState   rollback.State `json:"final_state"`
}

// #endregion types

// #region mem-store

type memStore struct {
	st rollback.State
}

func (m *memStore) GetRollbackState() (rollback.State, error) { return m.st, nil }
func (m *memStore) PutRollbackState(st rollback.State) error  { m.st = st; return nil }
func (m *memStore) ResetRollbackState() error                 { m.st = rollback.State{}; return nil }

// #endregion mem-store

// #region static-runner

type staticRunner struct {
	version engine.Version
	stats   engine.Stats
	fail    bool
}

func (r staticRunner) Run(context.Context, engine.Input) (engine.Result, error) {
	if r.fail {
		return engine.Result{}, errors.New("recorded candidate failure")
	}
	return engine.Result{EngineVersion: r.version, Stats: r.stats}, nil
}

// #endregion static-runner

// #region replay

// Replay iterates through interactions, applying selection, the primary
// policy, and rollback evaluation per run. Operates entirely in-memory.
func Replay(interactions []Interaction, cfg config.Config) ([]Result, Summary) {
	cfg.Sanitize()
	ctrl := rollback.NewController(&memStore{})
	ctx := context.Background()

	results := make([]Result, 0, len(interactions))
	summary := Summary{Total: len(interactions)}

	for _, inter := range interactions {
		recordedAt := time.Now().UTC()
		v1 := engine.Result{EngineVersion: engine.VersionV1, Stats: inter.V1Stats}
		candidate := staticRunner{
			version: engine.VersionV2,
			stats:   inter.CandidateStats,
			fail:    inter.CandidateErr,
		}

		st, _ := ctrl.Current()
		bkt := bucket.Assign(cfg.Canary.Salt, inter.ActorType, inter.ActorID, inter.IdempotencyKey, inter.RequestedAt)
		sel := arbiter.Decide(cfg.Canary, st.Active, bkt)
		d := arbiter.Run(ctx, cfg.Canary, cfg.Primary, sel, v1, candidate, engine.Input{})

		res := Result{
			RunID:          inter.RunID,
			Selected:       sel.CanarySelected,
			SkippedReason:  sel.SkippedReason,
			ServedEngine:   d.ServedEngine,
			Fallback:       d.Fallback,
			FallbackReason: d.FallbackReason,
		}

		if sel.CanarySelected && d.CandidateOutcome != nil {
			out := *d.CandidateOutcome
			sample := rollback.RunSample{
				RunID:            inter.RunID,
				RecordedAt:       recordedAt,
				Error:            !out.OK(),
				Timeout:          out.OK() && out.Result.Stats.TimedOut,
				Limited:          out.OK() && out.Result.Stats.Limited,
				NonNegativeDelta: shadow.NonNegativeDelta(v1, out),
			}
			res.Sample = &sample

			upd, err := ctrl.Update(cfg.Canary, cfg.Thresholds, inter.RunID, recordedAt, sample)
			if err == nil {
				res.Triggered = upd.Triggered
				if upd.Triggered {
					summary.Latched = true
					summary.LatchedAtRun = inter.RunID
				}
			}
			summary.Selected++
		}
		if d.Fallback {
			summary.Fallbacks++
		}
		results = append(results, res)
	}

	final, _ := ctrl.Current()
	summary.FinalState = final
	return results, summary
}

// #endregion replay
