// Package pipeline coordinates one matching run through the whole control
// loop: bucket assignment, selection arbitration, shadow diffing, rollback
// evaluation, and decision recording. A run is processed synchronously start
// to finish; only the v1 baseline failing can fail the run.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/loopmarket/match-canary/go-controller/internal/arbiter"
	"github.com/loopmarket/match-canary/go-controller/internal/bucket"
	"github.com/loopmarket/match-canary/go-controller/internal/config"
	"github.com/loopmarket/match-canary/go-controller/internal/decision"
	"github.com/loopmarket/match-canary/go-controller/internal/engine"
	"github.com/loopmarket/match-canary/go-controller/internal/publish"
	"github.com/loopmarket/match-canary/go-controller/internal/rollback"
	"github.com/loopmarket/match-canary/go-controller/internal/shadow"
	"github.com/loopmarket/match-canary/go-controller/internal/store"
)

// #region config-source

// ConfigSource supplies the per-evaluation configuration. How it is loaded
// is outside the control loop.
type ConfigSource interface {
	Current() (config.Config, error)
}

// Static wraps a fixed config as a ConfigSource.
type Static struct {
	Config config.Config
}

// Current returns the wrapped config.
func (s Static) Current() (config.Config, error) {
	return s.Config, nil
}

// #endregion config-source

// #region request

// RunRequest is one matching request entering the control loop.
type RunRequest struct {
	RunID          string       `json:"run_id,omitempty"`
	ActorType      string       `json:"actor_type"`
	ActorID        string       `json:"actor_id"`
	IdempotencyKey string       `json:"idempotency_key"`
	RequestedAt    string       `json:"requested_at"` // ISO-8601, part of the bucket identity
	Input          engine.Input `json:"input"`
}

// RunReport is what the caller boundary receives.
type RunReport struct {
	RunID      string          `json:"run_id"`
	RecordedAt time.Time       `json:"recorded_at"`
	Decision   decision.Record `json:"decision_record"`
}

// #endregion request

// #region pipeline-struct

// Pipeline owns the per-run control flow over injected collaborators.
type Pipeline struct {
	cfgSource ConfigSource
	store     *store.Store
	ctrl      *rollback.Controller
	diffs     *shadow.DiffEngine
	alt       *shadow.AlternateRunner
	v1        engine.Runner
	candidate engine.Runner
	pub       publish.Publisher
}

// New wires a pipeline. alt may be nil when no alternate engine is deployed;
// pub may be nil when no audit topic is configured.
func New(cfgSource ConfigSource, st *store.Store, v1, candidate, alternate engine.Runner, pub publish.Publisher) *Pipeline {
	p := &Pipeline{
		cfgSource: cfgSource,
		store:     st,
		ctrl:      rollback.NewController(st),
		diffs:     shadow.NewDiffEngine(st, candidate),
		v1:        v1,
		candidate: candidate,
		pub:       pub,
	}
	if alternate != nil {
		p.alt = shadow.NewAlternateRunner(st, alternate)
	}
	if p.pub == nil {
		p.pub = publish.Nop{}
	}
	return p
}

// Rollback exposes the controller for operator tooling.
func (p *Pipeline) Rollback() *rollback.Controller {
	return p.ctrl
}

// #endregion pipeline-struct

// #region process

// Process runs one matching request through the control loop and returns the
// audit report. The only failure it propagates is the v1 baseline failing;
// every candidate, shadow, storage, and publish problem is recorded or
// logged and the run proceeds on the baseline.
func (p *Pipeline) Process(ctx context.Context, req RunRequest) (RunReport, error) {
	cfg, err := p.cfgSource.Current()
	if err != nil {
		// Config trouble must not fail the run: fall back to defaults, which
		// keep the canary off.
		log.Printf("[CANARY] config source error, using defaults: %v", err)
		cfg = config.Default()
	}
	cfg.Sanitize()

	runID := req.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	recordedAt := time.Now().UTC()

	// v1 is the unconditional safety-net baseline; without it there is no
	// result to serve and no baseline to diff against.
	v1Res, err := p.v1.Run(ctx, req.Input)
	if err != nil {
		return RunReport{}, fmt.Errorf("baseline engine run %s: %w", runID, err)
	}

	bkt := bucket.Assign(cfg.Canary.Salt, req.ActorType, req.ActorID, req.IdempotencyKey, req.RequestedAt)

	rbState, err := p.ctrl.Current()
	if err != nil {
		log.Printf("[CANARY] rollback state read failed, excluding run %s from canary: %v", runID, err)
		rbState = rollback.State{Active: true, ReasonCode: "state_unavailable"}
	}

	sel := arbiter.Decide(cfg.Canary, rbState.Active, bkt)
	d := arbiter.Run(ctx, cfg.Canary, cfg.Primary, sel, v1Res, p.candidate, req.Input)

	if _, err := p.diffs.Record(ctx, cfg.Canary, runID, recordedAt, v1Res, d.CandidateOutcome, rbState.Active, req.Input); err != nil {
		log.Printf("[CANARY] shadow diff failed for run %s: %v", runID, err)
	}

	before := rbState.View()
	after := before
	triggered := false
	var samplePtr *rollback.RunSample
	if sel.CanarySelected && d.CandidateOutcome != nil {
		out := *d.CandidateOutcome
		sample := rollback.RunSample{
			RunID:            runID,
			RecordedAt:       recordedAt,
			Error:            !out.OK(),
			Timeout:          out.OK() && out.Result.Stats.TimedOut,
			Limited:          out.OK() && out.Result.Stats.Limited,
			NonNegativeDelta: shadow.NonNegativeDelta(v1Res, out),
		}
		samplePtr = &sample

		res, err := p.ctrl.Update(cfg.Canary, cfg.Thresholds, runID, recordedAt, sample)
		if err != nil {
			log.Printf("[CANARY] rollback update failed for run %s: %v", runID, err)
		} else {
			before, after, triggered = res.Before, res.After, res.Triggered
			if res.Triggered {
				log.Printf("[CANARY] rollback latched on run %s: reason=%s samples=%d",
					runID, res.After.ReasonCode, res.Summary.SamplesCount)
			}
		}
	}

	if p.alt != nil {
		if _, err := p.alt.Record(ctx, cfg.Canary, runID, recordedAt, v1Res, req.Input); err != nil {
			log.Printf("[CANARY] alt shadow failed for run %s: %v", runID, err)
		}
	}

	rec := decision.Build(runID, recordedAt, bkt, cfg, v1Res, d, before, after, triggered, samplePtr)
	if err := p.store.PutDecisionRecord(rec); err != nil {
		log.Printf("[CANARY] decision record store failed for run %s: %v", runID, err)
	}
	if err := p.pub.PublishDecision(ctx, rec); err != nil {
		log.Printf("[CANARY] decision publish failed for run %s: %v", runID, err)
	}

	log.Printf("[CANARY] run=%s mode=%s served=%s selected=%v fallback=%v reason=%s",
		runID, rec.Mode, rec.ServedEngine, rec.CanarySelected, rec.Fallback, rec.FallbackReason)

	return RunReport{RunID: runID, RecordedAt: recordedAt, Decision: rec}, nil
}

// #endregion process
