// Package rollback maintains the one-way safety latch over a sliding window
// of candidate-engine outcome samples. A tripped latch disables candidate
// execution platform-wide until an operator resets the state.
package rollback

import (
	"fmt"
	"sync"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/config"
)

// #region reason-codes

const (
	ReasonErrorRate         = "error_rate"
	ReasonTimeoutRate       = "timeout_rate"
	ReasonLimitedRate       = "limited_rate"
	ReasonNegativeDeltaRate = "negative_delta_rate"
)

// #endregion reason-codes

// #region summarize

// Summarize evaluates a sample window against the configured thresholds and
// returns the first tripped reason code, or an empty code when healthy.
// Pure function: same samples and thresholds, same summary.
func Summarize(samples []RunSample, t config.RollbackThresholds) Summary {
	s := Summary{SamplesCount: len(samples)}
	if len(samples) < t.MinSamples {
		return s
	}

	var errs, timeouts, limiteds, negDeltas int
	for _, sm := range samples {
		if sm.Error {
			errs++
		}
		if sm.Timeout {
			timeouts++
		}
		if sm.Limited {
			limiteds++
		}
		if !sm.NonNegativeDelta {
			negDeltas++
		}
	}

	n := float64(len(samples))
	switch {
	case float64(errs)/n > t.MaxErrorRate:
		s.ReasonCode = ReasonErrorRate
	case float64(timeouts)/n > t.MaxTimeoutRate:
		s.ReasonCode = ReasonTimeoutRate
	case float64(limiteds)/n > t.MaxLimitedRate:
		s.ReasonCode = ReasonLimitedRate
	case float64(negDeltas)/n > t.MaxNegativeDeltaRate:
		s.ReasonCode = ReasonNegativeDeltaRate
	}
	return s
}

// #endregion summarize

// #region controller

// Controller serializes every append-trim-evaluate-persist cycle over the
// shared rollback state. Engine executions may run in parallel across
// requests; this mutex is the single-writer discipline for the latch.
type Controller struct {
	mu    sync.Mutex
	store StateStore
}

// NewController creates a controller over the injected state store.
func NewController(store StateStore) *Controller {
	return &Controller{store: store}
}

// Current reads the persisted state without mutating it.
func (c *Controller) Current() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.GetRollbackState()
}

// Update appends the run's sample, trims the window to the configured size,
// evaluates it, and latches on a non-empty reason code. Once latched the
// state is frozen: no sample is appended and nothing changes until Reset.
func (c *Controller) Update(cfg config.CanaryConfig, thresholds config.RollbackThresholds, runID string, recordedAt time.Time, sample RunSample) (UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.store.GetRollbackState()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("load rollback state: %w", err)
	}
	before := st.View()

	if st.Active {
		// Latched is terminal inside the loop; the window stays frozen at
		// the moment of the trip for audit.
		return UpdateResult{
			Before:  before,
			After:   before,
			Summary: Summary{SamplesCount: len(st.RecentSamples), ReasonCode: st.ReasonCode},
		}, nil
	}

	st.RecentSamples = append(st.RecentSamples, sample)
	if over := len(st.RecentSamples) - cfg.RollbackWindowRuns; over > 0 {
		st.RecentSamples = st.RecentSamples[over:]
	}

	summary := Summarize(st.RecentSamples, thresholds)
	triggered := summary.ReasonCode != ""
	if triggered {
		at := recordedAt
		st.Active = true
		st.ReasonCode = summary.ReasonCode
		st.ActivatedAt = &at
		st.RunID = runID
	}

	if err := c.store.PutRollbackState(st); err != nil {
		return UpdateResult{}, fmt.Errorf("persist rollback state: %w", err)
	}

	return UpdateResult{
		Before:    before,
		After:     st.View(),
		Summary:   summary,
		Triggered: triggered,
	}, nil
}

// Reset is the external operator action: it restores the empty initial
// state. Nothing inside the control loop calls this.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.ResetRollbackState(); err != nil {
		return fmt.Errorf("reset rollback state: %w", err)
	}
	return nil
}

// #endregion controller
