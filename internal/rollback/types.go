package rollback

import "time"

// #region run-sample

// RunSample is one outcome observation from a canary-selected run.
type RunSample struct {
	RunID            string    `json:"run_id"`
	RecordedAt       time.Time `json:"recorded_at"`
	Error            bool      `json:"error"`
	Timeout          bool      `json:"timeout"`
	Limited          bool      `json:"limited"`
	NonNegativeDelta bool      `json:"non_negative_delta"`
}

// #endregion run-sample

// #region state

// State is the process-wide rollback latch plus its sample window. Once
// Active is true nothing inside the control loop clears it; only the
// operator reset restores the zero value.
type State struct {
	Active        bool        `json:"rollback_active"`
	ReasonCode    string      `json:"rollback_reason_code,omitempty"`
	ActivatedAt   *time.Time  `json:"rollback_activated_at,omitempty"`
	RunID         string      `json:"rollback_run_id,omitempty"`
	RecentSamples []RunSample `json:"recent_samples"`
}

// View is the compact before/after snapshot carried in decision records.
type View struct {
	Active     bool   `json:"active"`
	ReasonCode string `json:"reason_code,omitempty"`
}

// View returns the compact snapshot of a state.
func (s State) View() View {
	return View{Active: s.Active, ReasonCode: s.ReasonCode}
}

// #endregion state

// #region summary

// Summary is the output of one window evaluation.
type Summary struct {
	SamplesCount int    `json:"samples_count"`
	ReasonCode   string `json:"reason_code,omitempty"` // empty = healthy
}

// #endregion summary

// #region update-result

// UpdateResult reports one Controller.Update call. Triggered is true exactly
// on the Clear-to-Latched transition performed by that call.
type UpdateResult struct {
	Before    View    `json:"before"`
	After     View    `json:"after"`
	Summary   Summary `json:"summary"`
	Triggered bool    `json:"triggered"`
}

// #endregion update-result

// #region state-store

// StateStore is the persistence boundary for the rollback singleton.
type StateStore interface {
	GetRollbackState() (State, error)
	PutRollbackState(State) error
	ResetRollbackState() error
}

// #endregion state-store
