package engine

// #region versions

// Version identifies a matcher implementation.
type Version string

const (
	VersionV1    Version = "v1"
	VersionV2    Version = "v2"
	VersionV2Alt Version = "v2alt"
)

// #endregion versions

// #region input

// TradeIntent is one party's offer/want pair submitted to the matcher.
type TradeIntent struct {
	ID         string  `json:"id"`
	ActorID    string  `json:"actor_id"`
	OfferAsset string  `json:"offer_asset"`
	WantAsset  string  `json:"want_asset"`
	Quantity   float64 `json:"quantity"`
}

// EdgeIntent is a precomputed graph edge hint passed through to the engine.
type EdgeIntent struct {
	IntentID  string `json:"intent_id"`
	FromAsset string `json:"from_asset"`
	ToAsset   string `json:"to_asset"`
}

// Input is the engine contract's request side. The controller treats it as
// opaque: it is forwarded unchanged to every engine version in a run.
type Input struct {
	Intents        []TradeIntent      `json:"intents"`
	AssetValuesUSD map[string]float64 `json:"asset_values_usd"`
	EdgeIntents    []EdgeIntent       `json:"edge_intents"`
	NowISO         string             `json:"now_iso"`
	ConfigJSON     string             `json:"config_json"`
}

// #endregion input

// #region result

// Stats are the engine's internal counters and safety signals.
type Stats struct {
	CandidateCycles int64 `json:"candidate_cycles"`
	ExecutedCycles  int64 `json:"executed_cycles"`
	ScoreSumScaled  int64 `json:"score_sum_scaled"`
	TimedOut        bool  `json:"cycle_enumeration_timed_out"`
	Limited         bool  `json:"cycle_enumeration_limited"`
}

// Result is one engine execution's output.
type Result struct {
	EngineVersion Version `json:"engine_version"`
	Stats         Stats   `json:"stats"`
	CyclesJSON    string  `json:"cycles_json,omitempty"`
}

// #endregion result

// #region error

// Error is the caught form of an engine execution failure. Engine errors are
// recorded, never propagated to the caller of a matching request.
type Error struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Error implements the error interface for logging contexts.
func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// #endregion error

// #region outcome

// Outcome is the explicit result type at the engine-invocation boundary:
// exactly one of Result or Err is meaningful.
type Outcome struct {
	Result Result
	Err    *Error
}

// OK reports whether the invocation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// #endregion outcome
