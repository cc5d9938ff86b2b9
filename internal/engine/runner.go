package engine

import (
	"context"
	"errors"
)

// #region runner-interface

// Runner executes one matcher implementation. Implementations may fail with
// an ordinary error; Invoke converts that into an Outcome so nothing above
// this boundary deals with raw engine errors.
type Runner interface {
	Run(ctx context.Context, in Input) (Result, error)
}

// #endregion runner-interface

// #region forced-error

// ErrForced is the injected failure used by the force_*_error config flags.
var ErrForced = errors.New("forced engine error")

// #endregion forced-error

// #region invoke

// Invoke runs the engine and downgrades any failure to an error-variant
// Outcome. forceError short-circuits the run with ErrForced, exercising the
// exact failure path used for real errors.
func Invoke(ctx context.Context, r Runner, in Input, forceError bool) Outcome {
	if forceError {
		return Outcome{Err: &Error{
			Code:    "forced_error",
			Name:    "ForcedEngineError",
			Message: ErrForced.Error(),
		}}
	}

	res, err := r.Run(ctx, in)
	if err != nil {
		return Outcome{Err: &Error{
			Code:    "engine_execution_failed",
			Name:    "EngineExecutionError",
			Message: err.Error(),
		}}
	}
	return Outcome{Result: res}
}

// #endregion invoke
