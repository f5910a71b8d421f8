// SPDX-License-Identifier: EPL-2.0

package simulate

import (
	"errors"
	"fmt"
)

var (
	ErrPropagation = errors.New("acoustics engine failure")
	ErrNoEngine    = errors.New("no acoustics engine configured")
	ErrBadEngine   = errors.New("engine returned malformed propagation")
)

// StageError is the single structured error a run surfaces: which stage the
// state machine halted in, and why.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("simulation failed during %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
