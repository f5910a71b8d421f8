// SPDX-License-Identifier: EPL-2.0

package filter

import "errors"

var (
	ErrInvalidOrder      = errors.New("filter order must be a positive integer")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnknownKind       = errors.New("unknown filter kind")
)
