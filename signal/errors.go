// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid signal parameter")
	ErrUnknownType      = errors.New("unknown signal type")
	ErrUnknownFormat    = errors.New("no decoder registered for format")
)
