// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var (
	ErrShapeMismatch = errors.New("signals must share one length")
)
