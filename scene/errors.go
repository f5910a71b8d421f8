// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	ErrInvariant = errors.New("scene configuration invariant violated")
)
