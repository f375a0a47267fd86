// SPDX-License-Identifier: EPL-2.0

package panner

import "errors"

var (
	ErrInvalidWeight = errors.New("speaker weight must not be negative or NaN")
)
