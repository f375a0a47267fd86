// SPDX-License-Identifier: EPL-2.0

package layout

import "errors"

var (
	ErrNoSpeakers      = errors.New("layout has no speakers")
	ErrBadPosition     = errors.New("position must have 2 or 3 coordinates")
	ErrMixedDimensions = errors.New("all speakers must share the same dimensionality")
	ErrNot2D           = errors.New("layout is not 2D")
	ErrNot3D           = errors.New("layout is not 3D")
)
