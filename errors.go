// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

import "errors"

var (
	// ErrInvalidParameters is returned when the average chunk size can't produce usable masks.
	ErrInvalidParameters = errors.New("invalid chunking parameters")

	// ErrDegenerateAlignment is returned when rounding a cut point down to the alignment yields an empty chunk.
	ErrDegenerateAlignment = errors.New("aligned cut point is zero")

	// ErrInvalidIOChunkSize is returned when the read size is not positive.
	ErrInvalidIOChunkSize = errors.New("io chunk size should be positive")
)
