// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

import (
	"fmt"
	"math"
)

const (
	// MinAvgSize is the smallest accepted average chunk size.
	MinAvgSize = 8

	// MaxAvgSize is the largest accepted average chunk size, MaxSize must fit in a 32-bit int.
	MaxAvgSize = 1 << 27
)

// Parameters are the chunking thresholds derived from the average chunk size.
//
// Parameters are immutable and safe to share between streams.
type Parameters struct {
	// MinSize is the number of bytes skipped before any cut point is considered.
	MinSize int
	// MaxSize forces a cut if no content-defined one was found.
	MaxSize int
	// CenterSize is where the search switches from MaskSmall to MaskLarge.
	CenterSize int

	// MaskSmall has one more low bit set than the target, so it matches less often.
	MaskSmall uint32
	// MaskLarge has one less low bit set than the target, so it matches more often.
	MaskLarge uint32
}

// NewParameters derives chunking thresholds from the target average chunk size.
func NewParameters(avgSize int) (Parameters, error) {
	if avgSize < MinAvgSize || avgSize > MaxAvgSize {
		return Parameters{}, fmt.Errorf("%w: average size %d is out of range [%d, %d]", ErrInvalidParameters, avgSize, MinAvgSize, MaxAvgSize)
	}

	minSize := avgSize / 4
	offset := minSize + (minSize+1)/2

	bits := int(math.Round(math.Log2(float64(avgSize))))

	return Parameters{
		MinSize:    minSize,
		MaxSize:    avgSize * 8,
		CenterSize: avgSize - offset,
		MaskSmall:  uint32(1)<<(bits+1) - 1,
		MaskLarge:  uint32(1)<<(bits-1) - 1,
	}, nil
}

// String implements fmt.Stringer.
func (p Parameters) String() string {
	return fmt.Sprintf("min=%d center=%d max=%d mask_small=%#x mask_large=%#x", p.MinSize, p.CenterSize, p.MaxSize, p.MaskSmall, p.MaskLarge)
}
