// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

import "fmt"

// UTF32Alignment keeps cut points on UTF-32 code unit boundaries.
const UTF32Alignment = 4

// FindCutPoint returns the length of the next chunk at the start of buf.
//
// The search skips the first MinSize bytes, looks for a MaskSmall match up to
// CenterSize and then for a MaskLarge match up to MaxSize. Without a match the
// cut falls on MaxSize or on the end of buf, whichever comes first, so buf
// must hold at least MaxSize bytes unless it is the tail of the input.
//
// With alignment greater than one the cut is rounded down to a multiple of it;
// ErrDegenerateAlignment is returned if that leaves nothing to cut.
func FindCutPoint(buf []byte, p Parameters, alignment int) (int, error) {
	cut := findCutPoint(buf, p)

	if alignment > 1 {
		cut -= cut % alignment

		if cut == 0 {
			return 0, fmt.Errorf("%w: %d bytes available, alignment %d", ErrDegenerateAlignment, len(buf), alignment)
		}
	}

	return cut, nil
}

func findCutPoint(buf []byte, p Parameters) int {
	if len(buf) <= p.MinSize {
		return len(buf)
	}

	var pattern uint32

	i := p.MinSize

	barrier := min(p.CenterSize, len(buf))
	for ; i < barrier; i++ {
		pattern = (pattern >> 1) + GearTable[buf[i]]
		if pattern&p.MaskSmall == 0 {
			return i + 1
		}
	}

	barrier = min(p.MaxSize, len(buf))
	for ; i < barrier; i++ {
		pattern = (pattern >> 1) + GearTable[buf[i]]
		if pattern&p.MaskLarge == 0 {
			return i + 1
		}
	}

	return i
}
