// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	req := require.New(t)

	w := newWindow(8)

	w.Write(nil)
	req.Equal(0, w.Len())

	w.Write([]byte("abcdef"))
	req.Equal(6, w.Len())
	req.Equal(8, w.Capacity())

	req.Equal([]byte("abcd"), w.Consume(4))
	req.Equal([]byte("ef"), w.Bytes())

	// fits after compaction, no growth
	w.Write([]byte("ghijkl"))
	req.Equal(8, w.Capacity())
	req.Equal([]byte("efghijkl"), w.Bytes())

	// doesn't fit, grows by doubling
	w.Write([]byte("mnopqrstu"))
	req.Equal(32, w.Capacity())
	req.Equal([]byte("efghijklmnopqrstu"), w.Bytes())

	req.Equal([]byte("efghijklmnopqrstu"), w.Consume(17))
	req.Equal(0, w.Len())

	w.Write([]byte("v"))
	req.Equal([]byte("v"), w.Bytes())
	req.Equal(32, w.Capacity())
}

func TestWindowConsumedChunkIsCapped(t *testing.T) {
	t.Parallel()

	w := newWindow(16)
	w.Write([]byte("0123456789"))

	chunk := w.Consume(4)

	// appending to a returned chunk must not clobber the window
	_ = append(chunk, 'x')

	require.Equal(t, []byte("456789"), w.Bytes())
}
