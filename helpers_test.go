// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-gearcdc"
)

// xorshiftData returns size reproducible pseudo-random bytes.
func xorshiftData(size int, seed uint32) []byte {
	data := make([]byte, size)
	x := seed

	for i := range data {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5

		data[i] = byte(x >> 24)
	}

	return data
}

// collect reads all chunks from the stream, copying them.
func collect(t testing.TB, s *gearcdc.Stream) [][]byte {
	t.Helper()

	var chunks [][]byte

	for {
		chunk, err := s.Next()
		if errors.Is(err, io.EOF) {
			return chunks
		}

		require.NoError(t, err)

		chunks = append(chunks, append([]byte(nil), chunk...))
	}
}

// boundaries returns the chunk end offsets of data.
func boundaries(t testing.TB, data []byte, avgSize int, opts ...gearcdc.OptionFunc) []int64 {
	t.Helper()

	offsets, err := gearcdc.Boundaries(gearcdc.NewBytesSource(data), avgSize, opts...)
	require.NoError(t, err)

	return offsets
}
