// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package zstd_test

import (
	"bytes"
	"crypto/rand"
	"io"
	"strconv"
	"testing"

	"github.com/siderolabs/gen/xtesting/must"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/siderolabs/go-gearcdc"
	"github.com/siderolabs/go-gearcdc/zstd"
)

func TestSource(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		size int
	}{
		{
			size: 0,
		},
		{
			size: 1024,
		},
		{
			size: 1024 * 1024,
		},
	} {
		t.Run(strconv.Itoa(test.size), func(t *testing.T) {
			t.Parallel()

			data, err := io.ReadAll(io.LimitReader(rand.Reader, int64(test.size)))
			require.NoError(t, err)

			compressed := must.Value(zstd.Compress(data))(t)

			src, err := zstd.NewSource(bytes.NewReader(compressed))
			require.NoError(t, err)

			t.Cleanup(func() {
				require.NoError(t, src.Close())
			})

			expected, err := gearcdc.Boundaries(gearcdc.NewBytesSource(data), 4096)
			require.NoError(t, err)

			actual, err := gearcdc.Boundaries(src, 4096, gearcdc.WithIOChunkSize(8192))
			require.NoError(t, err)

			require.Equal(t, expected, actual)
			require.EqualValues(t, len(data), actual[len(actual)-1])
		})
	}
}

func TestSourceCorrupted(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("corrupted zstd frame "), 4096)

	compressed := must.Value(zstd.Compress(data))(t)
	compressed = compressed[:len(compressed)/2]

	src, err := zstd.NewSource(bytes.NewReader(compressed))
	require.NoError(t, err)

	defer src.Close() //nolint:errcheck

	_, err = gearcdc.Boundaries(src, 1024)
	require.Error(t, err)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
