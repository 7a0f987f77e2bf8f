// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc_test

import (
	"io"
	"testing"

	"github.com/siderolabs/gen/xtesting/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-gearcdc"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	var opts gearcdc.Options

	require.NoError(t, gearcdc.WithLogger(nil)(&opts))
	assert.NotNil(t, opts.Logger)

	require.NoError(t, gearcdc.WithIOChunkSize(4096)(&opts))
	assert.Equal(t, 4096, opts.IOChunkSize)

	require.ErrorIs(t, gearcdc.WithIOChunkSize(0)(&opts), gearcdc.ErrInvalidIOChunkSize)
	require.ErrorIs(t, gearcdc.WithIOChunkSize(-1)(&opts), gearcdc.ErrInvalidIOChunkSize)
	assert.Equal(t, 4096, opts.IOChunkSize)

	require.Error(t, gearcdc.WithInitialCapacity(0)(&opts))

	require.NoError(t, gearcdc.WithUTF32(true)(&opts))
	assert.True(t, opts.UTF32)
}

func TestNilLogger(t *testing.T) {
	t.Parallel()

	s := must.Value(gearcdc.NewStream(gearcdc.NewBytesSource(make([]byte, 100)), 1024, gearcdc.WithLogger(nil)))(t)

	chunk, err := s.Next()
	require.NoError(t, err)
	assert.Len(t, chunk, 100)

	_, err = s.Next()
	require.ErrorIs(t, err, io.EOF)
}
