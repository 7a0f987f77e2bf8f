// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultIOChunkSize is the default number of bytes requested per ByteSource read.
const DefaultIOChunkSize = 262144

// Options defines settings for Stream.
type Options struct {
	Logger *zap.Logger

	IOChunkSize     int
	InitialCapacity int

	UTF32 bool
}

// defaultOptions returns default initial values.
func defaultOptions() Options {
	return Options{
		IOChunkSize: DefaultIOChunkSize,
		Logger:      zap.NewNop(),
	}
}

// alignment returns the cut point alignment implied by the options.
func (o Options) alignment() int {
	if o.UTF32 {
		return UTF32Alignment
	}

	return 1
}

// OptionFunc allows setting Stream options.
type OptionFunc func(*Options) error

// WithIOChunkSize sets the number of bytes requested from the source per read.
func WithIOChunkSize(size int) OptionFunc {
	return func(opt *Options) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidIOChunkSize, size)
		}

		opt.IOChunkSize = size

		return nil
	}
}

// WithInitialCapacity sets initial window capacity.
//
// The window grows on demand, by default it starts at the io chunk size.
func WithInitialCapacity(capacity int) OptionFunc {
	return func(opt *Options) error {
		if capacity <= 0 {
			return fmt.Errorf("initial capacity should be positive: %d", capacity)
		}

		opt.InitialCapacity = capacity

		return nil
	}
}

// WithUTF32 rounds every cut point down to a 4-byte boundary, so UTF-32
// encoded text is never split inside a code unit.
func WithUTF32(enabled bool) OptionFunc {
	return func(opt *Options) error {
		opt.UTF32 = enabled

		return nil
	}
}

// WithLogger sets logger for Stream.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opt *Options) error {
		if logger == nil {
			logger = zap.NewNop()
		}

		opt.Logger = logger

		return nil
	}
}
