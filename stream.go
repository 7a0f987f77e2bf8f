// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package gearcdc splits byte streams into content-defined chunks.
//
// Chunk boundaries are picked by a rolling gear hash with normalized
// chunking, so an edit in the input only moves the boundaries around it.
package gearcdc

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"
)

// Stream produces chunks from a ByteSource.
//
// Stream is not safe for concurrent use, but any number of streams
// can run concurrently. A Stream can't be restarted.
type Stream struct {
	src ByteSource

	// sticky error, io.EOF once all chunks were returned
	err error

	opt Options

	win window

	params Parameters

	// number of bytes returned in chunks so far
	off int64

	numChunks int

	started bool
	eof     bool
}

// NewStream creates a Stream with thresholds derived from avgSize.
func NewStream(src ByteSource, avgSize int, opts ...OptionFunc) (*Stream, error) {
	params, err := NewParameters(avgSize)
	if err != nil {
		return nil, err
	}

	return NewStreamWithParameters(src, params, opts...)
}

// NewStreamWithParameters creates a Stream using previously derived thresholds.
func NewStreamWithParameters(src ByteSource, params Parameters, opts ...OptionFunc) (*Stream, error) {
	s := &Stream{
		src:    src,
		params: params,
		opt:    defaultOptions(),
	}

	for _, o := range opts {
		if err := o(&s.opt); err != nil {
			return nil, err
		}
	}

	if alignment := s.opt.alignment(); params.MinSize+1 < alignment {
		return nil, fmt.Errorf("%w: min size %d is too small for alignment %d", ErrInvalidParameters, params.MinSize, alignment)
	}

	capacity := s.opt.InitialCapacity
	if capacity == 0 {
		capacity = s.opt.IOChunkSize
	}

	s.win = newWindow(capacity)

	return s, nil
}

// Next returns the next chunk.
//
// Next returns io.EOF once the source is exhausted and every chunk was returned.
// Empty input produces a single empty chunk. Any other error is final and
// is returned by all subsequent calls.
//
// The returned slice is only valid until the next call to Next.
func (s *Stream) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	if err := s.fill(); err != nil {
		s.err = err

		return nil, err
	}

	if !s.started {
		s.started = true

		s.opt.Logger.Debug("chunking started",
			zap.Stringer("params", s.params),
			zap.Int("io_chunk_size", s.opt.IOChunkSize),
			zap.Bool("utf32", s.opt.UTF32),
		)

		if s.win.Len() == 0 {
			s.numChunks++

			return []byte{}, nil
		}
	}

	if s.win.Len() == 0 {
		s.err = io.EOF

		s.opt.Logger.Debug("chunking finished",
			zap.Int("num_chunks", s.numChunks),
			zap.Int64("total_bytes", s.off),
			zap.Int("window_capacity", s.win.Capacity()),
		)

		return nil, s.err
	}

	cut, err := FindCutPoint(s.win.Bytes(), s.params, s.opt.alignment())
	if err != nil {
		s.err = fmt.Errorf("failed to find cut point at offset %d: %w", s.off, err)

		return nil, s.err
	}

	s.off += int64(cut)
	s.numChunks++

	return s.win.Consume(cut), nil
}

// fill reads from the source until the window holds more than MaxSize
// bytes or the source is exhausted.
func (s *Stream) fill() error {
	for !s.eof && s.win.Len() <= s.params.MaxSize {
		p, err := s.src.Read(s.opt.IOChunkSize)
		if err != nil {
			return fmt.Errorf("failed to read source at offset %d: %w", s.off+int64(s.win.Len()), err)
		}

		if len(p) == 0 {
			s.eof = true

			s.opt.Logger.Debug("source exhausted", zap.Int64("offset", s.off+int64(s.win.Len())))

			break
		}

		s.win.Write(p)
	}

	return nil
}

// All returns an iterator over the remaining chunks.
//
// Iteration stops after the last chunk or after yielding the first error.
func (s *Stream) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			chunk, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(chunk, err) || err != nil {
				return
			}
		}
	}
}

// Offset returns the number of bytes returned in chunks so far.
func (s *Stream) Offset() int64 {
	return s.off
}

// NumChunks returns the number of chunks returned so far.
func (s *Stream) NumChunks() int {
	return s.numChunks
}

// Parameters returns the chunking thresholds in use.
func (s *Stream) Parameters() Parameters {
	return s.params
}

// ProduceChunks returns an iterator over the chunks of src.
//
// Invalid options or parameters are reported as the first and only error.
func ProduceChunks(src ByteSource, avgSize int, opts ...OptionFunc) iter.Seq2[[]byte, error] {
	s, err := NewStream(src, avgSize, opts...)
	if err != nil {
		return func(yield func([]byte, error) bool) {
			yield(nil, err)
		}
	}

	return s.All()
}

// Boundaries returns the end offset of every chunk of src.
func Boundaries(src ByteSource, avgSize int, opts ...OptionFunc) ([]int64, error) {
	var (
		offsets []int64
		off     int64
	)

	for chunk, err := range ProduceChunks(src, avgSize, opts...) {
		if err != nil {
			return nil, err
		}

		off += int64(len(chunk))
		offsets = append(offsets, off)
	}

	return offsets, nil
}
