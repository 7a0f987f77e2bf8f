// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

import (
	"errors"
	"io"
)

// ByteSource is the input of a Stream.
//
// Read returns between 0 and n bytes in stream order. An empty result
// signals the end of the stream. The returned slice only needs to stay
// valid until the next call to Read.
type ByteSource interface {
	Read(n int) ([]byte, error)
}

// maxEmptyReads is the number of consecutive (0, nil) reads tolerated before giving up.
const maxEmptyReads = 100

// ReaderSource adapts io.Reader to ByteSource.
//
// Each read keeps reading from the underlying reader until n bytes are
// collected or the reader is exhausted.
type ReaderSource struct {
	r   io.Reader
	buf []byte
	eof bool
}

// NewReaderSource creates a ByteSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		r: r,
	}
}

// Read implements ByteSource.
//
// The returned slice is reused by the next call.
func (s *ReaderSource) Read(n int) ([]byte, error) {
	if s.eof || n <= 0 {
		return nil, nil
	}

	if cap(s.buf) < n {
		s.buf = make([]byte, n)
	}

	m, empty := 0, 0

	for m < n {
		nn, err := s.r.Read(s.buf[m:n])
		m += nn

		if nn == 0 && err == nil {
			empty++

			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}

			continue
		}

		empty = 0

		if errors.Is(err, io.EOF) {
			s.eof = true

			break
		}

		if err != nil {
			return nil, err
		}
	}

	return s.buf[:m], nil
}

// BytesSource is a ByteSource over an in-memory buffer.
type BytesSource struct {
	data []byte
}

// NewBytesSource creates a ByteSource returning data.
//
// data is not copied and should not be modified while the source is in use.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{
		data: data,
	}
}

// Read implements ByteSource.
func (s *BytesSource) Read(n int) ([]byte, error) {
	n = max(min(n, len(s.data)), 0)

	p := s.data[:n:n]
	s.data = s.data[n:]

	return p, nil
}

// Len returns the number of bytes not read yet.
func (s *BytesSource) Len() int {
	return len(s.data)
}
