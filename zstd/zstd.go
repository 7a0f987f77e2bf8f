// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package zstd provides a chunking source over zstd-compressed input.
package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/siderolabs/go-gearcdc"
)

// Source implements gearcdc.ByteSource returning the decompressed contents of a zstd stream.
//
// Source should be closed to release the decoder.
type Source struct {
	dec *zstd.Decoder
	src *gearcdc.ReaderSource
}

// NewSource creates a Source decompressing r.
func NewSource(r io.Reader, opts ...zstd.DOption) (*Source, error) {
	dec, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, err
	}

	return &Source{
		dec: dec,
		src: gearcdc.NewReaderSource(dec),
	}, nil
}

// Read implements gearcdc.ByteSource.
func (s *Source) Read(n int) ([]byte, error) {
	return s.src.Read(n)
}

// Close releases the decoder.
func (s *Source) Close() error {
	s.dec.Close()

	return nil
}

// Compress encodes data as a single zstd frame.
//
// Compress is a helper to produce input for Source.
func Compress(data []byte, opts ...zstd.EOption) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, err
	}

	defer enc.Close() //nolint:errcheck

	return enc.EncodeAll(data, nil), nil
}
