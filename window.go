// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gearcdc

// window holds the unconsumed part of the input.
//
// Consumed bytes stay in place until a write needs the room, then the
// remaining tail is moved to the front or the backing array is grown.
type window struct {
	data []byte

	// unconsumed bytes are data[start:end]
	start, end int
}

func newWindow(capacity int) window {
	return window{
		data: make([]byte, capacity),
	}
}

// Len returns the number of unconsumed bytes.
func (w *window) Len() int {
	return w.end - w.start
}

// Bytes returns the unconsumed bytes, valid until the next Write.
func (w *window) Bytes() []byte {
	return w.data[w.start:w.end]
}

// Write appends p to the window.
func (w *window) Write(p []byte) {
	l := len(p)
	if l == 0 {
		return
	}

	if w.end+l > len(w.data) {
		n := w.Len()

		if n+l <= len(w.data) {
			// enough room once the consumed prefix is dropped
			copy(w.data, w.data[w.start:w.end])
		} else {
			size := max(len(w.data)*2, 1)
			for size < n+l {
				size *= 2
			}

			data := make([]byte, size)
			copy(data, w.data[w.start:w.end])
			w.data = data
		}

		w.start, w.end = 0, n
	}

	copy(w.data[w.end:], p)
	w.end += l
}

// Consume drops the first n unconsumed bytes and returns them.
//
// The returned slice stays valid until the next Write.
func (w *window) Consume(n int) []byte {
	p := w.data[w.start : w.start+n : w.start+n]

	w.start += n

	return p
}

// Capacity returns number of bytes allocated for the window.
func (w *window) Capacity() int {
	return len(w.data)
}
