// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package dbgasm

import "testing"

func TestPutUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 255, 256, 1 << 16, 1 << 32, 1<<64 - 1}
	for _, x := range cases {
		var buf [8]byte
		n := putUvarint(buf[:], x)
		got := uvarint(buf[:n], n)
		if got != x {
			t.Errorf("putUvarint/uvarint round trip for %d: got %d (n=%d)", x, got, n)
		}
	}
}

func TestPutUvarintMinimalLength(t *testing.T) {
	var buf [8]byte
	if n := putUvarint(buf[:], 0); n != 1 {
		t.Errorf("putUvarint(0) wrote %d bytes, want 1", n)
	}
	if n := putUvarint(buf[:], 1<<64-1); n != 8 {
		t.Errorf("putUvarint(max uint64) wrote %d bytes, want 8", n)
	}
}

func TestUvarintDefaultsToFullBuffer(t *testing.T) {
	var buf [4]byte
	putUvarint(buf[len(buf)-1:], 42)
	// n == 0 means "use len(buf)"; the leading zero-padding bytes must
	// not change the decoded value.
	if got := uvarint(buf[:], 0); got != 42 {
		t.Errorf("uvarint with n=0 = %d, want 42", got)
	}
}
