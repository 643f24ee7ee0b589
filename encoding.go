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

// encodeACGT 2-bit packs a pure-ACGT k-mer (len <= 32) into a uint64,
// the same scheme as the teacher's Encode, minus the lossy degenerate-
// base folding: any non-ACGT byte is rejected outright rather than
// silently mapped onto A, since dump.go must never lose information
// that kmerset.go promises to keep distinct.
func encodeACGT(kmer string) (code uint64, ok bool) {
	if len(kmer) == 0 || len(kmer) > 32 {
		return 0, false
	}
	for i := 0; i < len(kmer); i++ {
		code <<= 2
		switch kmer[i] {
		case 'A':
			code |= 0
		case 'C':
			code |= 1
		case 'G':
			code |= 2
		case 'T':
			code |= 3
		default:
			return 0, false
		}
	}
	return code, true
}

var acgt = [4]byte{'A', 'C', 'G', 'T'}

// decodeACGT reverses encodeACGT for a k-mer of length k.
func decodeACGT(code uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = acgt[code&3]
		code >>= 2
	}
	return string(buf)
}
