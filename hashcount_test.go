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

// TestAddReadFastMatchesAddRead asserts the hashed batching path produces
// exactly the same counts as the plain position-by-position counter,
// including on a read with repeated k-mers (a homopolymer run), which is
// the case the batching exists to speed up.
func TestAddReadFastMatchesAddRead(t *testing.T) {
	const read = "ATGGCATGGCAAAAA"
	const k = 3

	slow, err := NewKmerSet(k)
	if err != nil {
		t.Fatalf("NewKmerSet: %v", err)
	}
	slow.AddRead(read)

	fast, err := NewKmerSet(k)
	if err != nil {
		t.Fatalf("NewKmerSet: %v", err)
	}
	if err := AddReadFast(fast, read); err != nil {
		t.Fatalf("AddReadFast: %v", err)
	}

	if slow.Len() != fast.Len() {
		t.Fatalf("distinct k-mer count differs: slow=%d fast=%d", slow.Len(), fast.Len())
	}
	for _, kmer := range slow.Keys() {
		if slow.Count(kmer) != fast.Count(kmer) {
			t.Errorf("count for %q: slow=%d fast=%d", kmer, slow.Count(kmer), fast.Count(kmer))
		}
	}
}

func TestAddReadFastShortRead(t *testing.T) {
	ks, err := NewKmerSet(5)
	if err != nil {
		t.Fatalf("NewKmerSet: %v", err)
	}
	if err := AddReadFast(ks, "ACG"); err != nil {
		t.Fatalf("AddReadFast on a too-short read returned an error: %v", err)
	}
	if ks.Len() != 0 {
		t.Errorf("expected no k-mers added from a read shorter than k, got %d", ks.Len())
	}
}
