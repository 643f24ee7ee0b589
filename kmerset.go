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

import "sort"

// KmerSet is the k-mer multiset M: a mapping from k-mer string to its
// (positive) count. It is string-keyed rather than 2-bit packed because
// spec'd behavior requires non-ACGT k-mers to survive counting and
// filtering unchanged, which a packed encoding (lossy for IUPAC
// degenerate bases) cannot represent faithfully.
type KmerSet struct {
	K int
	m map[string]uint64
}

// NewKmerSet returns an empty KmerSet for k-mers of length k (k >= 2).
func NewKmerSet(k int) (*KmerSet, error) {
	if k < 2 {
		return nil, ErrInvalidParameter
	}
	return &KmerSet{K: k, m: make(map[string]uint64, 1<<16)}, nil
}

// AddRead counts every overlapping k-mer of read. Reads shorter than k
// contribute nothing.
func (ks *KmerSet) AddRead(read string) {
	l := len(read)
	k := ks.K
	if l < k {
		return
	}
	for i := 0; i+k <= l; i++ {
		ks.m[read[i:i+k]]++
	}
}

// Add increments the count of a single k-mer by delta. It is the caller's
// responsibility to ensure len(kmer) == ks.K.
func (ks *KmerSet) Add(kmer string, delta uint64) {
	ks.m[kmer] += delta
}

// Count returns the current count of kmer, or 0 if absent.
func (ks *KmerSet) Count(kmer string) uint64 {
	return ks.m[kmer]
}

// Has reports whether kmer is currently in the set.
func (ks *KmerSet) Has(kmer string) bool {
	_, ok := ks.m[kmer]
	return ok
}

// Delete removes kmer from the set, if present.
func (ks *KmerSet) Delete(kmer string) {
	delete(ks.m, kmer)
}

// Len returns the number of distinct k-mers.
func (ks *KmerSet) Len() int {
	return len(ks.m)
}

// Keys returns a sorted (lexicographic) snapshot of the currently present
// k-mers. Sorting gives deterministic, reproducible downstream traversal
// order (SPEC_FULL.md §5) instead of relying on Go's randomized map
// iteration order.
func (ks *KmerSet) Keys() []string {
	keys := make([]string, 0, len(ks.m))
	for kmer := range ks.m {
		keys = append(keys, kmer)
	}
	sort.Strings(keys)
	return keys
}

// Filter returns a new KmerSet containing only the entries of ks whose
// count is >= threshold. It is a pure function: ks is left untouched.
func (ks *KmerSet) Filter(threshold uint64) *KmerSet {
	if threshold < 1 {
		threshold = 1
	}
	out := &KmerSet{K: ks.K, m: make(map[string]uint64, len(ks.m))}
	for kmer, count := range ks.m {
		if count >= threshold {
			out.m[kmer] = count
		}
	}
	return out
}

// Prefix returns the (k-1)-length prefix of a k-mer.
func (ks *KmerSet) Prefix(kmer string) string {
	return kmer[:ks.K-1]
}

// Suffix returns the (k-1)-length suffix of a k-mer.
func (ks *KmerSet) Suffix(kmer string) string {
	return kmer[1:]
}
