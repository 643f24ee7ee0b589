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

import "github.com/will-rowe/nthash"

// hashBucket batches one distinct k-mer's within-read occurrences
// before they are folded into a KmerSet, so a read with repeated
// k-mers (homopolymer runs, short tandem repeats) touches ks.m once
// per distinct k-mer instead of once per position.
type hashBucket struct {
	kmer  string
	count uint64
}

// AddReadFast counts every overlapping k-mer of read the same way
// KmerSet.AddRead does, but uses an ntHash rolling hash
// (github.com/will-rowe/nthash, as sketch.go uses for MinHash sketching)
// to group repeated occurrences of the same k-mer within read before a
// single ks.Add call per distinct k-mer, rather than one map mutation
// per position. A hash collision (two different k-mers sharing a
// code) is resolved by exact string comparison and falls back to its
// own bucket, so counting exactness never depends on the hash alone -
// this only changes how many times ks's map is touched, never what it
// ends up containing.
func AddReadFast(ks *KmerSet, read string) error {
	k := ks.K
	l := len(read)
	if l < k {
		return nil
	}

	seq := []byte(read)
	hasher, err := nthash.NewHasher(&seq, uint(k))
	if err != nil {
		return err
	}

	buckets := make(map[uint64][]hashBucket, l-k+1)
	for i := 0; i+k <= l; i++ {
		code, ok := hasher.Next(false)
		if !ok {
			break
		}
		mer := read[i : i+k]

		bucket := buckets[code]
		found := false
		for j := range bucket {
			if bucket[j].kmer == mer {
				bucket[j].count++
				found = true
				break
			}
		}
		if !found {
			buckets[code] = append(bucket, hashBucket{kmer: mer, count: 1})
		}
	}

	for _, bucket := range buckets {
		for _, b := range bucket {
			ks.Add(b.kmer, b.count)
		}
	}
	return nil
}
