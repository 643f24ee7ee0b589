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

import (
	"fmt"
	"strings"
)

// Default thresholds from spec.md §6's CLI surface: -tt and -bt.
const (
	DefaultTipThreshold    = 3
	DefaultBubbleThreshold = 50
)

// Contig is one assembled sequence, numbered in emission order.
type Contig struct {
	N        int
	Sequence string
}

// Name renders the FASTA header spec.md §4.H specifies:
// ">contig_{n}_len_{len}".
func (c Contig) Name() string {
	return fmt.Sprintf("contig_%d_len_%d", c.N, len(c.Sequence))
}

// Assembler drives the simplify-then-emit pipeline: tip removal, bubble
// removal, and exactly-once contig extraction from the reduced graph.
// It mirrors DBG_V3.py's `get_all_contigs` orchestration.
type Assembler struct {
	TipThreshold    int
	BubbleThreshold int
}

// NewAssembler returns an Assembler using tipThreshold for tip removal
// and bubbleThreshold as the maximum arm length bubble removal will
// consider (spec.md §4.G's default is 50).
func NewAssembler(tipThreshold, bubbleThreshold int) *Assembler {
	return &Assembler{TipThreshold: tipThreshold, BubbleThreshold: bubbleThreshold}
}

// Assemble simplifies ks/g in place (tips, then bubbles) and extracts
// every remaining contig. Per spec.md I5, each surviving k-mer backs
// exactly one emitted contig: the walk takes a sorted snapshot of the
// k-mers still present before emission begins, and as each contig is
// assembled every k-mer it consumes is deleted from ks immediately, so
// a later start_kmer in the same snapshot that was already consumed by
// an earlier contig is silently skipped. A path that would take the same
// edge twice (a pure cycle) is cut before the repeated edge, and a start
// k-mer that is not an edge of the simple path through its prefix (it
// leaves a branching node) is emitted as a contig on its own.
func (a *Assembler) Assemble(g *Graph, ks *KmerSet) []Contig {
	RemoveTips(g, ks, a.TipThreshold)
	RemoveBubbles(g, ks, a.BubbleThreshold)

	var contigs []Contig
	n := 0
	for _, startKmer := range ks.Keys() {
		if !ks.Has(startKmer) {
			continue
		}
		startNode := ks.Prefix(startKmer)
		path := g.SimplePath(ks, startNode)
		if len(path) == 0 {
			continue
		}
		used := make(map[string]struct{}, len(path))
		for i := 1; i < len(path); i++ {
			edge := path[i-1] + path[i][len(path[i])-1:]
			if _, dup := used[edge]; dup {
				path = path[:i]
				break
			}
			used[edge] = struct{}{}
		}
		sequence := AssembleSequence(path)
		if !strings.Contains(sequence, startKmer) {
			sequence = startKmer
		}

		k := ks.K
		for i := 0; i+k <= len(sequence); i++ {
			ks.Delete(sequence[i : i+k])
		}

		n++
		contigs = append(contigs, Contig{N: n, Sequence: sequence})
	}

	return contigs
}
