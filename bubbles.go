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

// bubbleArm describes one candidate path out of a branch point that
// reconverges at a single-successor node.
type bubbleArm struct {
	path           []string
	convergesAt    string
	convergesFound bool
}

// FindAllBubbles walks every branch point (out-degree >= 2) of g and
// looks for pairs of arms that reconverge at the same node through a
// single successor edge - the simple-bubble shape spec.md §4.G
// describes. An arm whose length exceeds threshold is not considered
// (spec.md §4.G's edge policy), so its branch is left untouched even if
// it would otherwise reconverge with a shorter sibling. For each
// convergence point reached by more than one eligible arm, every arm
// after the first (sorted-snapshot successor order, mirroring the
// bubble arm tie-break of DBG_V3.py's `remove_bubbles`) is reported as
// a bubble path running branch-node -> arm -> convergence-node.
func FindAllBubbles(g *Graph, ks *KmerSet, threshold int) [][]string {
	var bubbles [][]string

	for _, node := range g.Nodes() {
		succs := g.Successors(node)
		if len(succs) < 2 {
			continue
		}

		convergence := make(map[string]bool, len(succs))
		for _, su := range succs {
			arm := g.SimplePath(ks, su)
			if len(arm) == 0 || len(arm) > threshold {
				continue
			}
			last := arm[len(arm)-1]
			nexts := g.Successors(last)
			if len(nexts) != 1 {
				continue
			}
			target := nexts[0]

			if !convergence[target] {
				convergence[target] = true
				continue
			}

			full := make([]string, 0, len(arm)+2)
			full = append(full, node)
			full = append(full, arm...)
			full = append(full, target)
			bubbles = append(bubbles, full)
		}
	}

	return bubbles
}

// RemoveBubbles deletes every k-mer backing a detected bubble arm from
// ks, then rebuilds g. It is equivalent to DBG_V3.py's `remove_bubbles`:
// the first arm into any convergence point is always kept, every later
// arm into that same point is assembled and its k-mers dropped.
func RemoveBubbles(g *Graph, ks *KmerSet, threshold int) {
	bubbles := FindAllBubbles(g, ks, threshold)
	k := ks.K
	for _, path := range bubbles {
		sequence := AssembleSequence(path)
		for i := 0; i+k <= len(sequence); i++ {
			ks.Delete(sequence[i : i+k])
		}
	}
	g.Rebuild(ks)
}
