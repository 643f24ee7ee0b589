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

// isTip reports whether path is short enough (< threshold) and ends at
// a node with no successors - a dead end.
func isTip(g *Graph, path []string, threshold int) bool {
	if len(path) == 0 || len(path) >= threshold {
		return false
	}
	return len(g.Successors(path[len(path)-1])) == 0
}

// FindAllTips enumerates every tip in g under threshold, following
// spec.md §4.F: candidate seeds are nodes with no predecessor, plus
// branch-rooted dead-end arms hanging off nodes with out-degree > 1.
//
// When every successor of a branch point is itself a short dead end
// (so no arm would otherwise survive to keep the branch connected),
// the first arm - by the order its k-mer was first inserted while
// building the graph from a sorted M snapshot - is kept and only the
// remaining arms are reported as tips. This is the deterministic rule
// spec.md §9 calls for to resolve the original's ambiguity; it is what
// makes spec.md §8 scenario 2 (branch GG -> {GA, GT}, both dead ends)
// remove only one arm instead of orphaning the branch entirely.
func FindAllTips(g *Graph, ks *KmerSet, threshold int) [][]string {
	visited := make(map[string]struct{})
	var tips [][]string

	mark := func(path []string) {
		for _, n := range path {
			visited[n] = struct{}{}
		}
	}

	nodes := g.Nodes()

	// 1. orphan seeds: nodes with no predecessor.
	for _, node := range nodes {
		if _, seen := visited[node]; seen {
			continue
		}
		if len(g.Predecessors(node)) != 0 {
			continue
		}
		path := g.SimplePath(ks, node)
		if isTip(g, path, threshold) {
			tips = append(tips, path)
			mark(path)
		}
	}

	// 2. branch-rooted dead ends.
	for _, b := range nodes {
		succs := g.Successors(b)
		if len(succs) < 2 {
			continue
		}

		type arm struct {
			path []string
		}
		var candidates []arm
		considered := 0
		for _, su := range succs {
			if _, seen := visited[su]; seen {
				continue
			}
			considered++
			path := g.SimplePath(ks, su)
			if isTip(g, path, threshold) {
				candidates = append(candidates, arm{path})
			}
		}
		if len(candidates) == 0 {
			continue
		}
		start := 0
		if len(candidates) == considered {
			// every still-live arm is a dead end: keep the first one.
			start = 1
		}
		for _, a := range candidates[start:] {
			full := make([]string, 0, len(a.path)+1)
			full = append(full, b)
			full = append(full, a.path...)
			tips = append(tips, full)
			mark(a.path)
		}
	}

	return tips
}

// RemoveTips deletes every k-mer backing a detected tip from ks, then
// rebuilds g from the reduced ks so invariants I1-I4 hold again.
func RemoveTips(g *Graph, ks *KmerSet, threshold int) {
	tips := FindAllTips(g, ks, threshold)
	k := ks.K
	for _, path := range tips {
		sequence := AssembleSequence(path)
		for i := 0; i+k <= len(sequence); i++ {
			ks.Delete(sequence[i : i+k])
		}
	}
	g.Rebuild(ks)
}
