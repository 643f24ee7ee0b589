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

// ExtendForward walks from s while the current node has exactly one
// successor, that successor has exactly one predecessor, and that
// predecessor is the current node. It stops on the first violation, on
// revisiting a node already on the path (cycle guard), or when the edge
// it's about to take no longer corresponds to a k-mer in ks. The
// returned path always begins with s.
func (g *Graph) ExtendForward(ks *KmerSet, s string) []string {
	path := []string{s}
	visited := map[string]struct{}{s: {}}
	current := s

	for {
		succs := g.Successors(current)
		if len(succs) != 1 {
			break
		}
		next := succs[0]

		preds := g.Predecessors(next)
		if len(preds) != 1 || preds[0] != current {
			break
		}

		if _, seen := visited[next]; seen {
			break
		}

		if !ks.Has(current + next[len(next)-1:]) {
			break
		}

		path = append(path, next)
		visited[next] = struct{}{}
		current = next
	}

	return path
}

// ExtendBackward is the symmetric walk over predecessors. It does not
// include s itself; the returned nodes are in forward (root-to-s) order.
func (g *Graph) ExtendBackward(ks *KmerSet, s string) []string {
	var rev []string
	visited := map[string]struct{}{s: {}}
	current := s

	for {
		preds := g.Predecessors(current)
		if len(preds) != 1 {
			break
		}
		pred := preds[0]

		succs := g.Successors(pred)
		if len(succs) != 1 || succs[0] != current {
			break
		}

		if _, seen := visited[pred]; seen {
			break
		}

		if !ks.Has(pred + current[len(current)-1:]) {
			break
		}

		rev = append(rev, pred)
		visited[pred] = struct{}{}
		current = pred
	}

	// rev was accumulated root-ward (closest predecessor first); reverse
	// it so the result reads start-to-s.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// SimplePath returns the maximal non-branching path through s:
// ExtendBackward(s) followed by ExtendForward(s). It returns an empty
// slice only when s is not a node of g.
func (g *Graph) SimplePath(ks *KmerSet, s string) []string {
	if !g.HasNode(s) {
		return nil
	}
	backward := g.ExtendBackward(ks, s)
	forward := g.ExtendForward(ks, s)
	path := make([]string, 0, len(backward)+len(forward))
	path = append(path, backward...)
	path = append(path, forward...)
	return path
}

// AssembleSequence concatenates path[0] with the last character of every
// subsequent node, reconstructing the contig the path represents.
func AssembleSequence(path []string) string {
	if len(path) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(path[0])+len(path)-1)
	buf = append(buf, path[0]...)
	for _, node := range path[1:] {
		buf = append(buf, node[len(node)-1])
	}
	return string(buf)
}
