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

// nodeID is a dense identifier for a (k-1)-mer node, interned once per
// NewGraph/Rebuild. This is the "arena-plus-index" translation of the
// string-keyed adjacency maps the original implementation uses:
// identity is the index into names, not the string itself.
type nodeID int32

// Graph holds the forward (G+) and reverse (G-) adjacency indexes
// derived from a KmerSet. It is always a derived view: NewGraph/Rebuild
// regenerate it entirely from the current state of M, which is the
// simplest way to keep invariants I1-I4 after any mutation.
type Graph struct {
	ids   map[string]nodeID
	names []string
	succ  [][]nodeID
	pred  [][]nodeID
}

// NewGraph builds a Graph from ks.
func NewGraph(ks *KmerSet) *Graph {
	g := &Graph{}
	g.Rebuild(ks)
	return g
}

// Rebuild clears the graph and repopulates it from the current contents
// of ks, in ks.Keys() (sorted) order, so that successor/predecessor
// lists are built in a deterministic, reproducible order across runs.
func (g *Graph) Rebuild(ks *KmerSet) {
	keys := ks.Keys()

	g.ids = make(map[string]nodeID, len(keys)*2)
	g.names = g.names[:0]
	g.succ = g.succ[:0]
	g.pred = g.pred[:0]

	intern := func(s string) nodeID {
		if id, ok := g.ids[s]; ok {
			return id
		}
		id := nodeID(len(g.names))
		g.ids[s] = id
		g.names = append(g.names, s)
		g.succ = append(g.succ, nil)
		g.pred = append(g.pred, nil)
		return id
	}

	for _, kmer := range keys {
		prefix, suffix := ks.Prefix(kmer), ks.Suffix(kmer)
		p, s := intern(prefix), intern(suffix)
		g.succ[p] = append(g.succ[p], s)
		g.pred[s] = append(g.pred[s], p)
	}
}

// HasNode reports whether node currently appears in the graph.
func (g *Graph) HasNode(node string) bool {
	_, ok := g.ids[node]
	return ok
}

// Successors returns the ordered list of successor nodes of node (empty
// if node has no outgoing edges or is not present).
func (g *Graph) Successors(node string) []string {
	id, ok := g.ids[node]
	if !ok {
		return nil
	}
	return g.names2(g.succ[id])
}

// Predecessors returns the ordered list of predecessor nodes of node.
func (g *Graph) Predecessors(node string) []string {
	id, ok := g.ids[node]
	if !ok {
		return nil
	}
	return g.names2(g.pred[id])
}

func (g *Graph) names2(ids []nodeID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.names[id]
	}
	return out
}

// Nodes returns every interned node string, in the order nodes were
// first seen while building the graph (sorted-kmer insertion order).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}
