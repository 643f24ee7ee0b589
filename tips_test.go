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

// TestRemoveTipsScenario2 is spec.md §8 scenario 2: branch GG -> {GA,
// GT}, both dead ends, threshold 3. One arm is kept, the other removed,
// and the contig assembles to "ATGGA".
func TestRemoveTipsScenario2(t *testing.T) {
	ks := buildSet(t, 3, "ATG", "TGG", "GGA", "GGT")
	g := NewGraph(ks)

	RemoveTips(g, ks, 3)

	if !ks.Has("GGA") {
		t.Errorf("expected GGA to survive as the first-inserted arm")
	}
	if ks.Has("GGT") {
		t.Errorf("expected GGT to be removed as the later-inserted arm")
	}

	path := g.SimplePath(ks, "AT")
	seq := AssembleSequence(path)
	if seq != "ATGGA" {
		t.Errorf("assembled sequence = %q, want ATGGA", seq)
	}
}

// TestRemoveTipsOrphanSeed covers the no-predecessor seed case of
// spec.md §4.F: a short dead-end branch with no upstream branch point
// at all.
func TestRemoveTipsOrphanSeed(t *testing.T) {
	// AAT is an isolated 2-node dead end (AA->AT, no predecessor);
	// CGT/GTA/TAG form an unrelated 4-node chain, too long to qualify.
	ks := buildSet(t, 3, "AAT", "CGT", "GTA", "TAG")
	g := NewGraph(ks)

	tips := FindAllTips(g, ks, 3)
	if len(tips) != 1 {
		t.Fatalf("expected exactly one tip, found %d: %v", len(tips), tips)
	}
	if got := AssembleSequence(tips[0]); got != "AAT" {
		t.Errorf("tip sequence = %q, want AAT", got)
	}
}

// TestRemoveTipsIdempotent is property P6: running remove_tips twice in
// a row has no effect on the second call.
func TestRemoveTipsIdempotent(t *testing.T) {
	ks := buildSet(t, 3, "ATG", "TGG", "GGA", "GGT")
	g := NewGraph(ks)

	RemoveTips(g, ks, 3)
	before := ks.Len()

	RemoveTips(g, ks, 3)
	after := ks.Len()

	if before != after {
		t.Errorf("second RemoveTips call changed Len(): %d -> %d", before, after)
	}
}

// TestRemoveTipsNonIncreasing is property P4.
func TestRemoveTipsNonIncreasing(t *testing.T) {
	ks := buildSet(t, 3, "ATG", "TGG", "GGA", "GGT")
	g := NewGraph(ks)

	before := ks.Len()
	RemoveTips(g, ks, 3)
	after := ks.Len()

	if after > before {
		t.Errorf("RemoveTips increased Len(): %d -> %d", before, after)
	}
}

// TestFindAllTipsRespectsThreshold: branch GG has two dead-end arms,
// GT (1 node) and GA->AC (2 nodes). At threshold=2 the 2-node arm is
// exactly at the threshold boundary (not strictly shorter) and must
// not be reported, while the 1-node arm must be.
func TestFindAllTipsRespectsThreshold(t *testing.T) {
	ks := buildSet(t, 3, "ATG", "TGG", "GGA", "GAC", "GGT")
	tips := FindAllTips(NewGraph(ks), ks, 2)

	foundGT, foundGAAC := false, false
	for _, p := range tips {
		switch AssembleSequence(p) {
		case "GGT":
			foundGT = true
		case "GGAC":
			foundGAAC = true
		}
	}
	if !foundGT {
		t.Errorf("expected the short GT arm to be reported as a tip")
	}
	if foundGAAC {
		t.Errorf("the 2-node GA/AC arm should not qualify at threshold=2 (not strictly shorter)")
	}
}
