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
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
)

// TestWriteContigsFastaWrapping is spec.md §8 scenario 6: a
// 130-character contig wraps into 60/60/10-length body lines, after a
// single header line.
func TestWriteContigsFastaWrapping(t *testing.T) {
	seq := strings.Repeat("A", 130)
	contigs := []Contig{{N: 1, Sequence: seq}}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.fa")
	if err := WriteContigsFasta(path, contigs); err != nil {
		t.Fatalf("WriteContigsFasta: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan output: %v", err)
	}

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (1 header + 3 body): %v", len(lines), lines)
	}
	if want := ">contig_1_len_130"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	wantLens := []int{60, 60, 10}
	for i, want := range wantLens {
		if got := len(lines[i+1]); got != want {
			t.Errorf("body line %d length = %d, want %d", i+1, got, want)
		}
	}
}

func TestWriteContigsFastaMultipleRecords(t *testing.T) {
	contigs := []Contig{
		{N: 1, Sequence: "ATGGCA"},
		{N: 2, Sequence: "TTTT"},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.fa")
	if err := WriteContigsFasta(path, contigs); err != nil {
		t.Fatalf("WriteContigsFasta: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := ">contig_1_len_6\nATGGCA\n>contig_2_len_4\nTTTT\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

// TestWriteContigsFastaGzip covers the pgzip-backed path taken for a
// ".gz"-suffixed output file.
func TestWriteContigsFastaGzip(t *testing.T) {
	contigs := []Contig{{N: 1, Sequence: "ATGGCA"}}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.fa.gz")
	if err := WriteContigsFasta(path, contigs); err != nil {
		t.Fatalf("WriteContigsFasta: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer gr.Close()

	sc := bufio.NewScanner(gr)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan decompressed output: %v", err)
	}

	want := []string{">contig_1_len_6", "ATGGCA"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
