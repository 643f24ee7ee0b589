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

package cmd

import "testing"

func TestIsStdinStdout(t *testing.T) {
	if !isStdin("-") {
		t.Errorf(`isStdin("-") = false, want true`)
	}
	if isStdin("reads.fq") {
		t.Errorf(`isStdin("reads.fq") = true, want false`)
	}
	if !isStdout("-") {
		t.Errorf(`isStdout("-") = false, want true`)
	}
	if isStdout("out.fa") {
		t.Errorf(`isStdout("out.fa") = true, want false`)
	}
}

func TestBaseNoExt(t *testing.T) {
	cases := map[string]string{
		"reads.fq":          "reads",
		"reads.fastq":       "reads",
		"reads.fq.gz":       "reads",
		"/tmp/sample.fa.gz": "sample",
		"sample.fasta":      "sample",
		"no-known-ext.txt":  "no-known-ext.txt",
	}
	for in, want := range cases {
		if got := baseNoExt(in); got != want {
			t.Errorf("baseNoExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandPathPassthrough(t *testing.T) {
	if got := expandPath(""); got != "" {
		t.Errorf(`expandPath("") = %q, want ""`, got)
	}
	if got := expandPath("-"); got != "-" {
		t.Errorf(`expandPath("-") = %q, want "-"`, got)
	}
	if got := expandPath("reads.fq"); got != "reads.fq" {
		t.Errorf(`expandPath("reads.fq") = %q, want unchanged`, got)
	}
}
