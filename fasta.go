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
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// fastaLineWidth is the wrap width spec.md §4.H/§6 specifies for contig
// FASTA output.
const fastaLineWidth = 60

// WriteContigsFasta writes contigs to file in FASTA format, wrapped at
// 60 columns, in the order given. A ".gz" suffix compresses with
// klauspost/pgzip's parallel writer rather than xopen's sequential one,
// worthwhile once |M| and the resulting contig set get large (spec.md
// §5); any other extension (or "-" for stdout) goes straight through
// xopen.Wopen, mirroring the teacher's outfh pattern in
// unikmer/cmd/count.go.
func WriteContigsFasta(file string, contigs []Contig) error {
	var w io.Writer
	var closers []io.Closer

	if strings.HasSuffix(strings.ToLower(file), ".gz") {
		f, err := os.Create(file)
		if err != nil {
			return errors.Wrap(err, file)
		}
		closers = append(closers, f)

		gw := gzip.NewWriter(f)
		closers = append(closers, gw)

		bw := bufio.NewWriterSize(gw, os.Getpagesize())
		defer func() {
			bw.Flush()
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i].Close()
			}
		}()
		w = bw
	} else {
		xw, err := xopen.Wopen(file)
		if err != nil {
			return errors.Wrap(err, file)
		}
		defer xw.Close()
		w = xw
	}

	for _, c := range contigs {
		if _, err := io.WriteString(w, ">"+c.Name()+"\n"); err != nil {
			return errors.Wrap(err, file)
		}
		seq := c.Sequence
		for i := 0; i < len(seq); i += fastaLineWidth {
			end := i + fastaLineWidth
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := io.WriteString(w, seq[i:end]+"\n"); err != nil {
				return errors.Wrap(err, file)
			}
		}
	}
	return nil
}
