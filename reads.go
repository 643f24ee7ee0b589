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
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
)

var readExts = []string{".fa", ".fasta", ".fna", ".fq", ".fastq", ".fa.gz", ".fasta.gz", ".fna.gz", ".fq.gz", ".fastq.gz"}

// recognizedReadFormat reports whether file carries one of the
// FASTA/FASTQ (optionally gzipped) extensions component A accepts.
func recognizedReadFormat(file string) bool {
	lower := strings.ToLower(file)
	for _, ext := range readExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// CountFile streams every read of file into ks, returning the number of
// records processed. gzip is handled transparently beneath fastx/xopen,
// same as the teacher's fastx.NewDefaultReader usage in
// unikmer/cmd/count.go.
func CountFile(ks *KmerSet, file string) (int, error) {
	if !recognizedReadFormat(file) {
		return 0, errors.Wrap(ErrUnsupportedFormat, file)
	}

	reader, err := fastx.NewDefaultReader(file)
	if err != nil {
		return 0, errors.Wrap(err, file)
	}

	n := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return n, errors.Wrap(ErrMalformedInput, file)
		}
		read := string(record.Seq.Seq)
		if len(read) >= ks.K {
			if err := AddReadFast(ks, read); err != nil {
				ks.AddRead(read)
			}
		}
		n++
	}
	return n, nil
}
