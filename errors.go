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

import "errors"

// ErrUnsupportedFormat means the input file's extension is not one of
// the recognized FASTA/FASTQ (optionally gzipped) extensions.
var ErrUnsupportedFormat = errors.New("dbgasm: unsupported input format")

// ErrInvalidParameter means a caller-supplied parameter (k, threshold,
// output path extension) violates a precondition.
var ErrInvalidParameter = errors.New("dbgasm: invalid parameter")

// ErrEmptyKmerSet means the k-mer multiset is empty after counting or
// filtering, so there is nothing to assemble.
var ErrEmptyKmerSet = errors.New("dbgasm: empty k-mer set")

// ErrMalformedInput means a read record or a checkpoint header could not
// be decoded. CountFile returns it (wrapped with the file name) at the
// first record it cannot read and stops there; the record is not
// skipped, and counting does not continue past it.
var ErrMalformedInput = errors.New("dbgasm: malformed input record")
