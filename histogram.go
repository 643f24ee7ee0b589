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
	humanize "github.com/dustin/go-humanize"
	"github.com/shenwei356/stable"
	"github.com/twotwotwo/sorts/sortutil"
)

// HistogramBucket is one row of a k-mer abundance histogram: how many
// distinct k-mers were observed exactly count times.
type HistogramBucket struct {
	Count    uint64
	NumKmers uint64
}

// Histogram builds the abundance histogram spec.md §4.I describes:
// for every distinct count value present in ks, how many distinct
// k-mers carry it. Buckets are returned sorted by ascending count.
func Histogram(ks *KmerSet) []HistogramBucket {
	tally := make(map[uint64]uint64)
	for _, kmer := range ks.Keys() {
		tally[ks.Count(kmer)]++
	}

	counts := make([]uint64, 0, len(tally))
	for c := range tally {
		counts = append(counts, c)
	}
	sortutil.Uint64s(counts)

	buckets := make([]HistogramBucket, len(counts))
	for i, c := range counts {
		buckets[i] = HistogramBucket{Count: c, NumKmers: tally[c]}
	}
	return buckets
}

// RenderHistogram formats buckets as the plain ASCII table the teacher
// renders file-info tables with (unikmer/cmd/info.go's stable.Table
// usage), with counts comma-grouped via go-humanize for readability at
// the |M| ~ 10^8 scale spec.md §5 calls out.
func RenderHistogram(buckets []HistogramBucket) []byte {
	style := &stable.TableStyle{
		Name:      "plain",
		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}

	tbl := stable.New()
	tbl.HeaderWithFormat([]stable.Column{
		{Header: "count", Align: stable.AlignRight},
		{Header: "distinct_kmers", Align: stable.AlignRight},
	})

	for _, b := range buckets {
		tbl.AddRow([]interface{}{
			humanize.Comma(int64(b.Count)),
			humanize.Comma(int64(b.NumKmers)),
		})
	}

	return tbl.Render(style)
}
