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

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shenwei356/dbgasm"
	"github.com/spf13/cobra"
)

// run implements spec.md §4.H's full pipeline: count -> (histogram) ->
// filter -> (assemble), gated by the flags §6 defines. It is the
// flat-command counterpart of unikmer/cmd/root.go's RunE split across
// subcommands, collapsed into one Run func per the CLI shape decided
// in DESIGN.md's Open Question section.
func run(cmd *cobra.Command, args []string) {
	opt := getOptions(cmd)
	runtime.GOMAXPROCS(opt.NumCPUs)

	readsFile := expandPath(getFlagNonEmptyString(cmd, "r"))
	checkFileExists(readsFile)

	k := getFlagInt(cmd, "k")
	if k < 2 {
		checkError(fmt.Errorf("-k must be >= 2, got %d", k))
	}

	kf := getFlagNonNegativeInt(cmd, "kf")
	if kf != 0 && kf < 1 {
		checkError(fmt.Errorf("-kf must be >= 1 when given"))
	}

	emitHist := getFlagBool(cmd, "kh")
	doAssemble := getFlagBool(cmd, "a")

	tipThreshold := getFlagPositiveInt(cmd, "tt")
	bubbleThreshold := getFlagPositiveInt(cmd, "bt")

	outFile := getFlagString(cmd, "o")
	if outFile != "" {
		checkFastaOutExt(outFile)
	}

	if !emitHist && !doAssemble {
		checkError(fmt.Errorf("nothing to do: pass --kh and/or -a"))
	}

	if opt.Verbose {
		log.Infof("counting %d-mers from %s ...", k, readsFile)
	}

	ks, err := dbgasm.NewKmerSet(k)
	checkError(err)

	n, err := dbgasm.CountFile(ks, readsFile)
	checkError(err)
	if opt.Verbose {
		log.Infof("%d reads processed, %d distinct %d-mers found", n, ks.Len(), k)
	}

	if emitHist {
		buckets := dbgasm.Histogram(ks)
		os.Stdout.Write(dbgasm.RenderHistogram(buckets))
	}

	if kf > 0 {
		if opt.Verbose {
			log.Infof("filtering %d-mers with abundance < %d ...", k, kf)
		}
		ks = ks.Filter(uint64(kf))
		if opt.Verbose {
			log.Infof("%d distinct %d-mers remain after filtering", ks.Len(), k)
		}
	}

	if ks.Len() == 0 {
		checkError(fmt.Errorf("%w: no k-mers survived counting/filtering", dbgasm.ErrEmptyKmerSet))
	}

	if !doAssemble {
		return
	}

	if outFile == "" {
		outFile = baseNoExt(readsFile) + ".contigs.fa"
	}

	if opt.Verbose {
		log.Infof("building de Bruijn graph ...")
	}
	g := dbgasm.NewGraph(ks)

	if opt.Verbose {
		log.Infof("simplifying graph (tip threshold %d, bubble threshold %d) and extracting contigs ...",
			tipThreshold, bubbleThreshold)
	}
	asm := dbgasm.NewAssembler(tipThreshold, bubbleThreshold)
	contigs := asm.Assemble(g, ks)

	if err := dbgasm.WriteContigsFasta(outFile, contigs); err != nil {
		checkError(err)
	}

	log.Infof("%d contigs written to %s", len(contigs), outFile)
}
