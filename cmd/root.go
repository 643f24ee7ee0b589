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

// RootCmd is the single flat command spec.md §6 specifies: unlike the
// teacher's git-style subcommand toolkit (unikmer/cmd/root.go plus
// count/filter/sort/...), dbgasm exposes one command that performs the
// whole count -> (histogram) -> filter -> (assemble) pipeline, gated by
// flags rather than subcommand names.
var RootCmd = &cobra.Command{
	Use:   "dbgasm",
	Short: "De novo genome assembler built on a de Bruijn graph",
	Long: `dbgasm - de novo genome assembler

Counts k-mers from a FASTA/FASTQ read file, optionally filters them by
abundance, and (with -a) assembles contigs by simplifying a de Bruijn
graph (tip removal, then bubble removal) and extracting maximal
non-branching paths.

Author: Wei Shen <shenwei356@gmail.com>
`,
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

// Execute runs RootCmd and exits with status 1 if it returns an error.
// Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	defaultThreads := runtime.NumCPU()
	if defaultThreads > 2 {
		defaultThreads = 2
	}
	RootCmd.PersistentFlags().IntP("threads", "j", defaultThreads, "number of CPUs to use")
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose information")

	// Flag names follow spec.md §6 letter-for-letter (r, k, kf, kh, a,
	// tt, bt, o); pflag's shorthand mechanism only accepts single-ASCII
	// shorthands, so the two-and-three-letter ones (kf, kh, tt, bt) are
	// long-only (--kf, --kh, --tt, --bt) while the single-letter ones
	// additionally get a "-x" shorthand.
	RootCmd.Flags().StringP("r", "r", "", "input reads file (FASTA/FASTQ, optionally gzipped) (required)")
	RootCmd.Flags().IntP("k", "k", 0, "k-mer length, k >= 2 (required)")
	RootCmd.Flags().Int("kf", 0, "abundance filter threshold, >= 1 (optional)")
	RootCmd.Flags().Bool("kh", false, "emit k-mer abundance histogram")
	RootCmd.Flags().BoolP("a", "a", false, "run the assembler")
	RootCmd.Flags().Int("tt", dbgasm.DefaultTipThreshold, "tip-removal length threshold")
	RootCmd.Flags().Int("bt", dbgasm.DefaultBubbleThreshold, "bubble-removal arm-length threshold")
	RootCmd.Flags().StringP("o", "o", "", "output FASTA path, must end in .fa or .fasta (default: derived from -r; \"-\" for stdout)")
}
