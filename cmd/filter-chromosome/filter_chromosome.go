// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// filter-chromosome drops FASTA sequences or GFF/GTF features on chromosomes
// that are not present in a white list.
//
// Usage:
//
//	filter-chromosome -white chroms.txt [-format fasta|gff] [in [out]]
//
// Input and output default to stdin and stdout. GFF comment lines are
// always retained.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kortschak/chrom"
)

var (
	white   = flag.String("white", "", "specify file containing white listed chromosomes (required)")
	format  = flag.String("format", "", `specify input format "fasta" or "gff" (default guessed from input file name)`)
	errFile = flag.String("err", "", "output log file name (default to stderr)")
)

func main() {
	flag.Parse()
	if *white == "" || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "invalid argument: must have white list set")
		flag.Usage()
		os.Exit(1)
	}

	if *errFile != "" {
		w, err := os.Create(*errFile)
		if err != nil {
			// Oh, the irony.
			log.Fatalf("failed to create log file: %v", err)
		}
		defer w.Close()
		log.SetOutput(w)
	}

	in, out := flag.Arg(0), flag.Arg(1)
	typ, err := chrom.FormatFor(*format, in)
	if err != nil {
		log.Fatal(err)
	}

	wf, err := chrom.Open(*white)
	if err != nil {
		log.Fatalf("failed to open white list %q: %v", *white, err)
	}
	set, err := chrom.ReadSet(wf)
	wf.Close()
	if err != nil {
		log.Fatalf("failed to read white list: %v", err)
	}

	var src io.Reader = os.Stdin
	if in != "" && in != "-" {
		f, err := chrom.Open(in)
		if err != nil {
			log.Fatalf("failed to open %q: %v", in, err)
		}
		defer f.Close()
		src = f
	}
	dst := os.Stdout
	if out != "" && out != "-" {
		dst, err = os.Create(out)
		if err != nil {
			log.Fatalf("failed to create out file: %v", err)
		}
	}

	t := chrom.Transformer{Format: typ, Decider: chrom.Filter(set.Has)}
	err = t.Transform(dst, src)
	if err != nil {
		log.Fatalf("failed to filter %s: %v", typ, err)
	}
	err = dst.Close()
	if err != nil {
		log.Fatalf("failed to close output: %v", err)
	}
}
