// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// replace-chromosome renames the chromosomes of FASTA sequences or
// GFF/GTF features using a tab-delimited chromosome alias file.
//
// Usage:
//
//	replace-chromosome [-map chromAlias.txt] [-source 1] [-converted 2] [-delete] [-invert] [-format fasta|gff] [in [out]]
//
// Input and output default to stdin and stdout. Chromosomes absent from
// the mapping are reported once each and are retained unless -delete
// is set.
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
	mapFile   = flag.String("map", "chromAlias.txt", "specify tab delimited file containing source and converted chromosomes")
	source    = flag.Int("source", 1, "specify column of source chromosomes in map file (1-based)")
	converted = flag.Int("converted", 2, "specify column of converted chromosomes in map file (1-based)")
	del       = flag.Bool("delete", false, "remove entries on chromosomes without replacement")
	invert    = flag.Bool("invert", false, "apply the inverse of the mapping")
	format    = flag.String("format", "", `specify input format "fasta" or "gff" (default guessed from input file name)`)
	errFile   = flag.String("err", "", "output log file name (default to stderr)")
)

func main() {
	flag.Parse()
	if *source < 1 || *converted < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "invalid argument: map columns must be positive")
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

	mf, err := chrom.Open(*mapFile)
	if err != nil {
		log.Fatalf("failed to open map file %q: %v", *mapFile, err)
	}
	m, err := chrom.ReadMap(mf, *source-1, *converted-1)
	mf.Close()
	if err != nil {
		log.Fatalf("failed to read map file: %v", err)
	}
	if *invert {
		m, err = m.Invert()
		if err != nil {
			log.Fatalf("failed to invert mapping: %v", err)
		}
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

	missing := &chrom.Missing{Report: func(c string) {
		log.Printf("chromosome %s not found in mapping file", c)
	}}
	t := chrom.Transformer{
		Format:  typ,
		Decider: chrom.Rename{Map: m, Delete: *del, Missing: missing},
	}
	err = t.Transform(dst, src)
	if err != nil {
		log.Fatalf("failed to convert %s: %v", typ, err)
	}
	err = dst.Close()
	if err != nil {
		log.Fatalf("failed to close output: %v", err)
	}
	if n := len(missing.Names()); n != 0 {
		log.Printf("%d chromosomes not found in mapping file", n)
	}
}
