// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// scale-factors computes scale factors based on reads aligning to a main
// genome and a spike-in genome for a set of BAM files.
//
// Only properly paired reads that are not QC failures, secondary or
// supplementary alignments are counted. Reads on chromosomes named in
// the spike-in FASTA file are counted as spike-in reads.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kortschak/chrom"
	"github.com/kortschak/chrom/scale"
)

var (
	spike   = flag.String("spike", "", "specify FASTA file containing spike-in genome")
	labels  = flag.String("labels", "", "specify comma separated labels to use instead of BAM file names")
	base    = flag.Int("scale", scale.Base, "specify base scale used to compute scale factors")
	outFile = flag.String("out", "", "output file name (default to stdout)")
	plotOut = flag.String("plot", "", "specify image file for a plot of main genome scale factors")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 || *base <= 0 {
		fmt.Fprintln(os.Stderr, "invalid argument: must have at least one BAM file")
		flag.Usage()
		os.Exit(1)
	}
	bams := flag.Args()

	var names []string
	if *labels != "" {
		names = strings.Split(*labels, ",")
		if len(names) != len(bams) {
			log.Printf("the number of labels does not match the number of BAM files - %d BAM files vs %d labels",
				len(bams), len(names))
		}
	}

	var spikes chrom.Set
	if *spike != "" {
		f, err := chrom.Open(*spike)
		if err != nil {
			log.Fatalf("failed to open spike-in fasta %q: %v", *spike, err)
		}
		spikes, err = scale.SpikeChromosomes(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read spike-in chromosomes: %v", err)
		}
	}

	out := os.Stdout
	if *outFile != "" {
		var err error
		out, err = os.Create(*outFile)
		if err != nil {
			log.Fatalf("failed to create out file: %v", err)
		}
	}

	w := scale.NewWriter(out, *base, *spike != "")
	err := w.WriteHeader()
	if err != nil {
		log.Fatalf("failed to write header: %v", err)
	}
	samples := make([]scale.Sample, 0, len(bams))
	for i, path := range bams {
		c, err := scale.NewCounter(path)
		if err != nil {
			log.Fatal(err)
		}
		n, err := c.Count(spikes)
		c.Close()
		if err != nil {
			log.Fatalf("failed to count reads in %q: %v", path, err)
		}
		s := scale.Sample{Label: path, Counts: n}
		if i < len(names) {
			s.Label = names[i]
		}
		err = w.Write(s)
		if err != nil {
			log.Fatalf("failed to write scale factors: %v", err)
		}
		samples = append(samples, s)
	}
	err = out.Close()
	if err != nil {
		log.Fatalf("failed to close output: %v", err)
	}

	if *plotOut != "" {
		err = scale.Plot(samples, *base, *plotOut)
		if err != nil {
			log.Fatalf("failed to plot scale factors: %v", err)
		}
	}
}
