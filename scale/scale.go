// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale computes sequencing depth scale factors from read counts
// of BAM alignments to a main genome and an optional spike-in genome.
package scale

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"github.com/kortschak/chrom"
	"github.com/kortschak/chrom/table"
)

// Base is the default base scale divided by read counts.
const Base = 10000000

// SpikeChromosomes returns the names of the sequences in the FASTA
// stream r.
func SpikeChromosomes(r io.Reader) (chrom.Set, error) {
	set := make(chrom.Set)
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		set[sc.Seq().Name()] = struct{}{}
	}
	err := sc.Error()
	if err != nil {
		return nil, fmt.Errorf("scale: error during fasta read: %v", err)
	}
	return set, nil
}

// Counts holds the numbers of reads aligned to the main and spike-in
// genomes.
type Counts struct {
	Main  int
	Spike int
}

// Counter is a BAM reader that counts aligned reads.
type Counter struct {
	f *os.File
	r *bam.Reader
}

// NewCounter returns a Counter reading the BAM file at path.
func NewCounter(path string) (*Counter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scale: failed to open bam file: %v", err)
	}
	r, err := bam.NewReader(f, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("scale: failed to open bam stream: %v", err)
	}
	return &Counter{f: f, r: r}, nil
}

// Count returns the number of properly paired primary reads that pass
// QC. Reads aligned to a reference in spike are counted as spike-in
// reads and all others as main genome reads. Count consumes the BAM
// stream and so may only be called once.
func (c *Counter) Count(spike chrom.Set) (Counts, error) {
	var n Counts
	for {
		rec, err := c.r.Read()
		if err != nil {
			if err != io.EOF {
				return n, fmt.Errorf("scale: unexpected error reading bam: %v", err)
			}
			break
		}
		if !counted(rec) {
			continue
		}
		if spike.Has(rec.Ref.Name()) {
			n.Spike++
		} else {
			n.Main++
		}
	}
	return n, nil
}

// counted returns whether r is an aligned proper pair read that is not
// a QC failure, secondary or supplementary alignment.
func counted(r *sam.Record) bool {
	const excluded = sam.Unmapped | sam.QCFail | sam.Secondary | sam.Supplementary
	return r.Ref != nil && r.Flags&sam.ProperPair != 0 && r.Flags&excluded == 0
}

// Close closes the bam.Reader held by the Counter.
func (c *Counter) Close() error {
	err := c.r.Close()
	if err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}

// Factor returns base/n. If n is zero, ok is false.
func Factor(base, n int) (f float64, ok bool) {
	if n == 0 {
		return 0, false
	}
	return float64(base) / float64(n), true
}

// ProductFactor returns base/(spike*main). The product is formed in
// floating point so large counts do not overflow. If either count is
// zero, ok is false.
func ProductFactor(base, spike, main int) (f float64, ok bool) {
	if spike == 0 || main == 0 {
		return 0, false
	}
	return float64(base) / (float64(spike) * float64(main)), true
}

// Sample is the read counts for a single labeled BAM file.
type Sample struct {
	Label string
	Counts
}

// Writer writes tab-delimited scale factor tables.
type Writer struct {
	w     io.Writer
	base  int
	spike bool
}

// NewWriter returns a Writer that writes scale factors relative to base
// to w. If spike is true, spike-in counts and factors are included.
func NewWriter(w io.Writer, base int, spike bool) *Writer {
	return &Writer{w: w, base: base, spike: spike}
}

// WriteHeader writes the table's column header line.
func (w *Writer) WriteHeader() error {
	b := float64(w.base)
	_, err := fmt.Fprintf(w.w, "BAM\tMain genome reads count\tScale factors - %.2e / main genome reads count", b)
	if err != nil {
		return err
	}
	if w.spike {
		_, err = fmt.Fprintf(w.w, "\tSpike-in reads count\tSpike-in scale factors - %.2e / spike-in reads count"+
			"\tTotal size scale factors - %.2e / (spike-in * main genome)", b, b)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w.w)
	return err
}

// Write writes the counts and scale factors of s.
func (w *Writer) Write(s Sample) error {
	_, err := fmt.Fprintf(w.w, "%s\t%d\t%s", s.Label, s.Main, formatFactor(Factor(w.base, s.Main)))
	if err != nil {
		return err
	}
	if w.spike {
		_, err = fmt.Fprintf(w.w, "\t%d\t%s\t%s",
			s.Spike, formatFactor(Factor(w.base, s.Spike)), formatFactor(ProductFactor(w.base, s.Spike, s.Main)))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w.w)
	return err
}

func formatFactor(f float64, ok bool) string {
	if !ok {
		return "NA"
	}
	return table.FormatFloat(f)
}
