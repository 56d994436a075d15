// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
)

// Format is an annotation file format.
type Format int

const (
	Unknown Format = iota
	FASTA
	GFF
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case GFF:
		return "gff"
	default:
		return "unknown"
	}
}

// ParseFormat returns the Format named by s, either "fasta" or "gff".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "fasta":
		return FASTA, nil
	case "gff":
		return GFF, nil
	default:
		return Unknown, fmt.Errorf("chrom: unknown format: %q", s)
	}
}

// FormatOf returns the Format implied by the suffix of the file name path.
// A trailing ".gz" is ignored.
func FormatOf(path string) Format {
	name := strings.TrimSuffix(strings.ToLower(filepath.Base(path)), ".gz")
	switch filepath.Ext(name) {
	case ".fasta", ".fa", ".fna":
		return FASTA
	case ".gff", ".gtf", ".gff3":
		return GFF
	default:
		return Unknown
	}
}

// FormatFor returns the Format named by name, or if name is empty, the
// Format implied by the file name path. An empty path denotes standard
// input, for which name must be given.
func FormatFor(name, path string) (Format, error) {
	if name != "" {
		return ParseFormat(name)
	}
	if path == "" || path == "-" {
		return Unknown, errors.New("chrom: input is not a file and no format was given")
	}
	f := FormatOf(path)
	if f == Unknown {
		return Unknown, fmt.Errorf("chrom: cannot determine format of %q from file name", path)
	}
	return f, nil
}

// Open opens the named file for reading, decompressing it if the name
// ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}
	z, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("chrom: failed to open gzip stream %q: %v", path, err)
	}
	return gzFile{Reader: z, f: f}, nil
}

type gzFile struct {
	*pgzip.Reader
	f *os.File
}

// Close closes the gzip stream and the underlying file.
func (g gzFile) Close() error {
	err := g.Reader.Close()
	if err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
