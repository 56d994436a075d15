// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrom

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decider decides the fate of a record from its chromosome name.
type Decider interface {
	// Decide returns the chromosome name to write for the record
	// and whether the record is kept.
	Decide(chrom string) (name string, keep bool)
}

// Filter is a Decider that keeps records for which the function
// returns true. Chromosome names are not altered.
type Filter func(chrom string) bool

// Decide implements the Decider interface.
func (f Filter) Decide(chrom string) (string, bool) {
	return chrom, f(chrom)
}

// Rename is a Decider that renames chromosomes using Map. Chromosomes
// absent from Map are added to Missing and keep their name; their records
// are dropped if Delete is true.
type Rename struct {
	Map    Map
	Delete bool

	Missing *Missing
}

// Decide implements the Decider interface.
func (r Rename) Decide(chrom string) (string, bool) {
	name, ok := r.Map.Lookup(chrom)
	if ok {
		return name, true
	}
	r.Missing.Add(chrom)
	return chrom, !r.Delete
}

// Missing collects the distinct chromosome names that were not found
// during a single transformation. The zero value is ready to use and a
// nil *Missing discards names.
type Missing struct {
	// Report, if not nil, is called with each name
	// the first time it is added.
	Report func(chrom string)

	seen  map[string]struct{}
	names []string
}

// Add adds chrom to the collection, returning whether it had not been
// seen before.
func (m *Missing) Add(chrom string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.seen[chrom]; ok {
		return false
	}
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	m.seen[chrom] = struct{}{}
	m.names = append(m.names, chrom)
	if m.Report != nil {
		m.Report(chrom)
	}
	return true
}

// Names returns the missing chromosome names in the order they were
// first seen.
func (m *Missing) Names() []string {
	if m == nil {
		return nil
	}
	return m.names
}

// disposition is the keep or drop state of a FASTA record. Sequence
// lines take the disposition set by the preceding header line.
type disposition bool

const (
	drop disposition = false
	keep disposition = true
)

// header returns the disposition following a header line that
// was kept or not.
func (disposition) header(kept bool) disposition {
	return disposition(kept)
}

// emit returns whether a sequence line in state d is written.
func (d disposition) emit() bool { return d == keep }

// Transformer applies a Decider to each record of an annotation stream.
type Transformer struct {
	Format  Format
	Decider Decider
}

// Transform reads records from src and writes the records kept by
// the Transformer's Decider to dst. Lines that are not altered are
// written verbatim.
func (t Transformer) Transform(dst io.Writer, src io.Reader) error {
	if t.Decider == nil {
		return fmt.Errorf("chrom: no decider for %s transform", t.Format)
	}
	var fn func(w *bufio.Writer, content, term string)
	switch t.Format {
	case FASTA:
		state := drop
		fn = func(w *bufio.Writer, content, term string) {
			id, sep, desc, ok := fastaHeader(content)
			if !ok {
				if state.emit() {
					w.WriteString(content)
					w.WriteString(term)
				}
				return
			}
			name, kept := t.Decider.Decide(id)
			state = state.header(kept)
			if !kept {
				return
			}
			if name == id {
				w.WriteString(content)
			} else {
				w.WriteByte('>')
				w.WriteString(name)
				w.WriteString(sep)
				w.WriteString(desc)
			}
			w.WriteString(term)
		}
	case GFF:
		fn = func(w *bufio.Writer, content, term string) {
			if strings.HasPrefix(content, "#") {
				w.WriteString(content)
				w.WriteString(term)
				return
			}
			id := content
			if i := strings.IndexByte(content, '\t'); i >= 0 {
				id = content[:i]
			}
			name, kept := t.Decider.Decide(id)
			if !kept {
				return
			}
			if name == id {
				w.WriteString(content)
			} else {
				w.WriteString(name)
				w.WriteString(content[len(id):])
			}
			w.WriteString(term)
		}
	default:
		return fmt.Errorf("chrom: cannot transform %s format", t.Format)
	}

	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	for {
		line, err := r.ReadString('\n')
		if len(line) != 0 {
			content, term := splitTerminator(line)
			fn(w, content, term)
		}
		if err != nil {
			if err != io.EOF {
				return err
			}
			break
		}
	}
	return w.Flush()
}

// splitTerminator splits line into its content and its line terminator.
func splitTerminator(line string) (content, term string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}

// fastaHeader returns the sequence identifier of a FASTA header line,
// the single space character separating it from the description, and
// the description. The identifier is the longest run of non-space
// characters following the '>' and may be empty.
func fastaHeader(line string) (id, sep, desc string, ok bool) {
	if !strings.HasPrefix(line, ">") {
		return "", "", "", false
	}
	line = line[1:]
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", "", true
	}
	_, n := utf8.DecodeRuneInString(line[i:])
	return line[:i], line[i : i+n], line[i+n:], true
}
