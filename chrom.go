// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chrom provides chromosome whitelist filtering and chromosome
// renaming of FASTA and GFF/GTF annotation streams.
package chrom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotInjective is returned by Map.Invert when two source chromosomes
// share a target.
var ErrNotInjective = errors.New("chrom: mapping is not injective")

// Set is a chromosome whitelist.
type Set map[string]struct{}

// Has returns whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ReadSet returns a Set holding the lines of r. Lines beginning with '#'
// are ignored.
func ReadSet(r io.Reader) (Set, error) {
	set := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("chrom: failed to read chromosome list: %v", err)
	}
	return set, nil
}

// Map is a chromosome renaming table from source to target name.
type Map map[string]string

// Lookup returns the target name of the chromosome src.
func (m Map) Lookup(src string) (dst string, ok bool) {
	dst, ok = m[src]
	return dst, ok
}

// Invert returns the target to source mapping of m.
func (m Map) Invert() (Map, error) {
	inv := make(Map, len(m))
	for src, dst := range m {
		if prev, ok := inv[dst]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrNotInjective, prev, src, dst)
		}
		inv[dst] = src
	}
	return inv, nil
}

// ReadMap returns a Map read from the tab-delimited r using the zero-based
// columns src and dst as the source and target chromosome names. Lines
// beginning with '#' are ignored and later lines replace earlier lines with
// the same source name.
func ReadMap(r io.Reader, src, dst int) (Map, error) {
	if src < 0 || dst < 0 {
		return nil, fmt.Errorf("chrom: invalid mapping columns: %d and %d", src, dst)
	}
	m := make(Map)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if src >= len(fields) || dst >= len(fields) {
			return nil, fmt.Errorf("chrom: too few columns on mapping line %d: %q", n, line)
		}
		m[fields[src]] = fields[dst]
	}
	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("chrom: failed to read mapping: %v", err)
	}
	return m, nil
}
