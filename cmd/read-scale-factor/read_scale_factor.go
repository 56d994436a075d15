// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// read-scale-factor prints a single scale factor from a tab-delimited table
// such as the one written by scale-factors.
//
// Rows and columns are located either by index, or by text contained in
// the row header (first column) or column header (first row). When text
// matches more than one header the first match is used.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kortschak/chrom/table"
)

var (
	scales = flag.String("scales", "", "specify tab delimited file containing scale factors (required)")
	row    = flag.String("row", "", "specify row index or row header content (required)")
	column = flag.String("column", "", "specify column index or column header content (required)")
)

func main() {
	flag.Parse()
	if *scales == "" || *row == "" || *column == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*scales)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *scales, err)
	}
	m, err := table.ReadMatrix(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read scale factors: %v", err)
	}

	diag := &table.Log{Report: func(d table.Diagnostic) { log.Print(d) }}
	v, err := table.Lookup(m, *row, *column, diag)
	if err != nil {
		log.Fatalf("failed to find scale factor: %v", err)
	}
	fmt.Println(table.FormatFloat(v))
}
