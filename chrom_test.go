// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrom

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSet(t *testing.T) {
	set, err := ReadSet(strings.NewReader("# header\nchr1\r\nchr2\n#chr3\nchrM"))
	require.NoError(t, err)
	assert.Equal(t, Set{"chr1": {}, "chr2": {}, "chrM": {}}, set)
	assert.True(t, set.Has("chr1"))
	assert.False(t, set.Has("chr3"))
	assert.False(t, set.Has("#chr3"))
}

func TestReadMap(t *testing.T) {
	const mapping = "# ucsc\tensembl\tgenbank\n" +
		"chr1\t1\tCM000663.2\n" +
		"chr2\t2\tCM000664.2\r\n" +
		"chr1\tI\tCM000663.2\n"

	tests := []struct {
		name     string
		src, dst int
		want     Map
	}{
		{name: "first_second", src: 0, dst: 1, want: Map{"chr1": "I", "chr2": "2"}},
		{name: "third_first", src: 2, dst: 0, want: Map{"CM000663.2": "chr1", "CM000664.2": "chr2"}},
		{name: "second_third", src: 1, dst: 2, want: Map{"1": "CM000663.2", "2": "CM000664.2", "I": "CM000663.2"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := ReadMap(strings.NewReader(mapping), test.src, test.dst)
			require.NoError(t, err)
			assert.Equal(t, test.want, m)
		})
	}
}

func TestReadMapShortLine(t *testing.T) {
	_, err := ReadMap(strings.NewReader("chr1\tI\nchr2\n"), 0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadMap(strings.NewReader("chr1\tI\n"), -1, 1)
	assert.Error(t, err)
}

func TestMapInvert(t *testing.T) {
	m := Map{"chr1": "I", "chr2": "II"}
	inv, err := m.Invert()
	require.NoError(t, err)
	assert.Equal(t, Map{"I": "chr1", "II": "chr2"}, inv)

	dst, ok := inv.Lookup("II")
	assert.True(t, ok)
	assert.Equal(t, "chr2", dst)

	_, err = Map{"chr1": "I", "1": "I"}.Invert()
	assert.True(t, errors.Is(err, ErrNotInjective))
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "genome.fasta", want: FASTA},
		{path: "/data/genome.FA", want: FASTA},
		{path: "genome.fna.gz", want: FASTA},
		{path: "genes.gff", want: GFF},
		{path: "genes.gff3", want: GFF},
		{path: "dir.fa/genes.GTF.gz", want: GFF},
		{path: "reads.bam", want: Unknown},
		{path: "fasta", want: Unknown},
		{path: "genome.gz", want: Unknown},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, FormatOf(test.path), test.path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("FASTA")
	require.NoError(t, err)
	assert.Equal(t, FASTA, f)
	f, err = ParseFormat("gff")
	require.NoError(t, err)
	assert.Equal(t, GFF, f)
	f, err = ParseFormat("bed")
	assert.Error(t, err)
	assert.Equal(t, Unknown, f)
	assert.Equal(t, "unknown", f.String())
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name, path string
		want       Format
		err        bool
	}{
		{name: "gff", path: "genome.fa", want: GFF},
		{name: "", path: "genome.fa", want: FASTA},
		{name: "", path: "genes.gtf", want: GFF},
		{name: "fasta", path: "", want: FASTA},
		{name: "", path: "", err: true},
		{name: "", path: "-", err: true},
		{name: "", path: "reads.bam", err: true},
		{name: "bam", path: "genome.fa", err: true},
	}
	for _, test := range tests {
		got, err := FormatFor(test.name, test.path)
		if test.err {
			assert.Error(t, err, "%q %q", test.name, test.path)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%q %q", test.name, test.path)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	const content = ">chr1 desc\nACGT\n"

	plain := filepath.Join(dir, "plain.fa")
	require.NoError(t, os.WriteFile(plain, []byte(content), 0o644))

	var buf bytes.Buffer
	z := pgzip.NewWriter(&buf)
	_, err := z.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, z.Close())
	packed := filepath.Join(dir, "packed.fa.gz")
	require.NoError(t, os.WriteFile(packed, buf.Bytes(), 0o644))

	for _, path := range []string{plain, packed} {
		f, err := Open(path)
		require.NoError(t, err)
		var got bytes.Buffer
		_, err = got.ReadFrom(f)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.Equal(t, content, got.String(), path)
	}

	_, err = Open(filepath.Join(dir, "absent.fa"))
	assert.True(t, os.IsNotExist(err))
}
