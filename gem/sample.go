package gem

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// SampleID derives the sample identifier from a file path: the base name cut
// at the first occurrence of ext. With ext ".tsv",
// "TCGA-XX.rna_seq.augmented_star_gene_counts.tsv.gz" becomes
// "TCGA-XX.rna_seq.augmented_star_gene_counts". A name that never contains
// ext is used whole.
func SampleID(path, ext string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, ext); i >= 0 {
		return base[:i]
	}

	return base
}

// Observation is one (gene, value) pair extracted from a sample file. The
// value is carried as its raw string; nothing in the pipeline converts or
// trims it.
type Observation struct {
	Gene  string
	Value string
}

// SampleReader extracts observations from a single quantification file.
type SampleReader struct {
	scanner *bufio.Scanner
	layout  Layout
	skipped bool
}

func NewSampleReader(r io.Reader, layout Layout) *SampleReader {
	return &SampleReader{
		scanner: bufio.NewScanner(r),
		layout:  layout,
	}
}

// Read returns the next observation, or nil once the file is exhausted.
// Exactly SkipRows leading lines are discarded first; a file with fewer lines
// than that yields no observations. Data lines with fewer than MinFields
// tab-delimited fields are skipped without comment.
func (s *SampleReader) Read() *Observation {
	if !s.skipped {
		s.skipped = true
		for i := 0; i < s.layout.SkipRows; i++ {
			if !s.scanner.Scan() {
				return nil
			}
		}
	}

	for s.scanner.Scan() {
		fields := strings.Split(s.scanner.Text(), "\t")
		if len(fields) < s.layout.MinFields() {
			continue
		}

		return &Observation{
			Gene:  fields[s.layout.ColGene],
			Value: fields[s.layout.ColExpression],
		}
	}

	return nil
}

// Err reports any underlying read error once Read has returned nil.
func (s *SampleReader) Err() error {
	return s.scanner.Err()
}
