package gem

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

// MissingValue marks a gene/sample combination with no observed value.
const MissingValue = "NA"

// Matrix accumulates expression values keyed by gene and sample. It remembers
// the order in which genes and samples were first seen, so output is
// reproducible across runs over an unchanged input tree.
type Matrix struct {
	values  map[string]map[string]string
	genes   []string
	samples []string
	seen    map[string]struct{}
}

func NewMatrix() *Matrix {
	return &Matrix{
		values: make(map[string]map[string]string),
		seen:   make(map[string]struct{}),
	}
}

// RegisterSample adds id as an output column. Registering the same id again
// is a no-op; the first position sticks.
func (m *Matrix) RegisterSample(id string) {
	if _, exists := m.seen[id]; exists {
		return
	}

	m.seen[id] = struct{}{}
	m.samples = append(m.samples, id)
}

// Record stores value for the (gene, sample) pair. A later Record for the
// same pair overwrites the earlier one.
func (m *Matrix) Record(gene, sampleID, value string) {
	entry, exists := m.values[gene]
	if !exists {
		entry = make(map[string]string)
		m.values[gene] = entry
		m.genes = append(m.genes, gene)
	}

	entry[sampleID] = value
}

// Genes returns the row keys in their current output order.
func (m *Matrix) Genes() []string {
	return m.genes
}

// Samples returns the column keys in registration order.
func (m *Matrix) Samples() []string {
	return m.samples
}

// SortGenes switches the row order from first-seen to lexical.
func (m *Matrix) SortGenes() {
	sort.Strings(m.genes)
}

// WriteTSV emits a header row ("Gene" plus the sample ids) followed by one
// row per gene, with MissingValue filling the cells no file reported. Fields
// are joined with tabs directly rather than through encoding/csv, which would
// quote cells containing quote characters instead of passing the recorded
// strings through verbatim.
func (m *Matrix) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriterSize(w, 4096)

	header := append([]string{"Gene"}, m.samples...)
	if _, err := bw.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
		return pfx.Err(err)
	}

	row := make([]string, len(m.samples)+1)
	for _, gene := range m.genes {
		row[0] = gene
		for i, id := range m.samples {
			value, ok := m.values[gene][id]
			if !ok {
				value = MissingValue
			}
			row[i+1] = value
		}

		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return pfx.Err(err)
		}
	}

	return pfx.Err(bw.Flush())
}
