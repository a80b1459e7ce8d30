package gem

import (
	"bytes"
	"errors"
	"testing"
)

func TestRegisterSampleKeepsFirstSeenOrder(t *testing.T) {
	m := NewMatrix()
	m.RegisterSample("B")
	m.RegisterSample("A")
	m.RegisterSample("B")
	m.RegisterSample("C")

	samples := m.Samples()
	if len(samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(samples))
	}
	if samples[0] != "B" || samples[1] != "A" || samples[2] != "C" {
		t.Errorf("Unexpected sample order: %v", samples)
	}
}

func TestRecordLastWriteWins(t *testing.T) {
	m := NewMatrix()
	m.RegisterSample("A")
	m.Record("TP53", "A", "1.0")
	m.Record("TP53", "A", "2.0")

	var buf bytes.Buffer
	if err := m.WriteTSV(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Gene\tA\nTP53\t2.0\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteTSVFillsMissingCells(t *testing.T) {
	m := NewMatrix()
	m.RegisterSample("A")
	m.RegisterSample("B")
	m.Record("TP53", "A", "12.3")
	m.Record("TP53", "B", "9.8")
	m.Record("BRCA1", "B", "4.5")

	var buf bytes.Buffer
	if err := m.WriteTSV(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Gene\tA\tB\nTP53\t12.3\t9.8\nBRCA1\tNA\t4.5\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteTSVEmptyMatrix(t *testing.T) {
	// No input files found is not an error; the output still gets its
	// header row.
	var buf bytes.Buffer
	if err := NewMatrix().WriteTSV(&buf); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "Gene\n" {
		t.Errorf("Expected a bare header row, got %q", buf.String())
	}
}

func TestWriteTSVColumnsWithoutRows(t *testing.T) {
	m := NewMatrix()
	m.RegisterSample("A")

	var buf bytes.Buffer
	if err := m.WriteTSV(&buf); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "Gene\tA\n" {
		t.Errorf("Expected a header-only matrix, got %q", buf.String())
	}
}

func TestSortGenes(t *testing.T) {
	m := NewMatrix()
	m.RegisterSample("A")
	m.Record("ZNF1", "A", "1")
	m.Record("ABL1", "A", "2")

	genes := m.Genes()
	if genes[0] != "ZNF1" || genes[1] != "ABL1" {
		t.Fatalf("Expected insertion order before sorting, got %v", genes)
	}

	m.SortGenes()

	genes = m.Genes()
	if genes[0] != "ABL1" || genes[1] != "ZNF1" {
		t.Errorf("Expected lexical order after sorting, got %v", genes)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWriteTSVSurfacesWriteError(t *testing.T) {
	// An unwritable destination is fatal to the run, so the error must
	// reach the caller rather than vanish in the buffer.
	m := NewMatrix()
	m.RegisterSample("A")
	m.Record("TP53", "A", "12.3")

	if err := m.WriteTSV(failingWriter{}); err == nil {
		t.Error("Expected a write error to surface")
	}
}

func TestGeneRowsKeepInsertionOrder(t *testing.T) {
	m := NewMatrix()
	m.RegisterSample("A")
	m.Record("ZNF1", "A", "1")
	m.Record("ABL1", "A", "2")
	// Re-recording an existing gene must not move its row.
	m.Record("ZNF1", "A", "3")

	var buf bytes.Buffer
	if err := m.WriteTSV(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Gene\tA\nZNF1\t3\nABL1\t2\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
