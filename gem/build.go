package gem

import (
	"log"

	"cloud.google.com/go/storage"

	"github.com/gemtools/expressionmatrix"
)

// Build discovers every sample file under root and aggregates them into a
// Matrix. A file that cannot be opened or read is logged with its path and
// cause and contributes zero records — but keeps its column — and the run
// continues with the remaining files. Discovery failure (e.g. a missing
// root) is an error.
func Build(root, ext string, layout Layout, client *storage.Client) (*Matrix, error) {
	log.Printf("Searching for %s files in: %s\n", ext, root)

	files, err := DiscoverSampleFiles(root, ext, client)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d %s files\n", len(files), ext)

	m := NewMatrix()
	for _, path := range files {
		sampleID := SampleID(path, ext)
		m.RegisterSample(sampleID)

		log.Printf("Processing file: %s (Sample ID: %s)\n", path, sampleID)

		if err := m.AddSampleFile(path, sampleID, layout, client); err != nil {
			log.Printf("Error processing file %s: %v\n", path, err)
		}
	}

	log.Printf("Processed %d samples with %d genes\n", len(m.Samples()), len(m.Genes()))

	return m, nil
}

// AddSampleFile reads one quantification file, decompressing if needed, and
// records its observations under sampleID. For local paths client may be nil.
func (m *Matrix) AddSampleFile(path, sampleID string, layout Layout, client *storage.Client) error {
	f, err := expressionmatrix.MaybeOpenFromGoogleStorage(path, client)
	if err != nil {
		return err
	}

	rc, err := expressionmatrix.MaybeDecompress(f)
	if err != nil {
		f.Close()
		return err
	}
	defer rc.Close()

	r := NewSampleReader(rc, layout)
	for obs := r.Read(); obs != nil; obs = r.Read() {
		m.Record(obs.Gene, sampleID, obs.Value)
	}

	return r.Err()
}
