package gem

import (
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"

	"github.com/gemtools/expressionmatrix"
)

// matchesExtension reports whether a file name looks like a sample file:
// either the bare extension or its gzipped form.
func matchesExtension(name, ext string) bool {
	return strings.HasSuffix(name, ext) || strings.HasSuffix(name, ext+".gz")
}

// DiscoverSampleFiles finds, at any depth under root, all files whose names
// end with ext (or ext.gz). root may be a local directory or a gs:// prefix;
// for local roots client may be nil. A missing or unreadable root is an
// error. The returned order is the walk order, which is lexical for local
// filesystems and for Google Storage listings, so repeated runs over an
// unchanged tree see the same sequence.
func DiscoverSampleFiles(root, ext string, client *storage.Client) ([]string, error) {
	if strings.HasPrefix(root, "gs://") {
		names, err := expressionmatrix.ListFromGoogleStorage(root, client)
		if err != nil {
			return nil, err
		}

		files := make([]string, 0, len(names))
		for _, name := range names {
			if matchesExtension(name, ext) {
				files = append(files, name)
			}
		}

		return files, nil
	}

	files := make([]string, 0)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !matchesExtension(info.Name(), ext) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, pfx.Err(err)
	}

	return files, nil
}
