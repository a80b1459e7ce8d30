package expressionmatrix

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"google.golang.org/api/iterator"
)

// MaybeOpenFromGoogleStorage opens path for reading. Paths prefixed with
// gs:// are opened as Google Storage objects via client; anything else is
// opened from the local filesystem, in which case client may be nil.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, "gs://") {
		return os.Open(path)
	}

	bucketName, objectName, err := splitGoogleStoragePath(path)
	if err != nil {
		return nil, err
	}

	rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(context.Background())
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return rdr, nil
}

// ListFromGoogleStorage returns the full gs:// paths of all objects whose
// names start with the given gs:// prefix.
func ListFromGoogleStorage(prefix string, client *storage.Client) ([]string, error) {
	bucketName, objectPrefix, err := splitGoogleStoragePath(prefix)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)

	it := client.Bucket(bucketName).Objects(context.Background(), &storage.Query{Prefix: objectPrefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		names = append(names, "gs://"+bucketName+"/"+attrs.Name)
	}

	return names, nil
}

func splitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 {
		return "", "", pfx.Err(fmt.Errorf("tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts))
	}

	return pathParts[0], pathParts[1], nil
}
