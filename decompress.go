package expressionmatrix

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType checks the leading bytes of r against a set of known
// compression signatures. The bytes are peeked, not consumed, so r remains
// usable from its start afterward. Works on non-seekable streams (e.g.,
// Google Storage object readers).
func DetectDataType(r *bufio.Reader) (DataType, error) {
	buff, err := r.Peek(6)
	if err == io.EOF {
		// Inputs shorter than the longest signature can still be valid
		// uncompressed files.
		err = nil
	}
	if err != nil {
		return DataTypeInvalid, pfx.Err(err)
	}

	for dt, sig := range byteCodeSigs {
		if len(buff) >= len(sig) && bytes.Equal(buff[:len(sig)], sig) {
			return dt, nil
		}
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompress wraps rc with the decompressor matching its content
// signature, or returns it (buffered) as-is when no signature matches. The
// returned ReadCloser takes ownership of rc: closing it closes rc.
func MaybeDecompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)

	dt, err := DetectDataType(br)
	if err != nil {
		return nil, err
	}

	switch dt {
	case DataTypeGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &wrappedReadCloser{Reader: gz, closer: rc}, nil
	case DataTypeZip:
		return &wrappedReadCloser{Reader: zipstream.NewReader(br), closer: rc}, nil
	case DataTypeBZip2:
		return &wrappedReadCloser{Reader: bzip2.NewReader(br), closer: rc}, nil
	case DataTypeXZ:
		xzr, err := xz.NewReader(br, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &wrappedReadCloser{Reader: xzr, closer: rc}, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &wrappedReadCloser{Reader: zr, closer: rc}, nil
	}

	return &wrappedReadCloser{Reader: br, closer: rc}, nil
}

// wrappedReadCloser keeps the original closer attached to a derived reader.
type wrappedReadCloser struct {
	io.Reader
	closer io.Closer
}

func (w *wrappedReadCloser) Close() error {
	return w.closer.Close()
}
