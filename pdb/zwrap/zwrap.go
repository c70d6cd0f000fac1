// Package zwrap takes a file pointer or an http body and optionally
// wraps it so reading gives the decompressed data. Upon calling Close,
// the decompressor will be closed, followed by the underlying source.
// We decide if data is compressed by looking at the first two bytes, so
// the source does not have to be able to seek.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

// gzip streams start with these two bytes
var magic = []byte{0x1f, 0x8b}

// IsGzip says if a buffer looks like gzipped data.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, magic) }

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader    // what Read uses, maybe a buffer in front of fp
	zrdr *gzip.Reader // nil if the source was not compressed
}

// Close closes the decompressor, then the underlying source.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	var e1 error
	if fc.zrdr != nil {
		e1 = fc.zrdr.Close()
	}
	return errors.Join(e1, fc.fp.Close())
}

// Read makes sure we read from the decompressed stream if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.rdr.Read(p)
}

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap insists the source is gzipped. Use it when the server has told
// us so. If the data is not gzipped, we get an error and the source is
// left open for the caller.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// WrapMaybe looks at the start of the stream and only decompresses if
// it finds the gzip magic number. Short or empty sources are fine and
// are passed through.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	head, err := br.Peek(len(magic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	r := &FpGzip{fp: fp, rdr: br}
	if !IsGzip(head) {
		return r, nil
	}
	if r.zrdr, err = gzip.NewReader(br); err != nil {
		return nil, err
	}
	return r, nil
}
