//go:build cgo

package audec

import (
	"io"

	zstd "github.com/valyala/gozstd"
)

func newZstdReader(r io.Reader) io.Reader {
	return &zstdReader{zr: zstd.NewReader(r)}
}

// zstdReader releases the underlying C decoder once the stream ends, since
// the composed reader surface has no Close.
type zstdReader struct {
	zr  *zstd.Reader
	err error
}

func (z *zstdReader) Read(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}
	n, err := z.zr.Read(p)
	if err != nil {
		z.err = err
		z.zr.Release()
	}
	return n, err
}
