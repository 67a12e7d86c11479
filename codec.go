package audec

import (
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	lz4v3 "github.com/pierrec/lz4/v3"
	"github.com/pierrec/lz4/v4"
)

// The factories below adapt one codec package each to the decoderFactory
// contract. Constructors that read the header eagerly (and so can fail) are
// deferred with errorReader, keeping construction infallible.

func newGzipReader(r io.Reader) io.Reader {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errorReader{err}
	}
	return gz
}

// The standard library decoder is the only bzip2 decompressor around; the
// usual third-party compression packages don't carry one.
func newBzip2Reader(r io.Reader) io.Reader {
	return bzip2.NewReader(r)
}

func newLZ4Reader(r io.Reader) io.Reader {
	return lz4.NewReader(r)
}

func newLZ4v3Reader(r io.Reader) io.Reader {
	return lz4v3.NewReader(r)
}

// errorReader defers a failed decoder construction to the first read, where
// it surfaces as an ordinary decode error.
type errorReader struct{ err error }

func (e errorReader) Read([]byte) (int, error) { return 0, e.err }
