/*
Package audec detects compressed streams by their leading magic bytes and
automatically decompresses them.

The compressed data itself is decoded by external codec packages; audec only
recognizes the format and wires the right decoder in front of the source.
When the magic bytes are not recognized, or too few bytes are available to
tell, the source is returned unchanged: unrecognized input is treated as
already-decompressed data, never as an error.

	f, err := os.Open("maybe_compressed")
	if err != nil {
		return err
	}
	defer f.Close()
	body, err := io.ReadAll(audec.AutoDecompress(f))

Recognized formats are gzip/deflate, bzip2, lz4 frames and zstd. Which
backends decode them is controlled by Options; see New.
*/
package audec

import (
	"bufio"
	"io"

	log "github.com/sirupsen/logrus"
)

// Decompressor maps recognized compression formats to the decoder backends
// enabled by its Options. It is immutable after New and safe for concurrent
// use; each call hands out an independent reader.
type Decompressor struct {
	opts     Options
	backends map[CompressionFormat]decoderFactory
}

// A decoderFactory wraps a compressed source with the codec-specific
// decoder. It never fails: a backend whose construction fails returns a
// reader that reports the error on the first read.
type decoderFactory func(io.Reader) io.Reader

// New returns a Decompressor using the backends enabled in opts. The
// options are validated once, here: a configuration enabling both lz4
// backends is rejected.
func New(opts Options) (*Decompressor, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	backends := make(map[CompressionFormat]decoderFactory)
	if opts.Deflate {
		backends[Deflate] = newGzipReader
	}
	if opts.Bzip2 {
		backends[Bzip2] = newBzip2Reader
	}
	if opts.LZ4 {
		backends[Lz4] = newLZ4Reader
	}
	if opts.LZ4v3 {
		backends[Lz4] = newLZ4v3Reader
	}
	if opts.Zstd {
		backends[Zstd] = newZstdReader
	}

	return &Decompressor{opts: opts, backends: backends}, nil
}

// defaultDecompressor backs the package-level functions. DefaultOptions is
// always valid, so the error is ignored.
var defaultDecompressor, _ = New(DefaultOptions())

// AutoDecompress returns a new reader that transparently decompresses the
// output of r. The format is determined by looking at the leading magic
// bytes; r is returned as-is (buffered) if they are not recognized.
func AutoDecompress(r io.Reader) *bufio.Reader {
	return defaultDecompressor.AutoDecompress(r)
}

// AutoDecompressParallel is like AutoDecompress but runs the decompression
// on a separate goroutine; see Decompressor.NewParallelReader.
func AutoDecompressParallel(r io.Reader) *ParallelReader {
	return defaultDecompressor.NewParallelReader(r)
}

// AutoDecompress returns a new reader that transparently decompresses the
// output of r, or r unchanged (buffered) if the leading magic bytes are not
// recognized or can't be read.
func (d *Decompressor) AutoDecompress(r io.Reader) *bufio.Reader {
	br := asBufReader(r)
	format, ok := GuessFormat(br)
	if !ok {
		log.Debug("compression format not recognized, passing stream through")
		return br
	}
	return d.DecompressAs(br, format)
}

// DecompressAs wraps br with the decoder for the given format, assuming it
// regardless of the magic bytes. If the format's backend is disabled br is
// returned unchanged. DecompressAs itself never fails: a malformed header
// only surfaces as an error on the first read from the returned reader.
func (d *Decompressor) DecompressAs(br *bufio.Reader, format CompressionFormat) *bufio.Reader {
	factory, ok := d.backends[format]
	if !ok {
		log.WithField("format", format).Debug("decompression backend disabled, passing stream through")
		return br
	}
	log.WithField("format", format).Debug("decompressing")
	return bufio.NewReader(factory(br))
}

func asBufReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
