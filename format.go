package audec

import (
	"bufio"
	"bytes"
)

// CompressionFormat identifies one of the compression formats that can be
// recognized from the leading magic bytes of a stream.
type CompressionFormat int

// List of compression formats recognized by this package.
const (
	Deflate CompressionFormat = iota // gzip/deflate
	Bzip2
	Lz4 // lz4 frame
	Zstd
)

func (f CompressionFormat) String() string {
	switch f {
	case Deflate:
		return "deflate"
	case Bzip2:
		return "bzip2"
	case Lz4:
		return "lz4"
	case Zstd:
		return "zstd"
	}
	return "unknown"
}

// The magic prefixes are pairwise disjoint, so match order doesn't matter.
var signatures = []struct {
	prefix []byte
	format CompressionFormat
}{
	{[]byte("BZh"), Bzip2},
	{[]byte{0x1f, 0x8b}, Deflate},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, Lz4},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, Zstd},
}

// maxMagicLen is the length of the longest signature prefix.
const maxMagicLen = 4

// GuessFormat guesses the compression format of the stream by peeking at its
// leading magic bytes, without moving the read position. It reports false if
// the magic bytes are not recognized or not enough bytes can be read to
// determine the format; a peek failure is treated the same way.
func GuessFormat(br *bufio.Reader) (CompressionFormat, bool) {
	// Peek returns the bytes it could buffer even on short reads; a
	// signature is matched only when its full prefix is available.
	magic, _ := br.Peek(maxMagicLen)
	for _, sig := range signatures {
		if bytes.HasPrefix(magic, sig.prefix) {
			return sig.format, true
		}
	}
	return 0, false
}
