package audec

import (
	"fmt"
	"io"

	"github.com/rasky/toml"
)

// Options selects the decompression backends available to a Decompressor.
// A format whose backend is disabled is still recognized by the sniffer but
// is passed through undecoded, as if the format were unknown.
type Options struct {
	Deflate bool // gzip/deflate, through klauspost/compress
	Bzip2   bool
	LZ4     bool // lz4 frame, through pierrec/lz4 v4
	LZ4v3   bool // lz4 frame, through the legacy pierrec/lz4 v3 decoder
	Zstd    bool

	// ChannelDepth is the capacity of the chunk channel between the
	// decompression worker and the reader in the parallel mode. The
	// producer blocks when the channel is full. Values <= 0 select the
	// default.
	ChannelDepth int
}

// DefaultOptions returns the options used by the package-level functions:
// every format enabled, with the v4 lz4 backend.
func DefaultOptions() Options {
	return Options{
		Deflate: true,
		Bzip2:   true,
		LZ4:     true,
		Zstd:    true,
	}
}

// The two lz4 backends decode the same frame format; enabling both would
// make the dispatch ambiguous, so it's rejected up front.
func (o Options) validate() error {
	if o.LZ4 && o.LZ4v3 {
		return fmt.Errorf("options: at most one of the LZ4 and LZ4v3 backends may be enabled")
	}
	return nil
}

// LoadOptions decodes Options from TOML. Formats not mentioned in the
// document keep their default setting, so a document only needs to list the
// backends it wants to toggle:
//
//	bzip2 = false
//	lz4 = false
//	lz4v3 = true
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeReader(r, &opts); err != nil {
		return Options{}, fmt.Errorf("can't parse options: %v", err)
	}
	return opts, nil
}
