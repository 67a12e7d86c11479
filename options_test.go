package audec

import (
	"strings"
	"testing"
)

func TestNewRejectsBothLZ4Backends(t *testing.T) {
	opts := DefaultOptions()
	opts.LZ4 = true
	opts.LZ4v3 = true
	if _, err := New(opts); err == nil {
		t.Error("New accepted options enabling both lz4 backends")
	}
}

func TestLoadOptions(t *testing.T) {
	doc := `
zstd = false
lz4 = false
lz4v3 = true
channeldepth = 16
`
	opts, err := LoadOptions(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	want := Options{
		Deflate:      true, // untouched defaults
		Bzip2:        true,
		LZ4:          false,
		LZ4v3:        true,
		Zstd:         false,
		ChannelDepth: 16,
	}
	if opts != want {
		t.Errorf("LoadOptions = %+v, want %+v", opts, want)
	}

	if _, err := New(opts); err != nil {
		t.Errorf("New rejected loaded options: %v", err)
	}
}

func TestLoadOptionsBadDocument(t *testing.T) {
	if _, err := LoadOptions(strings.NewReader("zstd = {")); err == nil {
		t.Error("LoadOptions accepted a malformed document")
	}
}

func TestDefaultOptionsValid(t *testing.T) {
	if _, err := New(DefaultOptions()); err != nil {
		t.Errorf("New(DefaultOptions()) = %v", err)
	}
}
