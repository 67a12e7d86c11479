package audec

import (
	"bufio"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// defaultChannelDepth bounds the chunk channel when Options.ChannelDepth is
// unset. A full channel blocks the worker, which is what gives the bridge
// its backpressure.
const defaultChannelDepth = 4

// chunk is the unit crossing the bridge: one decoded buffer or a terminal
// error, never both. Ownership of buf transfers with the message.
type chunk struct {
	buf []byte
	err error
}

// ParallelReader reads a stream that a dedicated worker goroutine
// decompresses ahead of the consumer. Decoded chunks cross a bounded
// channel; a closed channel with no pending error marks end of stream.
//
// ParallelReader is not safe for concurrent use. Callers that stop reading
// before end of stream must call Close, or the worker goroutine stays
// blocked on its next send.
type ParallelReader struct {
	ch   <-chan chunk
	done chan struct{}

	buf []byte // last received chunk
	pos int    // read cursor into buf
	err error  // terminal decode error, sticky once surfaced

	closeOnce sync.Once
	closed    bool
}

// NewParallelReader returns a reader over the decompressed content of r,
// with the decompression running on its own goroutine. The format is
// guessed from the magic bytes exactly like AutoDecompress, with the same
// passthrough policy; the worker takes exclusive ownership of r.
func (d *Decompressor) NewParallelReader(r io.Reader) *ParallelReader {
	br := asBufReader(r)
	format, ok := GuessFormat(br)

	depth := d.opts.ChannelDepth
	if depth <= 0 {
		depth = defaultChannelDepth
	}
	ch := make(chan chunk, depth)
	done := make(chan struct{})

	go func() {
		dec := br
		if ok {
			dec = d.DecompressAs(br, format)
		}
		produce(dec, ch, done)
	}()

	return &ParallelReader{ch: ch, done: done}
}

// produce runs the worker side of the bridge: fill the decoder's buffer,
// ship a copy of it, consume it from the decoder, repeat. It exits on clean
// EOF (channel close is the EOF signal), on the first decode error (sent
// once), or silently when the reader has been closed.
func produce(dec *bufio.Reader, ch chan<- chunk, done <-chan struct{}) {
	defer close(ch)

	var total uint64
	for {
		data, err := fill(dec)
		if err != nil {
			if err == io.EOF {
				log.WithField("total", humanize.IBytes(total)).Debug("reached end of stream")
				return
			}
			select {
			case ch <- chunk{err: err}:
			case <-done:
			}
			return
		}

		out := make([]byte, len(data))
		copy(out, data)
		dec.Discard(len(out))
		total += uint64(len(out))

		select {
		case ch <- chunk{buf: out}:
			log.WithField("bytes", len(out)).Debug("sent chunk")
		case <-done:
			log.Debug("reader closed, stopping decompression")
			return
		}
	}
}

// fill returns the decoder's currently buffered bytes, triggering a single
// read from the decoder only when its buffer is empty. It never consumes;
// io.EOF means clean end of stream.
func fill(dec *bufio.Reader) ([]byte, error) {
	if dec.Buffered() == 0 {
		if _, err := dec.Peek(1); err != nil {
			return nil, err
		}
	}
	return dec.Peek(dec.Buffered())
}

// Read copies out of the last received chunk, blocking on the channel when
// it is drained. It never copies across chunk boundaries in a single call.
// A decode error received from the worker is returned verbatim, and again
// on every later call.
func (p *ParallelReader) Read(b []byte) (int, error) {
	if p.closed {
		return 0, io.ErrClosedPipe
	}
	if p.err != nil {
		return 0, p.err
	}

	if p.pos >= len(p.buf) {
		c, ok := <-p.ch
		if !ok {
			return 0, io.EOF
		}
		if c.err != nil {
			p.err = c.err
			return 0, c.err
		}
		p.buf, p.pos = c.buf, 0
	}

	n := copy(b, p.buf[p.pos:])
	p.pos += n
	return n, nil
}

// Close releases the reader before end of stream: the worker observes the
// disconnect on its next send attempt and terminates without an error.
// Close never fails and is safe to call more than once; reads after Close
// return io.ErrClosedPipe.
func (p *ParallelReader) Close() error {
	p.closeOnce.Do(func() {
		p.closed = true
		close(p.done)
	})
	return nil
}
