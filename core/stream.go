package core

import (
	"bufio"
	"errors"
	"io"
)

// Element is the granularity a stream operates at: bytes or characters.
type Element interface {
	byte | rune
}

// Input is a closable source of elements. Read follows the io.Reader
// contract: it returns io.EOF once the source is exhausted.
type Input[E Element] interface {
	Read(p []E) (int, error)
	io.Closer
}

// Output is a closable sink of elements. Close flushes buffered elements.
type Output[E Element] interface {
	Write(p []E) (int, error)
	io.Closer
}

// Reader opens inputs of element kind E for locations of type L.
type Reader[L any, E Element] interface {
	OpenInput(loc L) (Input[E], error)
}

// Writer opens outputs of element kind E for locations of type L. When
// appending is false the destination is truncated.
type Writer[L any, E Element] interface {
	OpenOutput(loc L, appending bool) (Output[E], error)
}

// pumpBufferSize is the number of elements moved per Read call.
const pumpBufferSize = 32 * 1024

// Pump copies every element from in to out and returns the number of
// elements transferred. Neither stream is closed.
func Pump[E Element](in Input[E], out Output[E]) (int64, error) {
	buf := make([]E, pumpBufferSize)
	var total int64
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			w, werr := out.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, werr
			}
			if w != n {
				return total, io.ErrShortWrite
			}
		}
		if errors.Is(rerr, io.EOF) {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}

// byteInput is a buffered byte Input over an io.ReadCloser.
type byteInput struct {
	r *bufio.Reader
	c io.Closer
}

// NewByteInput returns a buffered byte Input that closes rc on Close.
func NewByteInput(rc io.ReadCloser) Input[byte] {
	return &byteInput{r: bufio.NewReader(rc), c: rc}
}

func (b *byteInput) Read(p []byte) (int, error) { return b.r.Read(p) }
func (b *byteInput) Close() error               { return b.c.Close() }

// byteOutput is a buffered byte Output over an io.WriteCloser.
type byteOutput struct {
	w *bufio.Writer
	c io.Closer
}

// NewByteOutput returns a buffered byte Output that flushes and closes wc on
// Close.
func NewByteOutput(wc io.WriteCloser) Output[byte] {
	return &byteOutput{w: bufio.NewWriter(wc), c: wc}
}

func (b *byteOutput) Write(p []byte) (int, error) { return b.w.Write(p) }

func (b *byteOutput) Close() error {
	return closeAfterFlush(b.w, b.c)
}

// charInput decodes UTF-8 characters from a buffered reader.
type charInput struct {
	r *bufio.Reader
	c io.Closer
}

// NewCharInput returns a character Input decoding UTF-8 from rc. Invalid
// sequences decode to utf8.RuneError.
func NewCharInput(rc io.ReadCloser) Input[rune] {
	return &charInput{r: bufio.NewReader(rc), c: rc}
}

// Read decodes up to len(p) characters. It stops early rather than block once
// at least one character was decoded and nothing more is buffered.
func (c *charInput) Read(p []rune) (int, error) {
	n := 0
	for n < len(p) {
		r, _, err := c.r.ReadRune()
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		p[n] = r
		n++
		if c.r.Buffered() == 0 {
			break
		}
	}
	return n, nil
}

func (c *charInput) Close() error { return c.c.Close() }

// charOutput encodes characters as UTF-8 into a buffered writer.
type charOutput struct {
	w *bufio.Writer
	c io.Closer
}

// NewCharOutput returns a character Output encoding UTF-8 into wc.
func NewCharOutput(wc io.WriteCloser) Output[rune] {
	return &charOutput{w: bufio.NewWriter(wc), c: wc}
}

func (c *charOutput) Write(p []rune) (int, error) {
	for i, r := range p {
		if _, err := c.w.WriteRune(r); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (c *charOutput) Close() error {
	return closeAfterFlush(c.w, c.c)
}

// closeAfterFlush flushes w and always closes c, returning the first error.
func closeAfterFlush(w *bufio.Writer, c io.Closer) error {
	ferr := w.Flush()
	cerr := c.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}
