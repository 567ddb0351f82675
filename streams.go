package fileurl

import (
	"io"

	"github.com/jmgilman/go/fileurl/core"
	"github.com/jmgilman/go/fileurl/errors"
)

// ByteStreams opens buffered byte streams on paths.
type ByteStreams struct{}

// OpenInput opens the file at p for reading bytes.
func (ByteStreams) OpenInput(p *Path) (core.Input[byte], error) {
	f, err := p.Handle().OpenRead()
	if err != nil {
		return nil, err
	}
	return core.NewByteInput(f), nil
}

// OpenOutput opens the file at p for writing bytes, creating it if needed.
func (ByteStreams) OpenOutput(p *Path, appending bool) (core.Output[byte], error) {
	f, err := p.Handle().OpenWrite(appending, p.factory.filePerm)
	if err != nil {
		return nil, err
	}
	return core.NewByteOutput(f), nil
}

// CharStreams opens buffered UTF-8 character streams on paths.
type CharStreams struct{}

// OpenInput opens the file at p for reading characters.
func (CharStreams) OpenInput(p *Path) (core.Input[rune], error) {
	f, err := p.Handle().OpenRead()
	if err != nil {
		return nil, err
	}
	return core.NewCharInput(f), nil
}

// OpenOutput opens the file at p for writing characters, creating it if
// needed.
func (CharStreams) OpenOutput(p *Path, appending bool) (core.Output[rune], error) {
	f, err := p.Handle().OpenWrite(appending, p.factory.filePerm)
	if err != nil {
		return nil, err
	}
	return core.NewCharOutput(f), nil
}

var (
	_ core.Reader[*Path, byte] = ByteStreams{}
	_ core.Writer[*Path, byte] = ByteStreams{}
	_ core.Reader[*Path, rune] = CharStreams{}
	_ core.Writer[*Path, rune] = CharStreams{}
)

// Copy pumps every element of src into dst, truncating dst, and returns the
// number of elements transferred. Both streams are closed before it returns.
func Copy[E core.Element](src, dst *Path, r core.Reader[*Path, E], w core.Writer[*Path, E]) (n int64, err error) {
	in, err := r.OpenInput(src)
	if err != nil {
		return 0, errors.WithContext(errors.FromFS(err, "failed to open source"), "path", src.String())
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = errors.FromFS(cerr, "failed to close source")
		}
	}()

	out, err := w.OpenOutput(dst, false)
	if err != nil {
		return 0, errors.WithContext(errors.FromFS(err, "failed to open destination"), "path", dst.String())
	}

	n, err = core.Pump(in, out)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return n, errors.WithContext(errors.FromFS(err, "copy failed"), "path", dst.String())
	}
	return n, nil
}

// ReadString reads the whole file at p as UTF-8 text.
func ReadString(p *Path) (s string, err error) {
	in, err := CharStreams{}.OpenInput(p)
	if err != nil {
		return "", errors.WithContext(errors.FromFS(err, "failed to open file"), "path", p.String())
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = errors.FromFS(cerr, "failed to close file")
		}
	}()

	var text []rune
	buf := make([]rune, 4096)
	for {
		n, rerr := in.Read(buf)
		text = append(text, buf[:n]...)
		if errors.Is(rerr, io.EOF) {
			return string(text), nil
		}
		if rerr != nil {
			return "", errors.WithContext(errors.FromFS(rerr, "failed to read file"), "path", p.String())
		}
	}
}

// WriteString writes s to the file at p as UTF-8 text, replacing its
// contents unless appending.
func WriteString(p *Path, s string, appending bool) error {
	out, err := CharStreams{}.OpenOutput(p, appending)
	if err != nil {
		return errors.WithContext(errors.FromFS(err, "failed to open file"), "path", p.String())
	}
	if _, err := out.Write([]rune(s)); err != nil {
		_ = out.Close()
		return errors.WithContext(errors.FromFS(err, "failed to write file"), "path", p.String())
	}
	if err := out.Close(); err != nil {
		return errors.WithContext(errors.FromFS(err, "failed to flush file"), "path", p.String())
	}
	return nil
}
