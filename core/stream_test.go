package core_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileurl/core"
)

// closeRecorder is an io.ReadWriteCloser over a buffer that records Close.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestPump_Bytes(t *testing.T) {
	src := &closeRecorder{}
	src.WriteString(strings.Repeat("abc", 50000))
	dst := &closeRecorder{}

	in := core.NewByteInput(src)
	out := core.NewByteOutput(dst)

	n, err := core.Pump(in, out)
	require.NoError(t, err)
	require.Equal(t, int64(150000), n)
	require.NoError(t, out.Close())
	require.NoError(t, in.Close())

	assert.Equal(t, strings.Repeat("abc", 50000), dst.String())
	assert.True(t, src.closed)
	assert.True(t, dst.closed)
}

func TestPump_Empty(t *testing.T) {
	n, err := core.Pump(core.NewByteInput(&closeRecorder{}), core.NewByteOutput(&closeRecorder{}))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestPump_Chars(t *testing.T) {
	src := &closeRecorder{}
	src.WriteString("héllo, wörld ✓")
	dst := &closeRecorder{}

	out := core.NewCharOutput(dst)
	n, err := core.Pump(core.NewCharInput(src), out)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	assert.Equal(t, int64(len([]rune("héllo, wörld ✓"))), n)
	assert.Equal(t, "héllo, wörld ✓", dst.String())
}

// failingOutput rejects every write.
type failingOutput struct{}

func (failingOutput) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingOutput) Close() error              { return nil }

func TestPump_WriteError(t *testing.T) {
	src := &closeRecorder{}
	src.WriteString("data")

	n, err := core.Pump[byte](core.NewByteInput(src), failingOutput{})
	require.EqualError(t, err, "disk full")
	require.Zero(t, n)
}

func TestCharInput_ReadEOF(t *testing.T) {
	src := &closeRecorder{}
	src.WriteString("ab")
	in := core.NewCharInput(src)

	buf := make([]rune, 8)
	n, err := in.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []rune("ab"), buf[:n])

	n, err = in.Read(buf)
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestByteOutput_CloseFlushes(t *testing.T) {
	dst := &closeRecorder{}
	out := core.NewByteOutput(dst)

	_, err := out.Write([]byte("buffered"))
	require.NoError(t, err)
	assert.Empty(t, dst.String(), "bytes should stay buffered until Close")

	require.NoError(t, out.Close())
	assert.Equal(t, "buffered", dst.String())
}
