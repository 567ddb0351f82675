package sftp_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/sftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileurl"
	"github.com/jmgilman/go/fileurl/billy"
	"github.com/jmgilman/go/fileurl/core"
	"github.com/jmgilman/go/fileurl/fstest"
	fsftp "github.com/jmgilman/go/fileurl/sftp"
)

// newClient starts an in-process SFTP server over pipes and returns a client
// connected to it. The server serves the local disk.
func newClient(t *testing.T) *sftp.Client {
	t.Helper()

	clientRead, serverWrite := io.Pipe()
	serverRead, clientWrite := io.Pipe()

	server, err := sftp.NewServer(struct {
		io.Reader
		io.WriteCloser
	}{serverRead, serverWrite})
	require.NoError(t, err)
	go func() { _ = server.Serve() }()

	client, err := sftp.NewClientPipe(clientRead, clientWrite)
	require.NoError(t, err)

	// Closing the server first ends the client's receive loop, which
	// client.Close waits for.
	t.Cleanup(func() {
		_ = server.Close()
		_ = client.Close()
		_ = serverRead.Close()
	})
	return client
}

func TestSession_ShutsDown(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		t.Run("Session", func(t *testing.T) {
			_, err := fsftp.NewSFTP(newClient(t)).Stat("/")
			require.NoError(t, err)
		})
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("SFTP session cleanup did not return")
	}
}

func TestSFTPFS(t *testing.T) {
	client := newClient(t)
	fstest.TestSuite(t, func() core.FS {
		return fsftp.NewSFTP(client, fsftp.WithRoot(t.TempDir()))
	})
}

func TestSFTPFS_Type(t *testing.T) {
	remote := fsftp.NewSFTP(newClient(t))
	assert.Equal(t, core.FSTypeRemote, remote.Type())
	assert.NotNil(t, remote.Client())
}

func TestSFTPFS_RootMapsToHost(t *testing.T) {
	dir := t.TempDir()
	remote := fsftp.NewSFTP(newClient(t), fsftp.WithRoot(dir))

	f, err := remote.OpenFile("/hello.txt", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	require.NoError(t, err)
	_, err = f.Write([]byte("over the wire"))
	require.NoError(t, err)
	assert.Equal(t, "/hello.txt", f.Name())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "over the wire", string(data))

	info, err := os.Stat(filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSFTPFS_Paths(t *testing.T) {
	remote := fsftp.NewSFTP(newClient(t), fsftp.WithRoot(t.TempDir()))
	f := fileurl.New(fileurl.WithFS(remote))

	root := f.Append("project")
	require.True(t, root.Append("src").Mkdir(true))
	require.NoError(t, fileurl.WriteString(root.Append("src").Append("main.go"), "package main\n", false))
	require.NoError(t, fileurl.WriteString(root.Append("README"), "hi", false))

	var got []string
	for p := range root.Descendants() {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"/project/README", "/project/src", "/project/src/main.go"}, got)

	require.True(t, root.Delete(true))
	assert.False(t, root.Exists())
}

func TestSFTPFS_MoveFromLocal(t *testing.T) {
	remote := fileurl.New(fileurl.WithFS(fsftp.NewSFTP(newClient(t), fsftp.WithRoot(t.TempDir()))))
	local := fileurl.New(fileurl.WithFS(billy.NewLocal(billy.WithRoot(t.TempDir()))))

	src := local.Append("upload.bin")
	dst := remote.Append("upload.bin")
	require.NoError(t, fileurl.WriteString(src, "payload", false))

	require.True(t, src.MoveTo(dst), "rename fails across filesystems, copy and delete succeed")
	assert.False(t, src.Exists())

	got, err := fileurl.ReadString(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
}
