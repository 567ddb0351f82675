// Package sftp provides a core.FS backed by a remote host over SFTP,
// using github.com/pkg/sftp.
//
// Connection setup (SSH authentication, pooling) is left to the caller, who
// hands in a ready *sftp.Client:
//
//	conn, _ := ssh.Dial("tcp", "host:22", config)
//	client, _ := sftp.NewClient(conn)
//	remote := fsftp.NewSFTP(client, fsftp.WithRoot("/srv/data"))
//	f := fileurl.New(fileurl.WithFS(remote))
//
// Remote paths are absolute and slash separated. Handles on a remote
// filesystem and handles on the local disk never rename into each other;
// fileurl's MoveTo falls back to streaming the bytes.
//
// The SFTP protocol carries modification times with one-second precision.
package sftp
