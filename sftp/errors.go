package sftp

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pkg/sftp"
)

// SFTP status codes (draft-ietf-secsh-filexfer-02, section 7).
const (
	statusNoSuchFile       = 2
	statusPermissionDenied = 3
	statusOpUnsupported    = 8
)

// translate converts SFTP status errors to io/fs errors.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var status *sftp.StatusError
	if errors.As(err, &status) {
		switch status.Code {
		case statusNoSuchFile:
			return fs.ErrNotExist
		case statusPermissionDenied:
			return fs.ErrPermission
		case statusOpUnsupported:
			return errors.ErrUnsupported
		}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fs.ErrNotExist
	case errors.Is(err, fs.ErrPermission):
		return fs.ErrPermission
	}
	return fmt.Errorf("sftp: %w", err)
}

// pathError wraps a translated error in a *fs.PathError. It returns nil for a
// nil error.
func pathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: name, Err: translate(err)}
}
