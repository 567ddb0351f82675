package errors

import (
	stderrors "errors"
	"io/fs"
)

// CodeFromFS maps an io/fs style error to an ErrorCode.
//
//	fs.ErrNotExist           -> CodeNotFound
//	fs.ErrExist              -> CodeAlreadyExists
//	fs.ErrPermission         -> CodeForbidden
//	errors.ErrUnsupported    -> CodeNotImplemented
//	fs.ErrInvalid            -> CodeInvalidInput
//	fs.ErrClosed             -> CodeIO
//
// A PlatformError keeps its own code. Anything else is CodeUnknown.
func CodeFromFS(err error) ErrorCode {
	var platformErr PlatformError
	switch {
	case err == nil:
		return CodeUnknown
	case stderrors.As(err, &platformErr):
		return platformErr.Code()
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeNotImplemented
	case stderrors.Is(err, fs.ErrInvalid):
		return CodeInvalidInput
	case stderrors.Is(err, fs.ErrClosed):
		return CodeIO
	default:
		return CodeUnknown
	}
}

// FromFS wraps a filesystem error with the code chosen by CodeFromFS.
// When the cause is a *fs.PathError its path is added to the context.
// Returns nil if err is nil.
//
// Example:
//
//	if err := native.Chmod(name, mode); err != nil {
//	    return errors.FromFS(err, "failed to change mode")
//	}
func FromFS(err error, message string) PlatformError {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, CodeFromFS(err), message)
	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return WithContext(wrapped, "path", pathErr.Path)
	}
	return wrapped
}
