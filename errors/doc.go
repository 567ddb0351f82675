// Package errors provides the structured errors returned by fileurl.
//
// Most filesystem operations on a fileurl.Path report failure with a boolean,
// because failing to delete or rename a file is routine. The operations that
// do return errors (resolving the working directory, creating temp files,
// opening streams, restoring writability) return a PlatformError carrying an
// ErrorCode, a classification and optional context such as the path involved.
//
// PlatformError is compatible with the standard library errors package:
//
//	p, err := fileurl.Default().CurrentWorkingDirectory()
//	if errors.GetCode(err) == errors.CodeInvalidConfig {
//	    // the process has no usable working directory
//	}
//
// Errors produced from io/fs failures keep the original cause in the chain, so
// errors.Is(err, fs.ErrPermission) keeps working after wrapping:
//
//	err := errors.FromFS(cause, "cannot open input")
//	if errors.Is(err, fs.ErrNotExist) {
//	    // ...
//	}
//
// # Error Codes
//
//   - Resource errors: CodeNotFound, CodeAlreadyExists, CodeConflict
//   - Permission errors: CodeForbidden
//   - Validation errors: CodeInvalidInput, CodeInvalidConfig
//   - I/O errors: CodeIO
//   - System errors: CodeInternal, CodeNotImplemented, CodeUnavailable
//   - Generic: CodeUnknown
//
// # Classification
//
// Every code has a default classification (retryable or permanent). Nothing in
// fileurl retries, the classification is informational for callers that do.
package errors
