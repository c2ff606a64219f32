package dirlog

import (
	"errors"
	"time"
)

// DiagnosticKind classifies an entry in a logger's diagnostic queue.
type DiagnosticKind int

const (
	KindOpened               DiagnosticKind = iota // informational: file opened
	KindDirectoryUncreatable                       // log directory could not be created
	KindFileNotWritable                            // file exists but is not writable
	KindFileOpenFailed                             // file could not be opened for append
	KindWriteFailed                                // a write to the open file failed
)

// Sentinel errors matched by errors.Is against a Diagnostic of the same kind.
var (
	ErrDirectoryUncreatable = errors.New("log directory could not be created")
	ErrFileNotWritable      = errors.New("log file not writable")
	ErrFileOpenFailed       = errors.New("log file could not be opened")
	ErrWriteFailed          = errors.New("log file write failed")
)

// Human-readable notices queued for each kind.
const (
	msgOpened               = "The log file was opened successfully."
	msgDirectoryUncreatable = "The log directory could not be created. Check permissions."
	msgFileNotWritable      = "The file exists, but could not be opened for writing. Check that appropriate permissions have been set."
	msgFileOpenFailed       = "The file could not be opened. Check permissions."
	msgWriteFailed          = "The file could not be written to. Check that appropriate permissions have been set."
)

func (k DiagnosticKind) String() string {
	switch k {
	case KindOpened:
		return "opened"
	case KindDirectoryUncreatable:
		return "directory_uncreatable"
	case KindFileNotWritable:
		return "file_not_writable"
	case KindFileOpenFailed:
		return "file_open_failed"
	case KindWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// sentinel returns the error matched by the kind, nil for informational kinds.
func (k DiagnosticKind) sentinel() error {
	switch k {
	case KindDirectoryUncreatable:
		return ErrDirectoryUncreatable
	case KindFileNotWritable:
		return ErrFileNotWritable
	case KindFileOpenFailed:
		return ErrFileOpenFailed
	case KindWriteFailed:
		return ErrWriteFailed
	default:
		return nil
	}
}

// Diagnostic is a notice about the logger's own operation.
// Failure diagnostics satisfy errors.Is with the matching Err* sentinel.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Path    string    // file or directory the notice is about
	Err     error     // underlying OS error, if any
	Time    time.Time // when the notice was queued
}

func newDiagnostic(kind DiagnosticKind, msg, path string, err error) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Message: msg,
		Path:    path,
		Err:     err,
		Time:    now(),
	}
}

// Failure reports whether the diagnostic records a failure rather than a notice.
func (d Diagnostic) Failure() bool {
	return d.Kind.sentinel() != nil
}

func (d Diagnostic) Error() string {
	if d.Err != nil {
		return d.Message + ": " + d.Err.Error()
	}
	return d.Message
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

func (d Diagnostic) Is(target error) bool {
	s := d.Kind.sentinel()
	return s != nil && s == target
}
