package dirlog

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Logger appends formatted lines to one daily log file in its directory.
// Its status is decided at construction; a logger that is not open drops
// every write silently. It is safe for concurrent use.
type Logger struct {
	directory string
	path      string
	prefix    string
	extension string
	priority  Priority

	mu          sync.Mutex // protects status, file and diagnostics
	status      Status
	file        *os.File
	diagnostics []Diagnostic

	closeOnce sync.Once
	closeErr  error
}

// New creates a logger writing to <directory>/log_<YYYY-MM-DD>.txt with the
// given threshold. PriorityUnset selects DefaultPriority.
//
// New never fails: problems creating the directory or opening the file leave
// the logger in StatusOpenFailed with the reason in its diagnostics.
func New(directory string, priority Priority) *Logger {
	return newLogger(directory, priority, DefaultPrefix, DefaultExtension)
}

// NewWithConfig creates a logger from cfg. Empty fields take their defaults.
// Only an invalid configuration returns an error; file system problems are
// reported through Status and Diagnostics like New.
func NewWithConfig(cfg *LoggerConfig) (*Logger, error) {
	merged := mergeConfig(cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	priority, err := merged.Priority()
	if err != nil {
		return nil, err
	}
	return newLogger(merged.Directory, priority, merged.Prefix, merged.Extension), nil
}

func newLogger(directory string, priority Priority, prefix, ext string) *Logger {
	if priority == PriorityUnset {
		priority = DefaultPriority
	}

	l := &Logger{
		directory: normalizeDirectory(directory),
		prefix:    prefix,
		extension: ext,
		priority:  priority,
		status:    StatusClosed,
	}

	// OFF loggers never touch the file system.
	if priority == PriorityOff {
		return l
	}

	l.path = logFilePath(l.directory, prefix, ext, now())

	if err := ensureDirectory(l.directory); err != nil {
		l.enqueue(newDiagnostic(KindDirectoryUncreatable, msgDirectoryUncreatable, l.directory, err))
	}

	if fileExists(l.path) && !isWritable(l.path) {
		l.status = StatusOpenFailed
		l.enqueue(newDiagnostic(KindFileNotWritable, msgFileNotWritable, l.path, nil))
		return l
	}

	file, err := openLogFile(l.path)
	if err != nil {
		l.status = StatusOpenFailed
		l.enqueue(newDiagnostic(KindFileOpenFailed, msgFileOpenFailed, l.path, err))
		return l
	}

	l.file = file
	l.status = StatusOpen
	l.enqueue(newDiagnostic(KindOpened, msgOpened, l.path, nil))
	return l
}

// enqueue appends d to the diagnostic queue. Callers hold l.mu or own l exclusively.
func (l *Logger) enqueue(d Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
}

// Directory returns the normalized log directory.
func (l *Logger) Directory() string { return l.directory }

// Path returns the log file path, empty for an OFF logger.
func (l *Logger) Path() string { return l.path }

// Priority returns the threshold fixed at construction.
func (l *Logger) Priority() Priority { return l.priority }

// Status returns whether the log file is usable.
func (l *Logger) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Diagnostics returns a copy of the diagnostic queue, oldest first.
func (l *Logger) Diagnostics() []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Diagnostic, len(l.diagnostics))
	copy(out, l.diagnostics)
	return out
}

// Messages returns the diagnostic queue as plain strings, oldest first.
func (l *Logger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.diagnostics))
	for i, d := range l.diagnostics {
		out[i] = d.Message
	}
	return out
}

// Err joins every failure diagnostic queued so far, or returns nil.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []error
	for _, d := range l.diagnostics {
		if d.Failure() {
			errs = append(errs, d)
		}
	}
	return errors.Join(errs...)
}

// History lists the daily log files present in the logger's directory that
// share its naming scheme, oldest first.
func (l *Logger) History() ([]LogFile, error) {
	files, err := listLogFiles(l.directory, l.prefix, l.extension)
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}
	return files, nil
}

// Close releases the file handle. It is safe to call more than once; only the
// first call closes the file. Afterwards the logger is closed and drops writes.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		l.status = StatusClosed
		if l.file == nil {
			return
		}
		if err := l.file.Close(); err != nil {
			l.closeErr = fmt.Errorf("failed to close log file: %w", err)
		}
		l.file = nil
	})
	return l.closeErr
}
