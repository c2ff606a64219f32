// Package quick provides package-level logging calls over the default logger
// of the process-wide registry.
package quick

import (
	"fmt"
	"strings"

	"github.com/LixenWraith/dirlog"
)

// Debug logs a debug message to the default logger.
// Arguments are stringified and joined with spaces.
func Debug(args ...any) {
	dirlog.Default().Debug(join(args))
}

// Info logs an info message to the default logger.
func Info(args ...any) {
	dirlog.Default().Info(join(args))
}

// Warn logs a warning message to the default logger.
func Warn(args ...any) {
	dirlog.Default().Warn(join(args))
}

// Error logs an error message to the default logger.
func Error(args ...any) {
	dirlog.Default().Error(join(args))
}

// Fatal logs a fatal message to the default logger. It does not exit.
func Fatal(args ...any) {
	dirlog.Default().Fatal(join(args))
}

// Log writes a message with an arbitrary priority.
func Log(priority dirlog.Priority, args ...any) {
	dirlog.Default().Log(join(args), priority)
}

// Message writes a raw line without timestamp and label.
func Message(args ...any) {
	dirlog.Default().WriteFreeFormLine(join(args) + "\n")
}

// Config creates the logger described by "key=value" statements in the
// process-wide registry and returns it.
// e.g. quick.Config("directory=./logs", "level=info")
//
// When it is the first logger of the registry it becomes the default used by
// the other functions of this package.
func Config(args ...string) (*dirlog.Logger, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no config provided")
	}

	cfg, err := config(args...)
	if err != nil {
		return nil, err
	}

	return dirlog.DefaultRegistry().GetWithConfig(cfg)
}

// Shutdown closes every logger of the process-wide registry.
func Shutdown() {
	_ = dirlog.Shutdown()
}

// join converts each argument to text and separates them with spaces.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = stringify(arg)
	}
	return strings.Join(parts, " ")
}

// stringify converts any type to a string representation
func stringify(msg any) string {
	switch m := msg.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("%+v", m)
	}
}
