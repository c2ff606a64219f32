package dirlog

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// generateLogFileName returns "<prefix><YYYY-MM-DD>.<ext>" for the given day.
func generateLogFileName(prefix, ext string, day time.Time) string {
	ext = strings.TrimPrefix(ext, ".")
	name := prefix + day.Format(dateLayout)
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// logFilePath joins the daily file name onto the log directory.
func logFilePath(dir, prefix, ext string, day time.Time) string {
	return filepath.Join(dir, generateLogFileName(prefix, ext, day))
}

// openLogFile opens path for appending, creating it if needed.
// Errors are the *fs.PathError from the open.
func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFileMode)
}
