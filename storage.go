package dirlog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Permissions for created directories and files, before umask.
const (
	defaultDirMode  fs.FileMode = 0777
	defaultFileMode fs.FileMode = 0666
)

// LogFile describes one daily log file found in a log directory.
type LogFile struct {
	Name    string
	Path    string
	Day     time.Time
	Size    int64
	ModTime time.Time
}

// isWritable checks an existing log file before it is opened. Tests replace it.
var isWritable = accessWritable

// normalizeDirectory strips trailing separators and cleans the path.
// The filesystem root stays as is and an empty directory means ".".
func normalizeDirectory(dir string) string {
	return filepath.Clean(dir)
}

// ensureDirectory creates dir and its parents when it does not exist yet.
func ensureDirectory(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.MkdirAll(dir, defaultDirMode)
}

// fileExists reports whether something exists at path.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// listLogFiles returns the daily log files in dir matching prefix and ext,
// oldest day first. Files whose date part does not parse are skipped.
func listLogFiles(dir, prefix, ext string) ([]LogFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	suffix := ""
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		suffix = "." + ext
	}

	var logs []LogFile
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(fname, prefix) || !strings.HasSuffix(fname, suffix) {
			continue
		}

		datePart := strings.TrimSuffix(strings.TrimPrefix(fname, prefix), suffix)
		day, err := time.ParseInLocation(dateLayout, datePart, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		logs = append(logs, LogFile{
			Name:    fname,
			Path:    filepath.Join(dir, fname),
			Day:     day,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Day.Before(logs[j].Day)
	})
	return logs, nil
}
