package dirlog

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Registry hands out one Logger per log directory. The first logger it
// creates also serves lookups that name no directory. Entries are never
// evicted. It is safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	loggers    map[string]*Logger
	first      *Logger
	defaultDir string
}

// NewRegistry creates an empty registry. defaultDir is used for the first
// lookup without a directory; empty selects DefaultDirectory.
func NewRegistry(defaultDir string) *Registry {
	if defaultDir == "" {
		defaultDir = DefaultDirectory()
	}
	return &Registry{
		loggers:    make(map[string]*Logger),
		defaultDir: normalizeDirectory(defaultDir),
	}
}

// DefaultDirectory returns the directory of the running executable, or the
// working directory when it cannot be determined.
func DefaultDirectory() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Get returns the logger for directory, creating it with priority on first use.
//
// An empty directory returns the first logger ever created by the registry,
// or creates one in the default directory. A logger that already exists is
// returned unchanged even if priority differs from its threshold.
// PriorityUnset selects DefaultPriority.
func (r *Registry) Get(directory string, priority Priority) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if directory == "" {
		if r.first != nil {
			return r.first
		}
		directory = r.defaultDir
	}

	return r.getLocked(directory, func(dir string) *Logger {
		return New(dir, priority)
	})
}

// GetWithConfig is Get for a full configuration. The configuration only
// applies when the logger for its directory does not exist yet.
func (r *Registry) GetWithConfig(cfg *LoggerConfig) (*Logger, error) {
	merged := mergeConfig(cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	priority, err := merged.Priority()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	directory := merged.Directory
	if directory == "" {
		if r.first != nil {
			return r.first, nil
		}
		directory = r.defaultDir
	}

	return r.getLocked(directory, func(dir string) *Logger {
		return newLogger(dir, priority, merged.Prefix, merged.Extension)
	}), nil
}

// getLocked returns the registered logger for directory or registers the one
// built by create. r.mu must be held.
func (r *Registry) getLocked(directory string, create func(dir string) *Logger) *Logger {
	key := normalizeDirectory(directory)
	if l, ok := r.loggers[key]; ok {
		return l
	}

	l := create(key)
	r.loggers[key] = l
	if r.first == nil {
		r.first = l
	}
	return l
}

// Lookup returns the logger registered for directory without creating one.
func (r *Registry) Lookup(directory string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[normalizeDirectory(directory)]
	return l, ok
}

// Len returns the number of registered loggers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loggers)
}

// Close closes every registered logger. Loggers stay registered and keep
// dropping writes afterwards.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, l := range r.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
