package dirlog

import "sync"

// Process-wide registry behind the package-level functions, created on first use.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry("")
	}
	return defaultRegistry
}

// SetDefaultRegistry replaces the process-wide registry and returns the
// previous one, nil if none was created yet. A nil r makes the next use
// create a fresh registry. Loggers of the previous registry stay open.
func SetDefaultRegistry(r *Registry) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultRegistry
	defaultRegistry = r
	return prev
}

// GetLogger returns the logger for directory from the process-wide registry.
// See Registry.Get.
func GetLogger(directory string, priority Priority) *Logger {
	return DefaultRegistry().Get(directory, priority)
}

// Default returns the first logger of the process-wide registry, creating
// one in DefaultDirectory if none exists.
func Default() *Logger {
	return DefaultRegistry().Get("", PriorityUnset)
}

// Shutdown closes every logger of the process-wide registry.
func Shutdown() error {
	return DefaultRegistry().Close()
}
