package dirlog

import (
	"path/filepath"
	"sync"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	t.Run("same directory returns the same logger", func(t *testing.T) {
		reg := NewRegistry(t.TempDir())
		defer reg.Close()
		dir := t.TempDir()

		first := reg.Get(dir, PriorityInfo)
		second := reg.Get(dir, PriorityError)

		if first != second {
			t.Fatal("expected the identical logger for the same directory")
		}
		if second.Priority() != PriorityInfo {
			t.Errorf("Priority() = %s, construction priority must win", second.Priority())
		}
		if reg.Len() != 1 {
			t.Errorf("Len() = %d, want 1", reg.Len())
		}
	})

	t.Run("trailing separator names the same directory", func(t *testing.T) {
		reg := NewRegistry(t.TempDir())
		defer reg.Close()
		dir := t.TempDir()

		if reg.Get(dir, PriorityDebug) != reg.Get(dir+string(filepath.Separator), PriorityDebug) {
			t.Error("expected the identical logger with and without trailing separator")
		}
	})

	t.Run("different directories get different loggers", func(t *testing.T) {
		reg := NewRegistry(t.TempDir())
		defer reg.Close()

		a := reg.Get(t.TempDir(), PriorityDebug)
		b := reg.Get(t.TempDir(), PriorityDebug)
		if a == b {
			t.Error("expected distinct loggers")
		}
		if reg.Len() != 2 {
			t.Errorf("Len() = %d, want 2", reg.Len())
		}
	})

	t.Run("no directory before any logger uses the default directory", func(t *testing.T) {
		defaultDir := filepath.Join(t.TempDir(), "default")
		reg := NewRegistry(defaultDir)
		defer reg.Close()

		l := reg.Get("", PriorityUnset)
		if l.Directory() != defaultDir {
			t.Errorf("Directory() = %q, want %q", l.Directory(), defaultDir)
		}
		if l.Priority() != PriorityDebug {
			t.Errorf("Priority() = %s, want DEBUG", l.Priority())
		}
		if l.Status() != StatusOpen {
			t.Errorf("Status() = %s, want open", l.Status())
		}
		if got, ok := reg.Lookup(defaultDir); !ok || got != l {
			t.Error("default logger is not registered under its directory")
		}
	})

	t.Run("no directory after a logger exists returns the first one", func(t *testing.T) {
		reg := NewRegistry(t.TempDir())
		defer reg.Close()

		first := reg.Get(t.TempDir(), PriorityWarn)
		reg.Get(t.TempDir(), PriorityInfo)

		if got := reg.Get("", PriorityError); got != first {
			t.Errorf("Get(\"\") = %s, want first logger %s", got.Directory(), first.Directory())
		}
		if reg.Len() != 2 {
			t.Errorf("Len() = %d, want 2", reg.Len())
		}
	})

	t.Run("OFF logger is registered and inert", func(t *testing.T) {
		reg := NewRegistry(t.TempDir())
		defer reg.Close()
		dir := t.TempDir()

		l := reg.Get(dir, PriorityOff)
		if l.Status() != StatusClosed {
			t.Errorf("Status() = %s, want closed", l.Status())
		}
		if reg.Get(dir, PriorityDebug) != l {
			t.Error("later lookup must not replace the OFF logger")
		}
	})
}

func TestRegistryGetWithConfig(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	defer reg.Close()
	dir := t.TempDir()

	l, err := reg.GetWithConfig(&LoggerConfig{Directory: dir, Level: "error", Extension: "log"})
	if err != nil {
		t.Fatalf("GetWithConfig failed: %v", err)
	}
	if filepath.Ext(l.Path()) != ".log" {
		t.Errorf("Path() = %q, want .log extension", l.Path())
	}

	again, err := reg.GetWithConfig(&LoggerConfig{Directory: dir, Level: "debug"})
	if err != nil {
		t.Fatalf("GetWithConfig failed: %v", err)
	}
	if again != l {
		t.Error("expected the identical logger for the same directory")
	}

	if got := reg.Get(dir, PriorityDebug); got != l {
		t.Error("Get and GetWithConfig disagree on the same directory")
	}

	if _, err := reg.GetWithConfig(&LoggerConfig{Directory: dir, Level: "nope"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	defer reg.Close()
	dir := t.TempDir()

	if _, ok := reg.Lookup(dir); ok {
		t.Fatal("Lookup found a logger before any Get")
	}
	if reg.Len() != 0 {
		t.Errorf("Lookup created a logger")
	}

	l := reg.Get(dir, PriorityDebug)
	if got, ok := reg.Lookup(dir); !ok || got != l {
		t.Error("Lookup did not return the registered logger")
	}
}

func TestRegistryClose(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	a := reg.Get(t.TempDir(), PriorityDebug)
	b := reg.Get(t.TempDir(), PriorityDebug)

	if err := reg.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	for _, l := range []*Logger{a, b} {
		if l.Status() != StatusClosed {
			t.Errorf("%s: Status() = %s, want closed", l.Directory(), l.Status())
		}
	}
	if err := reg.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestRegistryConcurrentGet(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	defer reg.Close()
	dir := t.TempDir()

	const workers = 16
	got := make([]*Logger, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := reg.Get(dir, PriorityDebug)
			l.Info("concurrent")
			got[i] = l
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d got a different logger", i)
		}
	}
	got[0].Close()

	lines := readLog(t, got[0])
	if n := countLines(lines); n != workers {
		t.Errorf("lines written = %d, want %d", n, workers)
	}
}

func countLines(s string) int {
	n := 0
	for _, c := range s {
		if c == '\n' {
			n++
		}
	}
	return n
}

func TestDefaultDirectory(t *testing.T) {
	if DefaultDirectory() == "" {
		t.Error("DefaultDirectory() is empty")
	}
	if NewRegistry("").defaultDir == "" {
		t.Error("registry without directory has no default")
	}
}
