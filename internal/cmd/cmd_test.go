package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// executeCommand runs a fresh command tree with args and returns captured output
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// readLogDir returns the content of the single log file in dir.
func readLogDir(t *testing.T, dir, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one log file matching %s, found %v", pattern, matches)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	if root.Use != "dirlog" {
		t.Errorf("root.Use = %q, want dirlog", root.Use)
	}

	cmds := make(map[string]bool)
	for _, c := range root.Commands() {
		cmds[c.Name()] = true
	}
	for _, name := range []string{"debug", "info", "warn", "error", "fatal", "raw", "status"} {
		if !cmds[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestLevelCommand(t *testing.T) {
	line := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{1,2}:\d{2}:\d{2} - WARN --> disk almost full \n$`)

	t.Run("joins arguments into one line", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := executeCommand(t, "", "--dir", dir, "warn", "disk", "almost", "full"); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		if got := readLogDir(t, dir, "log_*.txt"); !line.MatchString(got) {
			t.Errorf("line %q does not match %s", got, line)
		}
	})

	t.Run("below threshold is dropped", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := executeCommand(t, "", "--dir", dir, "--level", "error", "warn", "ignored"); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		if got := readLogDir(t, dir, "log_*.txt"); got != "" {
			t.Errorf("file content = %q, want empty", got)
		}
	})

	t.Run("reads lines from piped input", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := executeCommand(t, "first\nsecond\n", "--dir", dir, "--ext", "log", "info"); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		got := readLogDir(t, dir, "log_*.log")
		if strings.Count(got, "\n") != 2 || !strings.Contains(got, "INFO --> first ") || !strings.Contains(got, "INFO --> second ") {
			t.Errorf("file content = %q", got)
		}
	})

	t.Run("piped line longer than the default scanner buffer", func(t *testing.T) {
		dir := t.TempDir()
		long := strings.Repeat("a", 70*1024)
		if _, err := executeCommand(t, long+"\nshort\n", "--dir", dir, "info"); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		got := readLogDir(t, dir, "log_*.txt")
		if !strings.Contains(got, "INFO --> "+long+" \n") || !strings.Contains(got, "INFO --> short ") {
			t.Errorf("long line not logged, file has %d bytes", len(got))
		}
	})

	t.Run("invalid level fails", func(t *testing.T) {
		if _, err := executeCommand(t, "", "--dir", t.TempDir(), "--level", "loud", "info", "x"); err == nil {
			t.Error("expected error for invalid level")
		}
	})
}

func TestRawCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := executeCommand(t, "", "--dir", dir, "--level", "fatal", "raw", "=====", "separator"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if got := readLogDir(t, dir, "log_*.txt"); got != "===== separator\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "dirlog.yaml")
	cfg := "directory: " + dir + "\nlevel: error\nprefix: app_\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := executeCommand(t, "", "--config", cfgPath, "error", "from config"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if got := readLogDir(t, dir, "app_*.txt"); !strings.Contains(got, "ERROR --> from config ") {
		t.Errorf("file content = %q", got)
	}
}

func TestStatusCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := executeCommand(t, "", "--dir", dir, "--level", "warn", "status")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	var report statusReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("status output is not YAML: %v\n%s", err, out)
	}

	if report.Directory != dir {
		t.Errorf("directory = %q, want %q", report.Directory, dir)
	}
	if report.Status != "open" {
		t.Errorf("status = %q, want open", report.Status)
	}
	if report.Priority != "WARN" {
		t.Errorf("priority = %q, want WARN", report.Priority)
	}
	if len(report.Diagnostics) != 1 || report.Diagnostics[0].Kind != "opened" {
		t.Errorf("diagnostics = %+v", report.Diagnostics)
	}
	if len(report.Files) != 1 {
		t.Errorf("files = %+v, want the current log file", report.Files)
	}
}
