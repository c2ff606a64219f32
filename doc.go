// Package dirlog provides a minimal file-backed logger that appends timestamped,
// priority-filtered text lines to one daily log file per directory.
//
// Features:
//   - One Logger per log directory, handed out by a Registry
//   - Lazy creation of the log directory and the log file
//   - Priority threshold filtering (DEBUG through FATAL, OFF disables a logger)
//   - Daily file naming: <dir>/log_<YYYY-MM-DD>.txt
//   - Fail-open writes: failures never reach the caller, they are queued as
//     typed diagnostics that can be inspected later
//   - Free-form (unformatted) writes and an io.Writer adapter
//   - Thread-safe write path and registry
//
// A line written through one of the level calls looks like:
//
//	2024-03-07 9:05:01 - INFO --> service started
//
// Basic usage:
//
//	reg := dirlog.NewRegistry("")
//	defer reg.Close()
//
//	l := reg.Get("/var/log/myapp", dirlog.PriorityInfo)
//	l.Info("service started")
//	l.Debug("dropped, below threshold")
//
//	if l.Status() != dirlog.StatusOpen {
//		for _, d := range l.Diagnostics() {
//			fmt.Fprintln(os.Stderr, d)
//		}
//	}
//
// The package-level functions GetLogger, Default and Shutdown operate on a
// process-wide registry for programs that do not want to pass one around.
package dirlog
