package dirlog

// Debug writes line with PriorityDebug.
func (l *Logger) Debug(line string) {
	l.Log(line, PriorityDebug)
}

// Info writes line with PriorityInfo.
func (l *Logger) Info(line string) {
	l.Log(line, PriorityInfo)
}

// Warn writes line with PriorityWarn.
func (l *Logger) Warn(line string) {
	l.Log(line, PriorityWarn)
}

// Error writes line with PriorityError.
func (l *Logger) Error(line string) {
	l.Log(line, PriorityError)
}

// Fatal writes line with PriorityFatal. It does not exit the program.
func (l *Logger) Fatal(line string) {
	l.Log(line, PriorityFatal)
}

// Log writes line with the given priority if it is at or above the logger's
// threshold. Priorities outside the enumeration are filtered by their numeric
// value and tagged with the generic LOG label.
func (l *Logger) Log(line string, priority Priority) {
	if priority < l.priority {
		return
	}
	l.WriteFreeFormLine(formatLine(now(), priority, line))
}

// WriteFreeFormLine writes line to the log file exactly as given, without a
// timestamp, label or newline. Writes are dropped unless the logger is open.
// A failed write is queued as a KindWriteFailed diagnostic and never retried.
func (l *Logger) WriteFreeFormLine(line string) {
	_, _ = l.write([]byte(line))
}

// Write implements io.Writer over the free-form path, so a Logger can back
// a standard library logger. Dropped writes report success; a failed write
// returns the OS error after queuing its diagnostic.
func (l *Logger) Write(p []byte) (int, error) {
	return l.write(p)
}

func (l *Logger) write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.status != StatusOpen || l.priority == PriorityOff || l.file == nil {
		return len(p), nil
	}

	n, err := l.file.Write(p)
	if err != nil {
		l.enqueue(newDiagnostic(KindWriteFailed, msgWriteFailed, l.path, err))
		return n, err
	}
	return n, nil
}
