package dirlog

import (
	"strconv"
	"time"
)

// now is the clock used for timestamps and file names. Tests replace it.
var now = time.Now

// Date layouts. The hour is appended separately since Go layouts have no
// unpadded 24-hour token.
const (
	dateLayout    = "2006-01-02"
	minutesLayout = ":04:05"
)

// appendTimestamp appends t as "YYYY-MM-DD H:MM:SS" (24-hour, no leading zero on the hour).
func appendTimestamp(buf []byte, t time.Time) []byte {
	buf = t.AppendFormat(buf, dateLayout)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(t.Hour()), 10)
	return t.AppendFormat(buf, minutesLayout)
}

// formatTimestamp returns the timestamp used at the start of a log line.
func formatTimestamp(t time.Time) string {
	return string(appendTimestamp(make([]byte, 0, 20), t))
}

// formatLine builds "<timestamp> - <LABEL> --> <line> \n".
// Unknown priorities use the generic LOG label.
func formatLine(t time.Time, priority Priority, line string) string {
	buf := make([]byte, 0, 32+len(line))
	buf = appendTimestamp(buf, t)
	buf = append(buf, " - "...)
	buf = append(buf, priority.label()...)
	buf = append(buf, " --> "...)
	buf = append(buf, line...)
	buf = append(buf, " \n"...)
	return string(buf)
}
