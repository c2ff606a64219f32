package dirlog

// Status tells whether a logger's file handle is usable.
// It is decided at construction and changes only once more: Close moves an
// open or failed logger to StatusClosed.
type Status int

const (
	StatusOpen       Status = 1 // handle open, writes go to the file
	StatusOpenFailed Status = 2 // construction could not open the file
	StatusClosed     Status = 3 // inert: priority OFF, or closed
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusOpenFailed:
		return "open_failed"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}
