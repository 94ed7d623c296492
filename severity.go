package klaxon

// Severity classifies the importance of a log event.
//
// Info and Warning are purely informational. Error is recoverable but bumps
// the process-wide error tally and fires the breakpoint trap. Fatal always
// reaches a console sink and terminates the process.
type Severity int

const (
	// Info is a non-error informative message.
	Info Severity = iota
	// Warning is a non-error warning message.
	Warning
	// Error is a recoverable error message.
	Error
	// Fatal is a non-recoverable error message. Routing a Fatal event
	// never returns: the process terminates after dispatch.
	Fatal
)

// String returns the label rendered in the log header.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL ERROR"
	default:
		return "UNKNOWN"
	}
}
