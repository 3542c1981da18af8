package model

//
// Logger
//

// Logger is the logger used by the tracker and its transport. Request
// and response traces go to Debugf and delivery failures go to Warnf.
//
// Both `log.Log` in `apex/log` and [*log.Entry] implement this interface.
type Logger interface {
	// Debugf formats and emits a trace message.
	Debugf(format string, v ...any)

	// Warnf formats and emits a message about a failure we tolerate.
	Warnf(format string, v ...any)
}

// DiscardLogger is the logger a [Logger] consumer falls back to when
// none is configured.
var DiscardLogger Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debugf(format string, v ...any) {}

func (discardLogger) Warnf(format string, v ...any) {}

// ValidLoggerOrDefault returns logger when it is not nil and
// [DiscardLogger] otherwise.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger == nil {
		return DiscardLogger
	}
	return logger
}

// ErrorToStringOrOK returns "ok" for a nil error and the error
// message otherwise, which is handy for status fields.
func ErrorToStringOrOK(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}
