package mocks

// Logger allows mocking a model.Logger.
type Logger struct {
	MockDebugf func(format string, v ...any)

	MockWarnf func(format string, v ...any)
}

// Debugf calls MockDebugf.
func (lo *Logger) Debugf(format string, v ...any) {
	lo.MockDebugf(format, v...)
}

// Warnf calls MockWarnf.
func (lo *Logger) Warnf(format string, v ...any) {
	lo.MockWarnf(format, v...)
}
