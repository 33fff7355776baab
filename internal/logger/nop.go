package logger

// NoOpLogger discards everything. Tests and library defaults use it.
type NoOpLogger struct{}

func NewNop() Logger {
	return NoOpLogger{}
}

func (NoOpLogger) Debug(string, ...Field) {}
func (NoOpLogger) Info(string, ...Field)  {}
func (NoOpLogger) Warn(string, ...Field)  {}
func (NoOpLogger) Error(string, ...Field) {}
func (l NoOpLogger) With(...Field) Logger { return l }
func (NoOpLogger) Sync() error            { return nil }
