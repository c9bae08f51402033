package calculation

// Logger receives the progress messages of the engine. The calculators
// themselves never log.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

// NopLogger discards everything and is the engine's default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
