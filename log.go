package marquee

import "go.uber.org/zap"

// newLogger returns the diagnostic logger for an instance. Develop mode uses
// the supplied logger, falling back to zap's development preset; otherwise
// logging is a no-op.
func newLogger(cfg *Config) *zap.Logger {
	if !cfg.Develop {
		return zap.NewNop()
	}
	if cfg.Logger != nil {
		return cfg.Logger
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("marquee")
}

// zapFloat is a shorthand for the measured-value fields every event log line
// carries.
func zapFloat(key string, v float64) zap.Field {
	return zap.Float64(key, v)
}
