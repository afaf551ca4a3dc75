package primary

// Logger is the logging port used across services and adapters. Args are
// alternating key/value pairs, zap sugared style.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}
