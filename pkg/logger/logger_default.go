package logger

import "sync"

type LoggerArg struct {
	Key   string
	Value string
}

type GlobalLoggerConfig struct {
	Args []LoggerArg
}

var (
	defaultLogger *Logger
	onceLogger    sync.Once
)

func InitDefaultLogger(config GlobalLoggerConfig) {
	onceLogger.Do(func() {
		defaultLogger = New()
		for _, arg := range config.Args {
			defaultLogger = defaultLogger.WithField(arg.Key, arg.Value)
		}
	})
}

// Default returns the process-wide logger. Falls back to a fresh logger when
// InitDefaultLogger was never called, so tests need no global setup.
func Default() *Logger {
	if defaultLogger == nil {
		InitDefaultLogger(GlobalLoggerConfig{})
	}
	return defaultLogger
}
