package config

// Test helpers to construct configs without going through CLI flags

func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{dsn: dsn, env: env}
}

func NewKnowledgeForTest(filePath string) *Knowledge {
	return &Knowledge{filePath: filePath}
}
