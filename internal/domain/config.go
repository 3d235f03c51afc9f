package domain

// Config represents the minimal hostexpand configuration loaded from
// hostexpand.yaml plus environment overrides.
type Config struct {
	Logging     LoggingConfig
	Output      OutputConfig
	Diagnostics DiagnosticsConfig
}

type LoggingConfig struct {
	Debug bool
}

type OutputConfig struct {
	// Force allows overwriting an existing output file without asking.
	Force bool
}

type DiagnosticsConfig struct {
	// Quiet suppresses coercion/rejection notices on stderr. They are
	// still written to the structured log.
	Quiet bool
}

// DefaultConfig provides sane defaults if hostexpand.yaml is partially
// missing or absent.
func DefaultConfig() Config {
	return Config{
		Logging:     LoggingConfig{Debug: false},
		Output:      OutputConfig{Force: false},
		Diagnostics: DiagnosticsConfig{Quiet: false},
	}
}
