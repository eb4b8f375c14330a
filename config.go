package dmidecode

import "go.uber.org/zap"

const defaultUnknownTypeName = "Unknown Type"

// Config controls how a report is parsed
type Config struct {
	// Logger receives a warning per skipped section. Defaults to a no-op logger.
	Logger *zap.Logger

	// Strict makes Parse fail when any section is rejected instead of skipping it
	Strict bool

	// TruncateMultiColon keeps only the text between the first and the second colon
	// as the value of a key/value line, e.g. "Time: 12:30" yields "12".
	TruncateMultiColon bool

	UnknownTypeName string
}

// Option mutates a Config, see New
type Option func(cfg *Config)

// WithLogger sets the logger for skipped sections and parse summaries
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// WithStrict makes New fail on the first report with a rejected section
func WithStrict() Option {
	return func(cfg *Config) {
		cfg.Strict = true
	}
}

// WithTruncateMultiColon restores the lossy two-token split of key/value lines
func WithTruncateMultiColon() Option {
	return func(cfg *Config) {
		cfg.TruncateMultiColon = true
	}
}

// WithUnknownTypeName sets the title used when a section has none
func WithUnknownTypeName(name string) Option {
	return func(cfg *Config) {
		cfg.UnknownTypeName = name
	}
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}

	return cfg
}

func (cfg *Config) setDefaults() {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.UnknownTypeName == "" {
		cfg.UnknownTypeName = defaultUnknownTypeName
	}
}

func (cfg *Config) applyTo(s *Store) {
	cfg.setDefaults()
	s.cfg = cfg
}
