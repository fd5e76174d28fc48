// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default values. The blogs file path and listen port are overridable for
// deployment convenience; the rotation schedule itself is not configuration
// (see internal/domain/rotation).
const (
	defaultLogLevel  = "info"
	defaultAddr      = ":5000"
	defaultBlogsFile = "blogs.json"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":5000".
	Addr string `koanf:"addr"`

	// BlogsFile is the path of the JSON catalog read once at startup.
	BlogsFile string `koanf:"blogs_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:  defaultLogLevel,
		Addr:      defaultAddr,
		BlogsFile: defaultBlogsFile,
	}
}
