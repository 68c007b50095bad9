package config

// DefaultConventionVersion is used when the config file does not declare
// one.
const DefaultConventionVersion = "0.0.1"

// Config holds the .aictx/config.yaml settings.
type Config struct {
	// ConventionVersion is stamped into every built manifest.
	ConventionVersion string `koanf:"convention_version"`

	// Adapters lists the export adapters the convention owner has
	// enabled. Export refuses adapter names outside this list.
	Adapters []string `koanf:"adapters"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `koanf:"logging"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ConventionVersion: DefaultConventionVersion,
		Adapters:          []string{"cursor", "copilot"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// HasAdapter reports whether name is an enabled export adapter.
func (c *Config) HasAdapter(name string) bool {
	for _, a := range c.Adapters {
		if a == name {
			return true
		}
	}
	return false
}
