package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds SupplyChain API connection details. Key and ClientType may
// stay empty here; the client falls back to the API_KEY and CLIENT_TYPE
// environment variables at construction.
type APIConfig struct {
	URL            string `mapstructure:"url"`
	Key            string `mapstructure:"key"`
	ClientType     string `mapstructure:"client_type"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// FilterConfig contains client-side filter definitions
type FilterConfig struct {
	DefaultExpression string            `mapstructure:"default_expression"`
	Presets           map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
