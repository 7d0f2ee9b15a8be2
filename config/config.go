package config

// Config represents the ts-pilot configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Generate GenerateConfig `mapstructure:"generate"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the MCP server identity advertised during initialize
type ServerConfig struct {
	Name string `mapstructure:"name"` // server name in initialize response (default: "ts-pilot")
}

// GenerateConfig configures defaults for the generate_types tool
type GenerateConfig struct {
	DefaultName string `mapstructure:"default_name"` // type name when the caller omits one (default: "Generated")
	Strict      bool   `mapstructure:"strict"`       // strict inference: never[] for empty arrays, plain null (default: true)
	Readonly    bool   `mapstructure:"readonly"`     // prefix top-level fields with readonly (default: false)
}

// LogConfig configures diagnostic output on stderr
type LogConfig struct {
	Verbosity int  `mapstructure:"verbosity"` // 0 = warnings only, 1 = info, 2+ = debug
	JSON      bool `mapstructure:"json"`      // emit JSON log lines instead of console format
}
