package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.name", "ts-pilot")

	// generate_types defaults
	v.SetDefault("generate.default_name", "Generated")
	v.SetDefault("generate.strict", true)
	v.SetDefault("generate.readonly", false)

	// Logging defaults
	v.SetDefault("log.verbosity", 0)
	v.SetDefault("log.json", false)
}
