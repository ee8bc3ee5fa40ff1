package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig contains settings for the persisted document store.
type StoreConfig struct {
	// Path is the location of the JSON data file. A missing file is
	// created on the first mutation.
	Path string `mapstructure:"path" validate:"required"`

	// SeedSampleData populates the store with example activities on
	// startup when the activities collection is empty.
	SeedSampleData bool `mapstructure:"seed_sample_data"`
}
