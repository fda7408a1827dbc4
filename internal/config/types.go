// Package config contains all configuration types and loading logic.
package config

// ServerConfig holds server-level configuration.
type ServerConfig struct {
	ListenAddress  string `toml:"listen_address" mapstructure:"listen_address"`
	BindIP         string `toml:"bind_ip" mapstructure:"bind_ip"`
	MetricsEnabled bool   `toml:"metricsenabled" mapstructure:"metricsenabled"`
	MetricsPort    string `toml:"metricsport" mapstructure:"metricsport"`
	PIDFilePath    string `toml:"pidfilepath" mapstructure:"pidfilepath"`
	PreCaching     bool   `toml:"precaching" mapstructure:"precaching"`
	CORSOrigins    string `toml:"cors_origins" mapstructure:"cors_origins"`
}

// PlatformConfig controls the OS-native registry tier and its caches.
type PlatformConfig struct {
	Enabled                  bool   `toml:"enabled" mapstructure:"enabled"`
	CacheTTL                 string `toml:"cachettl" mapstructure:"cachettl"`
	RedisEnabled             bool   `toml:"redisenabled" mapstructure:"redisenabled"`
	RedisAddr                string `toml:"redisaddr" mapstructure:"redisaddr"`
	RedisPassword            string `toml:"redispassword" mapstructure:"redispassword"`
	RedisDBIndex             int    `toml:"redisdbindex" mapstructure:"redisdbindex"`
	RedisHealthCheckInterval string `toml:"redishealthcheckinterval" mapstructure:"redishealthcheckinterval"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// TimeoutConfig holds timeout configuration.
type TimeoutConfig struct {
	Read     string `mapstructure:"readtimeout" toml:"readtimeout"`
	Write    string `mapstructure:"writetimeout" toml:"writetimeout"`
	Idle     string `mapstructure:"idletimeout" toml:"idletimeout"`
	Shutdown string `mapstructure:"shutdown" toml:"shutdown"`
}

// WorkersConfig holds worker pool configuration.
type WorkersConfig struct {
	NumWorkers       int `mapstructure:"numworkers"`
	PrewarmQueueSize int `mapstructure:"prewarmqueuesize"`
}

// BuildConfig holds build metadata.
type BuildConfig struct {
	Version string `mapstructure:"version"`
}

// Config is the top-level configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Platform PlatformConfig `mapstructure:"platform"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Timeouts TimeoutConfig  `mapstructure:"timeouts"`
	Workers  WorkersConfig  `mapstructure:"workers"`
	Build    BuildConfig    `mapstructure:"build"`
}
