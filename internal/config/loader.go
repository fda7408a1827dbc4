package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var log = logrus.New()

// SetLogger replaces the package-level logger.
func SetLogger(l *logrus.Logger) { log = l }

// LoadConfig loads configuration from a TOML file using viper.
func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = "./config.toml"
	}

	if !fileExists(configFile) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("toml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	applyDefaults(&conf)

	log.Infof("Configuration loaded from %s", configFile)
	return &conf, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	conf := &Config{}
	applyDefaults(conf)
	return conf
}

func applyDefaults(conf *Config) {
	if conf.Server.ListenAddress == "" {
		conf.Server.ListenAddress = "8080"
	}
	if conf.Server.BindIP == "" {
		conf.Server.BindIP = "0.0.0.0"
	}
	if conf.Server.MetricsPort == "" {
		conf.Server.MetricsPort = "9090"
	}
	if conf.Server.PIDFilePath == "" {
		conf.Server.PIDFilePath = "/var/run/mime-resolver.pid"
	}

	if conf.Platform.CacheTTL == "" {
		conf.Platform.CacheTTL = "1h"
	}
	if conf.Platform.RedisAddr == "" {
		conf.Platform.RedisAddr = "localhost:6379"
	}
	if conf.Platform.RedisHealthCheckInterval == "" {
		conf.Platform.RedisHealthCheckInterval = "120s"
	}

	if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	if conf.Logging.MaxSize == 0 {
		conf.Logging.MaxSize = 100
	}
	if conf.Logging.MaxBackups == 0 {
		conf.Logging.MaxBackups = 7
	}
	if conf.Logging.MaxAge == 0 {
		conf.Logging.MaxAge = 30
	}

	if conf.Timeouts.Read == "" {
		conf.Timeouts.Read = "30s"
	}
	if conf.Timeouts.Write == "" {
		conf.Timeouts.Write = "30s"
	}
	if conf.Timeouts.Idle == "" {
		conf.Timeouts.Idle = "120s"
	}
	if conf.Timeouts.Shutdown == "" {
		conf.Timeouts.Shutdown = "30s"
	}

	if conf.Workers.NumWorkers == 0 {
		conf.Workers.NumWorkers = 4
	}
	if conf.Workers.PrewarmQueueSize == 0 {
		conf.Workers.PrewarmQueueSize = 100
	}

	if conf.Build.Version == "" {
		conf.Build.Version = "1.0.0"
	}
}

// ValidateConfig performs basic configuration validation.
func ValidateConfig(c *Config) error {
	if c.Server.ListenAddress == "" {
		return errors.New("server.listen_address is required")
	}

	if _, err := time.ParseDuration(c.Timeouts.Read); err != nil {
		return fmt.Errorf("invalid timeouts.readtimeout: %v", err)
	}
	if _, err := time.ParseDuration(c.Timeouts.Write); err != nil {
		return fmt.Errorf("invalid timeouts.writetimeout: %v", err)
	}
	if _, err := time.ParseDuration(c.Timeouts.Idle); err != nil {
		return fmt.Errorf("invalid timeouts.idletimeout: %v", err)
	}
	if _, err := time.ParseDuration(c.Timeouts.Shutdown); err != nil {
		return fmt.Errorf("invalid timeouts.shutdown: %v", err)
	}

	if _, err := time.ParseDuration(c.Platform.CacheTTL); err != nil {
		return fmt.Errorf("invalid platform.cachettl: %v", err)
	}

	if c.Platform.RedisEnabled && c.Platform.RedisAddr == "" {
		return errors.New("platform.redisaddr is required when platform.redisenabled is true")
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GenerateMinimalConfig returns a minimal example configuration string.
func GenerateMinimalConfig() string {
	return `# MIME Resolver - Minimal Configuration

[server]
listen_address = "8080"
bind_ip = "0.0.0.0"
metricsenabled = true
metricsport = "9090"
pidfilepath = "/var/run/mime-resolver.pid"
precaching = true

[platform]
enabled = true
cachettl = "1h"
redisenabled = false
redisaddr = "localhost:6379"

[logging]
level = "info"
file = "/var/log/mime-resolver.log"
max_size = 100
max_backups = 7
max_age = 30
compress = true

[timeouts]
readtimeout = "30s"
writetimeout = "30s"
idletimeout = "120s"

[workers]
numworkers = 4
prewarmqueuesize = 100

[build]
version = "1.0.0"
`
}

// CreateMinimalConfig writes a minimal config.toml to disk.
func CreateMinimalConfig() error {
	content := GenerateMinimalConfig()
	f, err := os.Create("config.toml")
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	_, err = fmt.Fprint(w, content)
	if err != nil {
		return err
	}
	return w.Flush()
}
