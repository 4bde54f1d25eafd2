package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig は HTTP サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout"`
}

// StorageConfig は埋め込みキーバリューストアに関する設定です。
type StorageConfig struct {
	Path           string        `yaml:"path"`
	InMemory       bool          `yaml:"in_memory"`
	SyncWrites     bool          `yaml:"sync_writes"`
	GCInterval     time.Duration `yaml:"-"`
	GCIntervalRaw  string        `yaml:"gc_interval"`
	GCDiscardRatio float64       `yaml:"gc_discard_ratio"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	timeout, err := parseDurationAllowEmpty(c.Server.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	c.Server.ShutdownTimeout = timeout

	return c.Storage.validateAndNormalize()
}

func (s *StorageConfig) validateAndNormalize() error {
	if !s.InMemory && s.Path == "" {
		return fmt.Errorf("config: storage.path must be set unless storage.in_memory is true")
	}

	interval, err := parseDurationAllowEmpty(s.GCIntervalRaw)
	if err != nil {
		return fmt.Errorf("config: storage.gc_interval: %w", err)
	}
	s.GCInterval = interval

	if s.GCDiscardRatio < 0 || s.GCDiscardRatio > 1 {
		return fmt.Errorf("config: storage.gc_discard_ratio must be between 0 and 1")
	}
	if s.GCDiscardRatio == 0 {
		s.GCDiscardRatio = 0.5
	}

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}
