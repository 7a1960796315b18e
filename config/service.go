package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Service loads and saves the configuration file. Loading is lenient:
// a missing or partial file yields defaults. Saving validates.
type Service struct {
	storageDir string
	logger     func(string)
	mu         sync.RWMutex
}

// NewService creates a config service. logger may be nil.
func NewService(logger func(string)) *Service {
	return &Service{logger: logger}
}

// StorageDir returns the directory holding config.json, ~/.devopsdocs
// unless overridden.
func (s *Service) StorageDir() (string, error) {
	s.mu.RLock()
	sd := s.storageDir
	s.mu.RUnlock()

	if sd != "" {
		return sd, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".devopsdocs"), nil
}

// SetStorageDir overrides the storage directory, mainly for tests.
func (s *Service) SetStorageDir(dir string) {
	s.mu.Lock()
	s.storageDir = dir
	s.mu.Unlock()
}

// Path returns the config file path.
func (s *Service) Path() (string, error) {
	dir, err := s.StorageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration, filling defaults for anything missing
// or out of range. A missing file is not an error.
func (s *Service) Load() (Config, error) {
	path, err := s.Path()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	s.applyDefaults(&cfg)
	return cfg, nil
}

// Save validates and writes the configuration to disk.
func (s *Service) Save(cfg Config) error {
	if cfg.Primary != nil && !cfg.Primary.Valid() {
		return fmt.Errorf("primary color channel out of range: %+v", *cfg.Primary)
	}
	if cfg.Accent != nil && !cfg.Accent.Valid() {
		return fmt.Errorf("accent color channel out of range: %+v", *cfg.Accent)
	}

	dir, err := s.StorageDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	s.log("configuration saved")
	return nil
}

// applyDefaults fills empty or invalid fields in place.
func (s *Service) applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.OutputDir = filepath.Join(home, "DevOps-Docs")
		}
	}
	if cfg.LogDir == "" {
		if dir, err := s.StorageDir(); err == nil {
			cfg.LogDir = filepath.Join(dir, "logs")
		}
	}
	if cfg.Primary == nil || !cfg.Primary.Valid() {
		if cfg.Primary != nil {
			s.log(fmt.Sprintf("ignoring invalid primary color %+v", *cfg.Primary))
		}
		cfg.Primary = defaultPrimary()
	}
	if cfg.Accent == nil || !cfg.Accent.Valid() {
		if cfg.Accent != nil {
			s.log(fmt.Sprintf("ignoring invalid accent color %+v", *cfg.Accent))
		}
		cfg.Accent = defaultAccent()
	}
}

func (s *Service) log(msg string) {
	if s.logger != nil {
		s.logger(msg)
	}
}
