package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ItsNotGoodName/x-collage/internal/core"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown config format")

// Open returns the driver for filePath based on its extension.
func Open(filePath string) (Driver, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return NewYAML(filePath), nil
	case ".json":
		return NewJSON(filePath), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filePath)
	}
}

func NewYAML(filePath string) YAML {
	return YAML{
		filePath: filePath,
	}
}

type YAML struct {
	filePath string
}

// Exists implements Driver.
func (y YAML) Exists() (bool, error) {
	return core.FileExists(y.filePath)
}

func (y YAML) Read() (Config, error) {
	return readFile(y.filePath, func(r io.Reader, cfg *Config) error {
		return yaml.NewDecoder(r).Decode(cfg)
	})
}

func (y YAML) Write(cfg Config) error {
	return writeFile(y.filePath, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	})
}

func NewJSON(filePath string) JSON {
	return JSON{
		filePath: filePath,
	}
}

type JSON struct {
	filePath string
}

// Exists implements Driver.
func (j JSON) Exists() (bool, error) {
	return core.FileExists(j.filePath)
}

func (j JSON) Read() (Config, error) {
	return readFile(j.filePath, func(r io.Reader, cfg *Config) error {
		return json.NewDecoder(r).Decode(cfg)
	})
}

func (j JSON) Write(cfg Config) error {
	return writeFile(j.filePath, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	})
}

func readFile(filePath string, decode func(io.Reader, *Config) error) (Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig, nil
		}
		return Config{}, err
	}
	defer file.Close()

	var cfg Config
	if err := decode(file, &cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return defaultConfig, nil
		}
		return Config{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

func writeFile(filePath string, encode func(io.Writer) error) error {
	filePathTmp := filePath + ".tmp"
	file, err := os.OpenFile(filePathTmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	return os.Rename(filePathTmp, filePath)
}

// Memory is a Driver that never touches the filesystem.
type Memory struct {
	mu     sync.RWMutex
	config *Config
}

func NewMemory() *Memory {
	return &Memory{}
}

// Exists implements Driver.
func (m *Memory) Exists() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config != nil, nil
}

func (m *Memory) Read() (Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return defaultConfig, nil
	}
	cfg := *m.config
	cfg.Images = append([]string(nil), cfg.Images...)
	return cfg, nil
}

func (m *Memory) Write(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg.Images = append([]string(nil), cfg.Images...)
	m.config = &cfg
	return nil
}
