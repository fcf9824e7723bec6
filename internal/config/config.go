package config

import (
	"sync"
)

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

func NewStore(driver Driver) (*Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := driver.Write(defaultConfig); err != nil {
			return nil, err
		}
	}

	return &Store{
		driver: driver,
	}, nil
}

type Store struct {
	mu     sync.Mutex
	driver Driver
}

// GetConfig reads and normalizes the config.
func (p *Store) GetConfig() (Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, err := p.driver.Read()
	if err != nil {
		return Config{}, err
	}

	return Normalize(cfg)
}

func (p *Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, err := p.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	cfg, err = Normalize(cfg)
	if err != nil {
		return err
	}

	return p.driver.Write(cfg)
}
