package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Driver interface {
	Exists() (bool, error)
	Read() (Config, error)
}

// NewDriver picks a driver from the file extension.
func NewDriver(filePath string) (Driver, error) {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		return NewYAML(filePath), nil
	case ".json":
		return NewJSON(filePath), nil
	case ".toml":
		return NewTOML(filePath), nil
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", filePath, ext)
	}
}

// Store reads the config. A missing file yields the defaults, nothing is
// ever written back.
type Store struct {
	driver Driver
}

func NewStore(driver Driver) Store {
	return Store{
		driver: driver,
	}
}

// NewDefaultStore is a store without a file.
func NewDefaultStore() Store {
	return Store{}
}

func (p Store) GetConfig() (Config, error) {
	if p.driver == nil {
		return DefaultConfig(), nil
	}

	exists, err := p.driver.Exists()
	if err != nil {
		return Config{}, err
	}
	if !exists {
		return DefaultConfig(), nil
	}

	cfg, err := p.driver.Read()
	if err != nil {
		return Config{}, err
	}

	return cfg.normalize()
}
