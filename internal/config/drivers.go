package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ItsNotGoodName/x-oledbar/internal/core"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func NewYAML(filePath string) YAML {
	return YAML{
		filePath: filePath,
	}
}

type YAML struct {
	filePath string
}

func (y YAML) Exists() (bool, error) {
	return core.FileExists(y.filePath)
}

func (y YAML) Read() (Config, error) {
	file, err := os.Open(y.filePath)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", y.filePath, err)
	}
	return cfg, nil
}

func NewJSON(filePath string) JSON {
	return JSON{
		filePath: filePath,
	}
}

type JSON struct {
	filePath string
}

func (j JSON) Exists() (bool, error) {
	return core.FileExists(j.filePath)
}

func (j JSON) Read() (Config, error) {
	file, err := os.Open(j.filePath)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", j.filePath, err)
	}
	return cfg, nil
}

func NewTOML(filePath string) TOML {
	return TOML{
		filePath: filePath,
	}
}

type TOML struct {
	filePath string
}

func (t TOML) Exists() (bool, error) {
	return core.FileExists(t.filePath)
}

func (t TOML) Read() (Config, error) {
	file, err := os.Open(t.filePath)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", t.filePath, err)
	}
	return cfg, nil
}
