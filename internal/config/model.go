package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultBackground = "#000000"
	DefaultCursor     = "left_ptr"
)

func DefaultConfig() Config {
	return Config{
		Background: DefaultBackground,
		Cursor:     DefaultCursor,
	}
}

type Config struct {
	Background string `json:"background" yaml:"background" toml:"background"`
	Cursor     string `json:"cursor" yaml:"cursor" toml:"cursor"`
}

// BackgroundPixel returns the background as a 24-bit TrueColor pixel.
func (c Config) BackgroundPixel() (uint32, error) {
	return ParseColor(c.Background)
}

func (c Config) normalize() (Config, error) {
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Cursor == "" {
		c.Cursor = DefaultCursor
	}

	if _, err := c.BackgroundPixel(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(color string) (uint32, error) {
	hex, ok := strings.CutPrefix(color, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing '#'", color)
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q: expected 3 or 6 hex digits", color)
	}

	pixel, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", color, err)
	}

	return uint32(pixel), nil
}
