package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds the defaults that can be set in a TOML configuration file.
type Config struct {
	Precision   int     `toml:"precision"`
	Resolution  float64 `toml:"resolution"`
	Margin      float64 `toml:"margin"`
	StrokeWidth float64 `toml:"stroke_width"`
	Fill        string  `toml:"fill"`
	Background  string  `toml:"background"`
}

var DefaultConfig = Config{
	Precision:  8,
	Resolution: 1.0,
	Fill:       "#000000",
}

// LoadConfig reads the configuration file on top of DefaultConfig. An empty filename returns DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig
	if filename == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, filename)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (cfg Config) Validate() error {
	if cfg.Precision < 1 || 17 < cfg.Precision {
		return fmt.Errorf("precision must be between 1 and 17")
	} else if cfg.Resolution <= 0.0 {
		return fmt.Errorf("resolution must be positive")
	} else if cfg.Margin < 0.0 {
		return fmt.Errorf("margin must be non-negative")
	} else if cfg.StrokeWidth < 0.0 {
		return fmt.Errorf("stroke width must be non-negative")
	}
	if _, err := parseColor(cfg.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if cfg.Background != "" {
		if _, err := parseColor(cfg.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	return nil
}

// parseColor parses colors of the form #rgb, #rgba, #rrggbb, and #rrggbbaa.
func parseColor(s string) (color.RGBA, error) {
	alpha := ""
	switch len(s) {
	case 5:
		s, alpha = s[:4], s[4:]+s[4:]
	case 9:
		s, alpha = s[:7], s[7:]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	col := color.RGBA{r, g, b, 255}
	if alpha != "" {
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad alpha %q: %w", alpha, err)
		}
		// premultiply alpha
		col.A = uint8(a)
		col.R = uint8(uint16(col.R) * uint16(col.A) / 255)
		col.G = uint8(uint16(col.G) * uint16(col.A) / 255)
		col.B = uint8(uint16(col.B) * uint16(col.A) / 255)
	}
	return col, nil
}
