package config

import (
	"fmt"
	"time"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/mosaic"
)

const (
	DefaultLayout = "split-top"
	DefaultHwdec  = "auto-safe"
)

var defaultConfig = Config{
	Layout:       DefaultLayout,
	MinDimension: collage.DefaultMinDimension,
	LongPress:    "0s",
	Border:       false,
	Images:       []string{},
	Placeholder:  "",
	Hwdec:        DefaultHwdec,
}

type Config struct {
	Layout       string   `json:"layout" yaml:"layout"`
	MinDimension float32  `json:"min_dimension" yaml:"min_dimension"`
	LongPress    string   `json:"long_press" yaml:"long_press"`
	Border       bool     `json:"border" yaml:"border"`
	Images       []string `json:"images" yaml:"images"`
	Placeholder  string   `json:"placeholder" yaml:"placeholder"` // mpv URI shown for empty panels
	Hwdec        string   `json:"hwdec" yaml:"hwdec"`
}

// LongPressDuration parses LongPress, an empty value is zero.
func (c Config) LongPressDuration() (time.Duration, error) {
	if c.LongPress == "" {
		return 0, nil
	}
	return time.ParseDuration(c.LongPress)
}

// Normalize fills in defaults and rejects values the collage cannot use.
func Normalize(cfg Config) (Config, error) {
	if cfg.Layout == "" {
		cfg.Layout = DefaultLayout
	}
	if _, err := mosaic.Lookup(cfg.Layout); err != nil {
		return Config{}, err
	}

	if cfg.MinDimension <= 0 {
		cfg.MinDimension = collage.DefaultMinDimension
	}

	d, err := cfg.LongPressDuration()
	if err != nil {
		return Config{}, fmt.Errorf("long_press: %w", err)
	}
	if d < 0 {
		return Config{}, fmt.Errorf("long_press: negative duration %s", d)
	}
	cfg.LongPress = d.String()

	if cfg.Images == nil {
		cfg.Images = []string{}
	}
	if cfg.Hwdec == "" {
		cfg.Hwdec = DefaultHwdec
	}

	return cfg, nil
}

// Collage returns the collage settings of cfg. cfg must be normalized.
func (c Config) Collage() collage.Config {
	d, _ := c.LongPressDuration()
	return collage.Config{
		MinDimension: c.MinDimension,
		LongPress:    d,
		Border:       c.Border,
	}
}
