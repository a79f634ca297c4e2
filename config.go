package pixelcat

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// DefaultPaletteSize bounds palette extraction from a reference image.
const DefaultPaletteSize = 5

// Config is the optional JSON configuration document. Every field has
// a default and a missing file behaves as an empty document.
type Config struct {
	LayersOrder   []string `mapstructure:"layers_order"`
	Resolution    int      `mapstructure:"resolution"`
	Palette       []string `mapstructure:"palette"`
	OutputDir     string   `mapstructure:"output_dir"`
	PaletteImage  string   `mapstructure:"palette_image"`
	PaletteSize   int      `mapstructure:"palette_size"`
	PaletteMethod string   `mapstructure:"palette_method"`
	NamePrefix    string   `mapstructure:"name_prefix"`
	Description   string   `mapstructure:"description"`
}

// DefaultConfig returns the configuration used when no file is
// present.
func DefaultConfig() Config {
	return Config{
		LayersOrder: DefaultLayersOrder(),
		Resolution:  DefaultResolution,
		OutputDir:   DefaultOutputDir,
		PaletteSize: DefaultPaletteSize,
		NamePrefix:  DefaultNamePrefix,
		Description: DefaultDescription,
	}
}

// LoadConfig reads the JSON configuration at path. A missing file
// yields the defaults; a present but invalid file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Resolution <= 0 {
		return Config{}, fmt.Errorf("config %s: resolution must be positive", path)
	}
	if cfg.PaletteSize <= 0 {
		return Config{}, fmt.Errorf("config %s: palette_size must be positive", path)
	}
	for _, hexStr := range cfg.Palette {
		if _, err := colorful.Hex(hexStr); err != nil {
			return Config{}, fmt.Errorf("config %s: palette entry %q: %w", path, hexStr, err)
		}
	}
	return cfg, nil
}
