package growtree

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/mazegrow/gridgraph"
)

const (
	defaultWidth    = 16
	defaultHeight   = 16
	defaultStrategy = "newest"
)

// Config holds generator parameters loadable from JSON.
type Config struct {
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	StartX   int    `json:"start_x,omitempty"`
	StartY   int    `json:"start_y,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
}

// DefaultConfig returns a 16x16 Newest maze started at the origin with the default seed.
func DefaultConfig() Config {
	return Config{
		Width:    defaultWidth,
		Height:   defaultHeight,
		Strategy: defaultStrategy,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Width > 0 {
		c.Width = source.Width
	}
	if source.Height > 0 {
		c.Height = source.Height
	}
	if source.StartX != 0 {
		c.StartX = source.StartX
	}
	if source.StartY != 0 {
		c.StartY = source.StartY
	}
	if source.Strategy != "" {
		c.Strategy = source.Strategy
	}
	if source.Seed != 0 {
		c.Seed = source.Seed
	}
}

// Size returns the configured grid size.
func (c Config) Size() gridgraph.Size {
	return gridgraph.Size{Width: c.Width, Height: c.Height}
}

// Start returns the configured start cell.
func (c Config) Start() gridgraph.Coord {
	return gridgraph.Coord{X: c.StartX, Y: c.StartY}
}

// Validate checks the config without building a generator.
func (c Config) Validate() error {
	if !c.Size().Valid() {
		return fmt.Errorf("%w: got %s", ErrInvalidSize, c.Size())
	}
	if !c.Size().Contains(c.Start()) {
		return fmt.Errorf("%w: %s not in %s", ErrStartOutOfBounds, c.Start(), c.Size())
	}
	if _, err := ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a JSON config file, merges it over DefaultConfig and
// returns the result.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// NewFromConfig builds a generator from cfg. The seed option precedes opts,
// so a caller-supplied WithRand wins.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := ParseStrategy(cfg.Strategy)

	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithSeed(cfg.Seed))
	all = append(all, opts...)
	return New(cfg.Size(), cfg.Start(), strategy, all...)
}
