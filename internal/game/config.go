package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Pi is the truncated value the gait tables and turn angles were tuned
// against. Using math.Pi here changes the swing cycles.
const Pi float32 = 3.14

// Field bounds (world units, square centred on the origin).
const FieldHalfSize float32 = 50

// Locomotion.
const (
	MinSpeed     float32 = 0.25
	MaxSpeed     float32 = 1.0
	SpeedStep    float32 = 0.05
	RunThreshold float32 = 0.7
	TurnAngle            = 30 * Pi / 180
)

// Gait oscillator multipliers (degrees per frame before speed factors).
const (
	RunMultiplier  float32 = 6.0
	WalkMultiplier float32 = 4.0
	JumpMultiplier float32 = 5.0
)

// JumpFrames is the length of one jump cycle in frames.
const JumpFrames = 46

// Straight-line plan. Chances are out of 10.
const (
	MinPathSteps      = 10
	MaxPathSteps      = 30
	SpeedChangeChance = 5
	StopChance        = 2
)

// Herd size limits.
const (
	DefaultHerdSize = 20
	MaxHerdSize     = 100
)

// Backends.
const (
	BackendGL       = "gl"
	BackendTerminal = "term"
)

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config holds the tunables that are not design constants.
type Config struct {
	Herd        int          `toml:"herd"`
	Seed        uint64       `toml:"seed"`
	Paused      bool         `toml:"paused"`
	DebugColors bool         `toml:"debug_colors"`
	Backend     string       `toml:"backend"`
	Audio       bool         `toml:"audio"`
	LogLevel    string       `toml:"log_level"`
	LogFormat   string       `toml:"log_format"`
	LogFile     string       `toml:"log_file"`
	Window      WindowConfig `toml:"window"`
}

func DefaultConfig() Config {
	return Config{
		Herd:      DefaultHerdSize,
		Paused:    true,
		Backend:   BackendGL,
		Audio:     true,
		LogLevel:  "info",
		LogFormat: "text",
		Window:    WindowConfig{Width: 800, Height: 800},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path yields the
// defaults. HERD_SEED overrides the seed when set.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if s := os.Getenv("HERD_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("HERD_SEED: %w", err)
		}
		cfg.Seed = v
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Herd < 1 || c.Herd > MaxHerdSize {
		return fmt.Errorf("herd size %d out of range [1, %d]", c.Herd, MaxHerdSize)
	}
	c.Backend = strings.ToLower(c.Backend)
	switch c.Backend {
	case BackendGL, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	return nil
}
