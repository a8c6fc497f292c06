// Package config holds every tunable of the game. Defaults describe the
// classic card; a YAML file can override any subset of them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"proposal/internal/capability"
	"proposal/internal/decor"
	"proposal/internal/placement"
	"proposal/internal/tease"
)

// FileName is looked up in the home directory when no path is given.
const FileName = ".proposal.yaml"

type Config struct {
	Question        string `yaml:"question"`
	YesLabel        string `yaml:"yes_label"`
	NoLabel         string `yaml:"no_label"`
	AgainLabel      string `yaml:"again_label"`
	Celebration     string `yaml:"celebration"`
	FallbackMessage string `yaml:"fallback_message"`

	DefaultTease    string   `yaml:"default_tease"`
	TeaseLines      []string `yaml:"tease_lines"`
	ExtraTeaseLines []string `yaml:"extra_tease_lines"`
	// ExtraTeaseAfter of 0 mixes the extra lines in from the start.
	ExtraTeaseAfter int `yaml:"extra_tease_after"`

	Sparkles   ParticleConfig   `yaml:"sparkles"`
	Confetti   ParticleConfig   `yaml:"confetti"`
	NoButton   NoButtonConfig   `yaml:"no_button"`
	Capability CapabilityConfig `yaml:"capability"`
	Cell       CellConfig       `yaml:"cell"`

	SaveDirectory string `yaml:"save_directory"`
	LogFile       string `yaml:"log_file"`
	Seed          uint64 `yaml:"seed"`
}

// ParticleConfig bounds one kind of decoration.
type ParticleConfig struct {
	Count    int           `yaml:"count"`
	SizeMin  float64       `yaml:"size_min"`
	SizeMax  float64       `yaml:"size_max"`
	DurMin   time.Duration `yaml:"dur_min"`
	DurMax   time.Duration `yaml:"dur_max"`
	DelayMax time.Duration `yaml:"delay_max"`
	Drift    float64       `yaml:"drift"`
	Rotation float64       `yaml:"rotation"`
	Colors   []string      `yaml:"colors"`
	Glyphs   []string      `yaml:"glyphs"`
}

// NoButtonConfig tunes the evasive control. Distances are in layout units
// (see CellConfig).
type NoButtonConfig struct {
	EdgePadding float64 `yaml:"edge_padding"`
	SafePadding float64 `yaml:"safe_padding"`
	MaxTries    int     `yaml:"max_tries"`
	// MinDisplacement of 0 means the button's larger side.
	MinDisplacement float64       `yaml:"min_displacement"`
	Transition      time.Duration `yaml:"transition_duration"`
}

type CapabilityConfig struct {
	Policy          string `yaml:"policy"`
	MinDesktopWidth int    `yaml:"min_desktop_width"`
}

// CellConfig is the size of one terminal cell in layout units, so that
// distances keep their on-screen proportions.
type CellConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func Default() *Config {
	return &Config{
		Question:        "Will you be my Valentine? 💘",
		YesLabel:        "Yes 💖",
		NoLabel:         "No 🙈",
		AgainLabel:      "Play again",
		Celebration:     "Yay!!! I knew it 🥰",
		FallbackMessage: "This one needs a mouse and a wider window 🖱️",

		DefaultTease: "Choose wisely 🤭",
		TeaseLines: []string{
			"Hmm? You sure? 😏",
			"Nope 😂",
			"Be honest 😉",
			"Đừng né mà 🥹",
		},
		ExtraTeaseLines: []string{
			"Thôi lào 😒",
			"Bạn nhây quá 😵‍💫",
			"Say yes pleaseeee 🙏",
		},
		ExtraTeaseAfter: 8,

		Sparkles: ParticleConfig{
			Count:    90,
			SizeMin:  12,
			SizeMax:  30,
			DurMin:   2 * time.Second,
			DurMax:   5 * time.Second,
			DelayMax: 4 * time.Second,
			Colors:   []string{"#FFE664", "#FFFFFF"},
			Glyphs:   []string{"·", "✦", "✧", "⋆"},
		},
		Confetti: ParticleConfig{
			Count:    36,
			SizeMin:  1,
			SizeMax:  3,
			DurMin:   2500 * time.Millisecond,
			DurMax:   5 * time.Second,
			DelayMax: 1200 * time.Millisecond,
			Drift:    0.15,
			Rotation: 360,
			Colors:   []string{"#FF6B9D", "#FFD166", "#C77DFF", "#FF8FAB"},
			Glyphs:   []string{"💖", "💕", "🌸", "✨", "🎉", "*"},
		},
		NoButton: NoButtonConfig{
			EdgePadding: placement.DefaultEdgePadding,
			SafePadding: placement.DefaultSafePadding,
			MaxTries:    placement.DefaultMaxAttempts,
			Transition:  350 * time.Millisecond,
		},
		Capability: CapabilityConfig{
			Policy:          string(capability.Strict),
			MinDesktopWidth: 640,
		},
		Cell: CellConfig{Width: 8, Height: 16},
	}
}

// Locate returns the config path in the user's home directory, or "" when
// the home directory is unknown.
func Locate() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate normalises ranges in place and rejects settings that cannot be
// repaired.
func (c *Config) Validate() error {
	c.Sparkles.normalise()
	c.Confetti.normalise()

	n := &c.NoButton
	n.EdgePadding = max(n.EdgePadding, 0)
	n.SafePadding = max(n.SafePadding, 0)
	n.MinDisplacement = max(n.MinDisplacement, 0)
	n.Transition = max(n.Transition, 0)
	if n.MaxTries < 1 {
		n.MaxTries = 1
	}
	if c.ExtraTeaseAfter < 0 {
		c.ExtraTeaseAfter = 0
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("cell size must be positive, got %gx%g", c.Cell.Width, c.Cell.Height)
	}
	if _, err := capability.ParseMode(c.Capability.Policy); err != nil {
		return err
	}
	return nil
}

func (p *ParticleConfig) normalise() {
	p.Count = max(p.Count, 0)
	if p.SizeMax < p.SizeMin {
		p.SizeMin, p.SizeMax = p.SizeMax, p.SizeMin
	}
	if p.DurMax < p.DurMin {
		p.DurMin, p.DurMax = p.DurMax, p.DurMin
	}
	p.DurMin = max(p.DurMin, 0)
	p.DelayMax = max(p.DelayMax, 0)
	p.Drift = max(p.Drift, 0)
	p.Rotation = max(p.Rotation, 0)
}

// Ranges converts the particle settings for the decoration layer.
func (p ParticleConfig) Ranges() decor.Ranges {
	return decor.Ranges{
		SizeMin:     p.SizeMin,
		SizeMax:     p.SizeMax,
		DurationMin: p.DurMin,
		DurationMax: p.DurMax,
		DelayMax:    p.DelayMax,
		DriftMax:    p.Drift,
		RotationMax: p.Rotation,
		Colors:      p.Colors,
		Glyphs:      p.Glyphs,
	}
}

// Pools converts the tease lines for the selector.
func (c *Config) Pools() tease.Pools {
	return tease.Pools{
		Primary:    c.TeaseLines,
		Extra:      c.ExtraTeaseLines,
		ExtraAfter: c.ExtraTeaseAfter,
	}
}

// Policy returns the capability gate. Validate has already checked the mode.
func (c *Config) Policy() capability.Policy {
	mode, _ := capability.ParseMode(c.Capability.Policy)
	return capability.Policy{Mode: mode, MinWidth: c.Capability.MinDesktopWidth}
}

// GetSavePath places filename in the save directory, creating it if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	dir := c.SaveDirectory
	if dir == "" {
		return filename, nil
	}
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}
	return filepath.Join(dir, filename), nil
}
