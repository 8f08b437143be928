// Package config loads the watch face configuration from YAML, .env files
// and SUPERSIMPLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alinanorakari/supersimple/internal/animation"
	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/geometry"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SUPERSIMPLE_"

// Config represents the application configuration.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Storage   StorageConfig   `yaml:"storage"`
	Inbox     InboxConfig     `yaml:"inbox"`
	Animation AnimationConfig `yaml:"animation"`
	Layout    LayoutConfig    `yaml:"layout"`
	Debug     bool            `yaml:"debug"`
}

// DisplayConfig selects the screen geometry and the output target.
type DisplayConfig struct {
	Shape  string `yaml:"shape"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`

	Target    string `yaml:"target"`
	Path      string `yaml:"path,omitempty"`
	Scale     int    `yaml:"scale,omitempty"`
	PixooIP   string `yaml:"pixoo_ip,omitempty"`
	PixooPort int    `yaml:"pixoo_port,omitempty"`
	Device    string `yaml:"device,omitempty"`
}

// StorageConfig locates the sqlite database. ":memory:" keeps nothing.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// InboxConfig configures the settings transports.
type InboxConfig struct {
	Listen       string `yaml:"listen,omitempty"`
	SettingsFile string `yaml:"settings_file,omitempty"`
	PublicURL    string `yaml:"public_url,omitempty"`
	Metrics      bool   `yaml:"metrics"`
}

// AnimationConfig configures the intro animation.
type AnimationConfig struct {
	Disabled bool          `yaml:"disabled"`
	Duration time.Duration `yaml:"duration"`
	Delay    time.Duration `yaml:"delay"`
	Curve    string        `yaml:"curve"`
}

// LayoutConfig overrides hand proportions. Zero fields keep the defaults.
type LayoutConfig struct {
	RadiusMode     string `yaml:"radius_mode,omitempty"`
	FinalRadius    int    `yaml:"final_radius,omitempty"`
	HandWidth      int    `yaml:"hand_width,omitempty"`
	OuterMargin    int    `yaml:"outer_margin,omitempty"`
	HourShortening int    `yaml:"hour_shortening,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads path (optional), the .env file in the working directory and
// the environment. Values from the environment win.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills zero fields.
func (c *Config) ApplyDefaults() {
	if c.Display.Shape == "" {
		c.Display.Shape = domain.ShapeRect.String()
	}
	if c.Display.Width == 0 || c.Display.Height == 0 {
		size := domain.PebbleRectSize
		if domain.ParseShape(c.Display.Shape) == domain.ShapeRound {
			size = domain.PebbleRoundSize
		}
		c.Display.Width, c.Display.Height = size.Width, size.Height
	}
	if c.Display.Target == "" {
		c.Display.Target = "png"
	}
	if c.Display.Path == "" {
		c.Display.Path = "supersimple.png"
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = 1
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "supersimple.db"
	}
	if c.Animation.Duration == 0 {
		c.Animation.Duration = animation.DefaultDuration
	}
	if c.Animation.Delay == 0 {
		c.Animation.Delay = animation.DefaultDelay
	}
	if c.Animation.Curve == "" {
		c.Animation.Curve = "ease-in-out"
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size %dx%d is invalid", c.Display.Width, c.Display.Height)
	}
	if _, err := animation.ParseCurve(c.Animation.Curve); err != nil {
		return err
	}
	if _, err := geometry.ParseRadiusMode(c.Layout.RadiusMode); err != nil {
		return err
	}
	if c.Animation.Duration < 0 || c.Animation.Delay < 0 {
		return fmt.Errorf("animation timing must not be negative")
	}
	return nil
}

// Screen returns the configured display.
func (c *Config) Screen() domain.Display {
	return domain.NewDisplay(c.Display.Width, c.Display.Height, domain.ParseShape(c.Display.Shape))
}

// HandLayout returns the default layout with the configured overrides,
// adapted to the display shape.
func (c *Config) HandLayout() geometry.Layout {
	l := geometry.DefaultLayout()
	l.Mode, _ = geometry.ParseRadiusMode(c.Layout.RadiusMode)
	if c.Layout.FinalRadius > 0 {
		l.FinalRadius = c.Layout.FinalRadius
	}
	if c.Layout.HandWidth > 0 {
		l.HandWidth = c.Layout.HandWidth
		l.PegRadius = c.Layout.HandWidth / 4
		l.OuterMargin = geometry.MarginFor(c.Layout.HandWidth)
		l.HourMinRadius = geometry.HourMinRadiusFor(c.Layout.HandWidth)
	}
	if c.Layout.OuterMargin > 0 {
		l.OuterMargin = c.Layout.OuterMargin
	}
	if c.Layout.HourShortening > 0 {
		l.HourShortening = c.Layout.HourShortening
	}
	return l.ForShape(domain.ParseShape(c.Display.Shape))
}

// Curve returns the configured easing curve.
func (c *Config) Curve() animation.Curve {
	curve, err := animation.ParseCurve(c.Animation.Curve)
	if err != nil {
		return animation.EaseInOut
	}
	return curve
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	strs := map[string]*string{
		"SHAPE":         &c.Display.Shape,
		"TARGET":        &c.Display.Target,
		"OUTPUT":        &c.Display.Path,
		"PIXOO_IP":      &c.Display.PixooIP,
		"FRAMEBUFFER":   &c.Display.Device,
		"DB":            &c.Storage.Path,
		"LISTEN":        &c.Inbox.Listen,
		"SETTINGS_FILE": &c.Inbox.SettingsFile,
		"PUBLIC_URL":    &c.Inbox.PublicURL,
		"CURVE":         &c.Animation.Curve,
		"RADIUS_MODE":   &c.Layout.RadiusMode,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"WIDTH":      &c.Display.Width,
		"HEIGHT":     &c.Display.Height,
		"SCALE":      &c.Display.Scale,
		"PIXOO_PORT": &c.Display.PixooPort,
	}
	for name, dst := range ints {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"DEBUG":             &c.Debug,
		"METRICS":           &c.Inbox.Metrics,
		"DISABLE_ANIMATION": &c.Animation.Disabled,
	}
	for name, dst := range bools {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = b
		}
	}
	return nil
}
