package nodecanvas

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnknownConfigFormat = errors.New("unknown config format")

// Config holds the cosmetic options of a canvas. None of them affect the
// interaction state machine.
type Config struct {
	// DrawGrid paints the background grid.
	DrawGrid bool `toml:"draw_grid" yaml:"draw_grid"`
	// GridSpacing is the minor grid cell size in pixels.
	GridSpacing float64 `toml:"grid_spacing" yaml:"grid_spacing" validate:"gte=4,lte=512"`
	// DarkSkin forces the dark palette.
	DarkSkin bool `toml:"dark_skin" yaml:"dark_skin"`
	// EvidenceSelected outlines selected nodes.
	EvidenceSelected bool `toml:"evidence_selected" yaml:"evidence_selected"`
	// EvidenceColor is the outline color as #rrggbb or #rgb.
	EvidenceColor string `toml:"evidence_color" yaml:"evidence_color" validate:"omitempty,rgbhex"`
	// EvidenceWidth is the outline thickness in pixels.
	EvidenceWidth float64 `toml:"evidence_width" yaml:"evidence_width" validate:"gt=0,lte=16"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DrawGrid:         false,
		GridSpacing:      20,
		DarkSkin:         false,
		EvidenceSelected: true,
		EvidenceColor:    "#2f8cff",
		EvidenceWidth:    2,
	}
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// validator's hexcolor also accepts alpha forms that colorful rejects.
	_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		_, err := colorful.Hex(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks option ranges and the evidence color syntax.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// evidenceColor parses EvidenceColor, falling back to fallback when empty or
// malformed.
func (c Config) evidenceColor(fallback Color) Color {
	if c.EvidenceColor == "" {
		return fallback
	}
	col, err := colorful.Hex(c.EvidenceColor)
	if err != nil {
		return fallback
	}
	return Color{R: col.R, G: col.G, B: col.B, A: 1}
}

// ParseConfig decodes data in the given format ("toml", "yaml" or "yml") on
// top of DefaultConfig and validates the result.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml config: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("parse config: %w: %q", ErrUnknownConfigFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML or YAML config file, choosing the decoder by
// extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// WatchConfig reloads path whenever it is written and passes every config
// that loads cleanly to onChange. Load errors go to onError when it is set.
// It blocks until ctx is done. onChange runs on the watcher goroutine; hand
// the config to the redraw loop rather than touching a NodeProcess from it.
func WatchConfig(ctx context.Context, path string, onChange func(Config), onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are seen too.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch config %s: %w", path, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
