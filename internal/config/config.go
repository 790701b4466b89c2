package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/username/planner/internal/layout"
	"github.com/username/planner/internal/pagination"
	"github.com/username/planner/internal/pdfsurface"
	"github.com/username/planner/pkg/dateutil"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Range   RangeConfig   `mapstructure:"range"`
	Paper   PaperConfig   `mapstructure:"paper"`
	Layout  LayoutConfig  `mapstructure:"layout"`
	Binding BindingConfig `mapstructure:"binding"`
	Footer  FooterConfig  `mapstructure:"footer"`
	Notes   NotesConfig   `mapstructure:"notes"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// RangeConfig is the span of days to print
type RangeConfig struct {
	First string `mapstructure:"first"` // YYYY-MM-DD
	Last  string `mapstructure:"last"`
}

// PaperConfig selects the physical sheet
type PaperConfig struct {
	Size        string `mapstructure:"size"`        // letter, legal, a4, a5
	Orientation string `mapstructure:"orientation"` // portrait, landscape; empty picks per size
}

// LayoutConfig describes margins and the hole-punch strip
type LayoutConfig struct {
	MarginRatio      float64 `mapstructure:"margin_ratio"`       // of the page width, each side
	HoleOffsetInches float64 `mapstructure:"hole_offset_inches"` // strip reserved for holes
	HolesOnLeft      bool    `mapstructure:"holes_on_left"`
	HoleGuides       bool    `mapstructure:"hole_guides"`
}

// BindingConfig controls blank-page insertion
type BindingConfig struct {
	DoubleSided   bool `mapstructure:"double_sided"`
	TrailingBlank bool `mapstructure:"trailing_blank"`
}

// FooterConfig is the text printed at the bottom of every page
type FooterConfig struct {
	Text string `mapstructure:"text"`
}

// NotesConfig lists day-note files (holidays, events, birthdays)
type NotesConfig struct {
	Files []string `mapstructure:"files"`
}

// OutputConfig describes the generated document
type OutputConfig struct {
	File   string `mapstructure:"file"`
	Title  string `mapstructure:"title"`
	Author string `mapstructure:"author"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps command-line flags onto config keys
var flagKeys = map[string]string{
	"from":           "range.first",
	"to":             "range.last",
	"paper":          "paper.size",
	"output":         "output.file",
	"double-sided":   "binding.double_sided",
	"trailing-blank": "binding.trailing_blank",
	"footer":         "footer.text",
	"notes":          "notes.files",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("paper.size", "letter")
	v.SetDefault("layout.margin_ratio", 0.02)
	v.SetDefault("layout.hole_offset_inches", 0.8)
	v.SetDefault("layout.holes_on_left", true)
	v.SetDefault("layout.hole_guides", true)
	v.SetDefault("output.file", "planner.pdf")
	v.SetDefault("output.title", "Planner")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file, environment and the given flags.
// With an empty configPath the usual locations are searched and a missing file is not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.planner")
		v.AddConfigPath("/etc/planner")
	}

	// Read environment variables, e.g. PLANNER_RANGE_FIRST
	v.SetEnvPrefix("planner")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ExpandEnvVars()

	return &config, nil
}

// Validate validates the configuration. Geometry depending on the page width is
// checked separately by PageLayout once the paper size is known.
func (c *Config) Validate() error {
	if c.Range.First == "" {
		return fmt.Errorf("range.first is required")
	}
	if c.Range.Last == "" {
		return fmt.Errorf("range.last is required")
	}
	if _, err := c.DateRange(); err != nil {
		return err
	}

	if !pdfsurface.KnownPaper(c.Paper.Size) {
		return fmt.Errorf("paper.size must be letter, legal, a4 or a5, got '%s'", c.Paper.Size)
	}
	switch c.Paper.Orientation {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("paper.orientation must be 'portrait' or 'landscape', got '%s'", c.Paper.Orientation)
	}

	if c.Layout.MarginRatio < 0 || c.Layout.MarginRatio >= 0.5 {
		return fmt.Errorf("layout.margin_ratio must be in [0, 0.5), got %v", c.Layout.MarginRatio)
	}
	if c.Layout.HoleOffsetInches < 0 {
		return fmt.Errorf("layout.hole_offset_inches must not be negative")
	}

	if c.Output.File == "" {
		return fmt.Errorf("output.file is required")
	}

	if c.Log.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	return nil
}

// DateRange parses the configured range
func (c *Config) DateRange() (pagination.DateRange, error) {
	first, err := dateutil.ParseDate(c.Range.First)
	if err != nil {
		return pagination.DateRange{}, fmt.Errorf("range.first: %w", err)
	}
	last, err := dateutil.ParseDate(c.Range.Last)
	if err != nil {
		return pagination.DateRange{}, fmt.Errorf("range.last: %w", err)
	}
	return pagination.NewDateRange(first, last)
}

// Landscape reports the page orientation; A5 sheets default to landscape
func (c *Config) Landscape() bool {
	if c.Paper.Orientation == "" {
		return strings.EqualFold(c.Paper.Size, "a5")
	}
	return c.Paper.Orientation == "landscape"
}

// PageLayout builds the page geometry for a surface of the given size
func (c *Config) PageLayout(width, height float64) (layout.PageLayout, error) {
	margin := width * c.Layout.MarginRatio
	return layout.NewPageLayout(width, height, margin, margin,
		c.Layout.HoleOffsetInches*layout.PointsPerInch, c.Layout.HolesOnLeft)
}

// PaginationOptions returns the binding rules for the paginator
func (c *Config) PaginationOptions() pagination.Options {
	return pagination.Options{
		SingleSided:   !c.Binding.DoubleSided,
		TrailingBlank: c.Binding.TrailingBlank,
	}
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Footer.Text = os.ExpandEnv(c.Footer.Text)
	c.Output.File = os.ExpandEnv(c.Output.File)
	c.Output.Author = os.ExpandEnv(c.Output.Author)
	c.Log.File = os.ExpandEnv(c.Log.File)
	for i, f := range c.Notes.Files {
		c.Notes.Files[i] = os.ExpandEnv(f)
	}
}
