// Package config loads the fpl configuration: tax rates, allocation tables,
// chart options and logging.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/etnz/finplan"
)

// DefaultPath is where the configuration file is looked for.
const DefaultPath = "config/config.json"

// Config holds the full application configuration.
type Config struct {
	Tax         TaxConfig                          `json:"tax" yaml:"tax" mapstructure:"tax"`
	Allocations map[string]finplan.AllocationModel `json:"allocations" yaml:"allocations" mapstructure:"allocations"`
	Classic     map[string]finplan.ClassicSplit    `json:"allocation_classic" yaml:"allocation_classic" mapstructure:"allocation_classic"`
	Chart       ChartConfig                        `json:"chart" yaml:"chart" mapstructure:"chart"`
	Log         LogConfig                          `json:"log" yaml:"log" mapstructure:"log"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `json:"-" yaml:"-" mapstructure:"-"`
}

// TaxConfig holds the flat tax rates, as fractions.
type TaxConfig struct {
	DividendRate    float64 `json:"dividend_rate" yaml:"dividend_rate" mapstructure:"dividend_rate"`
	CapitalGainRate float64 `json:"capital_gain_rate" yaml:"capital_gain_rate" mapstructure:"capital_gain_rate"`
}

// ChartConfig configures the chart artifacts.
type ChartConfig struct {
	Save      bool   `json:"save" yaml:"save" mapstructure:"save"`
	Show      bool   `json:"show" yaml:"show" mapstructure:"show"`
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
	// FontPath is a TrueType font able to draw Hangul. The built-in font is
	// used when empty.
	FontPath string `json:"font_path" yaml:"font_path" mapstructure:"font_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Tax: TaxConfig{
			DividendRate:    float64(finplan.DefaultDividendRate),
			CapitalGainRate: float64(finplan.DefaultCapitalGainRate),
		},
		Chart: ChartConfig{Save: true, Show: false, OutputDir: "output"},
		Log:   LogConfig{Level: "info", Format: "console"},
	}
	cfg.fillTables()
	return cfg
}

func (c *Config) fillTables() {
	if len(c.Allocations) == 0 {
		c.Allocations = make(map[string]finplan.AllocationModel)
		for cat, m := range finplan.DefaultModels() {
			c.Allocations[cat.String()] = m
		}
	}
	if len(c.Classic) == 0 {
		c.Classic = make(map[string]finplan.ClassicSplit)
		for cat, s := range finplan.DefaultClassicSplits() {
			c.Classic[cat.String()] = s
		}
	}
}

// Load reads the configuration file at path, if any, and the FINPLAN_*
// environment variables. A missing file is not an error: the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("FINPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("tax.dividend_rate", def.Tax.DividendRate)
	v.SetDefault("tax.capital_gain_rate", def.Tax.CapitalGainRate)
	v.SetDefault("chart.save", def.Chart.Save)
	v.SetDefault("chart.show", def.Chart.Show)
	v.SetDefault("chart.output_dir", def.Chart.OutputDir)
	v.SetDefault("chart.font_path", def.Chart.FontPath)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	source := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(err, "config: read file %s", path)
		}
		source = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	cfg.Source = source
	cfg.fillTables()

	if _, err := cfg.Catalog(); err != nil {
		return nil, err
	}
	if _, err := cfg.ClassicSplits(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Catalog builds the allocation catalog. Categories may be keyed by their
// english name or their label.
func (c *Config) Catalog() (*finplan.Catalog, error) {
	models := make(map[finplan.RiskCategory]finplan.AllocationModel, len(c.Allocations))
	for key, m := range c.Allocations {
		cat, err := finplan.ParseRiskCategory(key)
		if err != nil {
			return nil, eris.Wrap(err, "config: allocations")
		}
		models[cat] = m
	}
	catalog, err := finplan.NewCatalog(models)
	if err != nil {
		return nil, eris.Wrap(err, "config: allocations")
	}
	return catalog, nil
}

// ClassicSplits returns the coarse split of every category.
func (c *Config) ClassicSplits() (map[finplan.RiskCategory]finplan.ClassicSplit, error) {
	splits := make(map[finplan.RiskCategory]finplan.ClassicSplit, len(c.Classic))
	for key, s := range c.Classic {
		cat, err := finplan.ParseRiskCategory(key)
		if err != nil {
			return nil, eris.Wrap(err, "config: allocation_classic")
		}
		splits[cat] = s
	}
	return splits, nil
}

// DividendRate returns the dividend tax rate.
func (c *Config) DividendRate() finplan.Rate { return finplan.Rate(c.Tax.DividendRate) }

// CapitalGainRate returns the capital gains tax rate.
func (c *Config) CapitalGainRate() finplan.Rate { return finplan.Rate(c.Tax.CapitalGainRate) }

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
