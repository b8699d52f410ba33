package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ExtractConfig exposes the extraction window and lead-time parameters so
// form layouts can be tuned without touching the search logic.
type ExtractConfig struct {
	Mode          string `yaml:"mode" mapstructure:"mode"`
	Marker        string `yaml:"marker" mapstructure:"marker"`
	LookaheadRows int    `yaml:"lookahead_rows" mapstructure:"lookahead_rows"`
	ColsBefore    int    `yaml:"cols_before" mapstructure:"cols_before"`
	ColsAfter     int    `yaml:"cols_after" mapstructure:"cols_after"`
	ValueOffsets  []int  `yaml:"value_offsets" mapstructure:"value_offsets"`
	LeadTimeDays  int    `yaml:"lead_time_days" mapstructure:"lead_time_days"`
}

// OutputConfig configures result serialization.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Dir    string `yaml:"dir" mapstructure:"dir"`
}

// StoreConfig configures the run-history database. An empty path disables
// run recording.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("extract.mode", "label")
	v.SetDefault("extract.marker", "booking form")
	v.SetDefault("extract.lookahead_rows", 50)
	v.SetDefault("extract.cols_before", 2)
	v.SetDefault("extract.cols_after", 8)
	v.SetDefault("extract.value_offsets", []int{1, 2, 3})
	v.SetDefault("extract.lead_time_days", 12)
	v.SetDefault("output.format", "xlsx")
	v.SetDefault("output.dir", ".")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for the given command mode and
// reports every problem at once.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch c.Extract.Mode {
	case "label", "fixed":
	default:
		problems = append(problems, "extract.mode must be label or fixed")
	}
	if c.Extract.LookaheadRows < 1 {
		problems = append(problems, "extract.lookahead_rows must be >= 1")
	}
	if c.Extract.LeadTimeDays < 0 {
		problems = append(problems, "extract.lead_time_days must be >= 0")
	}
	switch c.Output.Format {
	case "xlsx", "csv", "both":
	default:
		problems = append(problems, "output.format must be xlsx, csv, or both")
	}

	switch mode {
	case "extract", "batch":
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
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
