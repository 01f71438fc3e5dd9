package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when --config is not given; a missing file there means defaults.
const DefaultPath = "labkit.toml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log       LogConfig       `toml:"log"`
	Transform TransformConfig `toml:"transform"`
	Iris      IrisConfig      `toml:"iris"`
	Server    ServerConfig    `toml:"server"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

type TransformConfig struct {
	ConfirmOverwrite bool `toml:"confirm_overwrite"`
}

type IrisConfig struct {
	FigurePath  string  `toml:"figure_path"`
	SummaryPath string  `toml:"summary_path"`
	HeadRows    int     `toml:"head_rows"`
	HistBins    int     `toml:"hist_bins"`
	WidthIn     float64 `toml:"width_in"`
	HeightIn    float64 `toml:"height_in"`
}

type ServerConfig struct {
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
		Transform: TransformConfig{
			ConfirmOverwrite: true,
		},
		Iris: IrisConfig{
			FigurePath: "iris_visualizations.png",
			HeadRows:   5,
			HistBins:   15,
			WidthIn:    15,
			HeightIn:   12,
		},
		Server: ServerConfig{
			Addr:        ":9000",
			CorsOrigins: []string{"http://localhost:3000"},
		},
	}
}

// fileConfig mirrors Config with pointer-free fields; meta decides what overrides defaults.
type fileConfig struct {
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
	Transform struct {
		ConfirmOverwrite bool `toml:"confirm_overwrite"`
	} `toml:"transform"`
	Iris struct {
		FigurePath  string  `toml:"figure_path"`
		SummaryPath string  `toml:"summary_path"`
		HeadRows    int     `toml:"head_rows"`
		HistBins    int     `toml:"hist_bins"`
		WidthIn     float64 `toml:"width_in"`
		HeightIn    float64 `toml:"height_in"`
	} `toml:"iris"`
	Server struct {
		Addr        string   `toml:"addr"`
		CorsOrigins []string `toml:"cors_origins"`
	} `toml:"server"`
	Metrics struct {
		Textfile string `toml:"textfile"`
	} `toml:"metrics"`
}

// Load decodes path over Default(). Only keys present in the file override defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load labkit config (%s): %w", path, err)
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if meta.IsDefined("transform", "confirm_overwrite") {
		cfg.Transform.ConfirmOverwrite = raw.Transform.ConfirmOverwrite
	}

	if meta.IsDefined("iris", "figure_path") {
		cfg.Iris.FigurePath = strings.TrimSpace(raw.Iris.FigurePath)
	}
	if meta.IsDefined("iris", "summary_path") {
		cfg.Iris.SummaryPath = strings.TrimSpace(raw.Iris.SummaryPath)
	}
	if meta.IsDefined("iris", "head_rows") {
		cfg.Iris.HeadRows = raw.Iris.HeadRows
	}
	if meta.IsDefined("iris", "hist_bins") {
		cfg.Iris.HistBins = raw.Iris.HistBins
	}
	if meta.IsDefined("iris", "width_in") {
		cfg.Iris.WidthIn = raw.Iris.WidthIn
	}
	if meta.IsDefined("iris", "height_in") {
		cfg.Iris.HeightIn = raw.Iris.HeightIn
	}

	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = normalizeList(raw.Server.CorsOrigins)
	}

	if meta.IsDefined("metrics", "textfile") {
		cfg.Metrics.Textfile = strings.TrimSpace(raw.Metrics.Textfile)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault treats a missing file at DefaultPath as "use defaults".
func LoadOrDefault(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load labkit config (%s): %w", path, err)
	}
	return Load(path)
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Iris.FigurePath) == "" {
		return fmt.Errorf("%w: iris.figure_path is required", ErrInvalidConfig)
	}
	if cfg.Iris.HeadRows < 0 {
		return fmt.Errorf("%w: iris.head_rows must be >= 0", ErrInvalidConfig)
	}
	if cfg.Iris.HistBins <= 0 {
		return fmt.Errorf("%w: iris.hist_bins must be > 0", ErrInvalidConfig)
	}
	if cfg.Iris.WidthIn <= 0 || cfg.Iris.HeightIn <= 0 {
		return fmt.Errorf("%w: iris figure size must be positive", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalidConfig)
	}
	return nil
}

func normalizeList(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
