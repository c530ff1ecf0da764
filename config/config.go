package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

const (
	SourceFiles    = "files"
	SourcePostgres = "postgres"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	DataDir        string        `env:"DATA_DIR" envDefault:"data"`
	DataSource     string        `env:"DATA_SOURCE" envDefault:"files"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	Variant        string        `env:"DASHBOARD_VARIANT" envDefault:"plain"`
	BannerPath     string        `env:"BANNER_PATH" envDefault:"banner.jpeg"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080,http://127.0.0.1:8080"`
	CORSDebug      bool          `env:"CORS_DEBUG" envDefault:"false"`
	LogJSON        bool          `env:"LOG_JSON" envDefault:"false"`
	StrictDatasets bool          `env:"STRICT_DATASETS" envDefault:"false"`
	ChartWidth     int           `env:"CHART_WIDTH" envDefault:"900"`
	ChartHeight    int           `env:"CHART_HEIGHT" envDefault:"450"`
}

// Load parses the environment into a Config and checks the values that
// would otherwise fail late.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DataSource {
	case SourceFiles:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	default:
		return errors.Newf("unknown DATA_SOURCE %q", c.DataSource)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return errors.Newf("chart size must be positive, got %dx%d", c.ChartWidth, c.ChartHeight)
	}
	if c.SessionTTL <= 0 {
		return errors.Newf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
