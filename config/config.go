// Package config holds the tunables of the game and its command line
// clients. Environment variables set the defaults, a YAML file and flags
// override them.
package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Configuration variables. These aren't user facing but useful for tuning on
// slow terminals or shared databases.
var (
	TickMS       = getEnvInt("SNAKE_TICK_MS", 200)
	APIRate      = rate.Limit(getEnvInt("SNAKE_API_RPS", 20))
	APIBurst     = getEnvInt("SNAKE_API_BURST", 10)
	MaxOpenConns = getEnvInt("SNAKE_MAX_OPEN_CONNS", 5)
	MaxIdleConns = getEnvInt("SNAKE_MAX_IDLE_CONNS", 2)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// Config is the file form of the settings.
type Config struct {
	TickMS      int              `yaml:"tick_ms"`
	Backend     string           `yaml:"backend"`
	BackendArgs string           `yaml:"backend_args"`
	LogLevel    string           `yaml:"log_level"`
	LogFile     string           `yaml:"log_file"`
	API         APIConfig        `yaml:"api"`
	Prometheus  PrometheusConfig `yaml:"prometheus"`
}

// APIConfig configures the status API. An empty Listen turns it off.
type APIConfig struct {
	Listen string `yaml:"listen"`
	RPS    int    `yaml:"rps"`
	Burst  int    `yaml:"burst"`
}

// PrometheusConfig configures the metrics endpoint.
type PrometheusConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.TickMS <= 0 {
		c.TickMS = TickMS
	}
	if c.Backend == "" {
		c.Backend = "file"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.API.RPS <= 0 {
		c.API.RPS = int(APIRate)
	}
	if c.API.Burst <= 0 {
		c.API.Burst = APIBurst
	}
	if c.Prometheus.Listen == "" {
		c.Prometheus.Listen = ":9090"
	}
}

// Load reads a YAML config file, filling in defaults for what it leaves out.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path) // nolint: gosec
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config file")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse config file")
	}
	cfg.setDefaults()
	return cfg, nil
}

// TickInterval is how often the snake moves.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Limiter returns the rate limiter for the status API.
func (c *Config) Limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(c.API.RPS), c.API.Burst)
}

// Overrides are settings given on the command line. Nil fields were not
// set and leave the file or default value alone.
type Overrides struct {
	LogLevel          *string
	LogFile           *string
	Backend           *string
	BackendArgs       *string
	APIListen         *string
	PrometheusEnabled *bool
	PrometheusListen  *string
	TickMS            *int
}

// Apply lays o over c.
func (c *Config) Apply(o Overrides) {
	setString(&c.LogLevel, o.LogLevel)
	setString(&c.LogFile, o.LogFile)
	setString(&c.Backend, o.Backend)
	setString(&c.BackendArgs, o.BackendArgs)
	setString(&c.API.Listen, o.APIListen)
	setString(&c.Prometheus.Listen, o.PrometheusListen)
	if o.PrometheusEnabled != nil {
		c.Prometheus.Enabled = *o.PrometheusEnabled
	}
	if o.TickMS != nil && *o.TickMS > 0 {
		c.TickMS = *o.TickMS
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Resolve loads the file at path, or the defaults when path is empty, and
// applies o on top.
func Resolve(path string, o Overrides) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Apply(o)
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	return level, errors.Wrap(err, "invalid log level")
}
