// Package scmconfig binds the recognized configuration options of §6.4.
// Load reads from the environment (optionally preloaded from a .env file
// via github.com/joho/godotenv) over a set of defaults; the surface here is
// just the seven options §6.4 names — no database, AI, or server
// configuration belongs in this module.
package scmconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every recognized option from spec.md §6.4.
type Config struct {
	SampleCount         int     // default 100, permitted 50-1000
	KDEPointCount       int     // default 50
	GlobalMinClamp      float64 // default 0.1
	GlobalMaxClamp      float64 // default 10.0
	DefaultPriorWeight  float64 // default 0.0
	DefaultMaxStdDevRatio float64 // default 3.0
	RNGSeed             int64   // read only when HasSeed; otherwise app.NewService uses a time-derived seed
	HasSeed             bool    // true if RNGSeed was explicitly set
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		SampleCount:           100,
		KDEPointCount:         50,
		GlobalMinClamp:        0.1,
		GlobalMaxClamp:        10.0,
		DefaultPriorWeight:    0.0,
		DefaultMaxStdDevRatio: 3.0,
	}
}

// Option mutates a Config; used by callers (notably cmd/scmcli) to override
// defaults without going through the environment.
type Option func(*Config)

// WithSampleCount overrides SampleCount, clamping to the permitted [50,1000]
// range from spec.md §3.1.
func WithSampleCount(n int) Option {
	return func(c *Config) {
		if n < 50 {
			n = 50
		}
		if n > 1000 {
			n = 1000
		}
		c.SampleCount = n
	}
}

// WithKDEPointCount overrides KDEPointCount.
func WithKDEPointCount(n int) Option {
	return func(c *Config) { c.KDEPointCount = n }
}

// WithSeed overrides RNGSeed and marks it as explicitly set.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.RNGSeed = seed
		c.HasSeed = true
	}
}

// Load reads the seven SCM_* environment variables over the defaults,
// optionally pre-populating the environment from a .env file at envFile (a
// missing file is not an error — godotenv.Load is only attempted if envFile
// is non-empty). Unset or unparseable variables fall back to defaults
// rather than failing the load, since every option here is optional.
func Load(envFile string, opts ...Option) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := Default()

	if v, ok := getenvInt("SCM_SAMPLE_COUNT"); ok {
		cfg.SampleCount = v
	}
	if v, ok := getenvInt("SCM_KDE_POINTS"); ok {
		cfg.KDEPointCount = v
	}
	if v, ok := getenvFloat("SCM_MIN_CLAMP"); ok {
		cfg.GlobalMinClamp = v
	}
	if v, ok := getenvFloat("SCM_MAX_CLAMP"); ok {
		cfg.GlobalMaxClamp = v
	}
	if v, ok := getenvFloat("SCM_PRIOR_WEIGHT"); ok {
		cfg.DefaultPriorWeight = v
	}
	if v, ok := getenvFloat("SCM_MAX_STDDEV_RATIO"); ok {
		cfg.DefaultMaxStdDevRatio = v
	}
	if v, ok := getenvInt64("SCM_RNG_SEED"); ok {
		cfg.RNGSeed = v
		cfg.HasSeed = true
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func getenvInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getenvInt64(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getenvFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
