package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/locallens/bizrank/internal/usecase/personalize"
)

// Config holds the bizrank configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// ScoringConfig holds the tunable weight table of the personalization model.
// Zero fields fall back to the production defaults.
type ScoringConfig struct {
	InterestMatch      float64        `yaml:"interest_match"`
	SubcategoryMatch   float64        `yaml:"subcategory_match"`
	DealBreakerPenalty float64        `yaml:"deal_breaker_penalty"`
	DistanceBands      []BandConfig   `yaml:"distance_bands"`
	RatingMultiplier   float64        `yaml:"rating_multiplier"`
	ReviewLogFactor    float64        `yaml:"review_log_factor"`
	VerifiedBonus      float64        `yaml:"verified_bonus"`
	ReviewVolume       VolumeConfig   `yaml:"review_volume"`
	RecencyWindows     []WindowConfig `yaml:"recency_windows"`
	Insights           InsightConfig  `yaml:"insights"`
}

// BandConfig is one stepped distance-decay band.
type BandConfig struct {
	MaxKm  float64 `yaml:"max_km"`
	Points float64 `yaml:"points"`
}

// VolumeConfig holds the review-volume freshness term settings.
type VolumeConfig struct {
	Divisor float64 `yaml:"divisor"`
	Cap     float64 `yaml:"cap"`
}

// WindowConfig is one recency freshness window.
type WindowConfig struct {
	MaxAgeDays int     `yaml:"max_age_days"`
	Points     float64 `yaml:"points"`
}

// InsightConfig holds insight-generation thresholds.
type InsightConfig struct {
	HighRatingMin   float64 `yaml:"high_rating_min"`
	FriendlinessMin float64 `yaml:"friendliness_min"`
	PunctualityMin  float64 `yaml:"punctuality_min"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with the production weight table.
func (c *Config) ApplyDefaults() {
	def := personalize.DefaultWeights()
	s := &c.Scoring

	if s.InterestMatch <= 0 {
		s.InterestMatch = def.InterestMatch
	}
	if s.SubcategoryMatch <= 0 {
		s.SubcategoryMatch = def.SubcategoryMatch
	}
	if s.DealBreakerPenalty <= 0 {
		s.DealBreakerPenalty = def.DealBreakerPenalty
	}
	if len(s.DistanceBands) == 0 {
		for _, b := range def.DistanceBands {
			s.DistanceBands = append(s.DistanceBands, BandConfig{MaxKm: b.MaxKm, Points: b.Points})
		}
	}
	if s.RatingMultiplier <= 0 {
		s.RatingMultiplier = def.RatingMultiplier
	}
	if s.ReviewLogFactor <= 0 {
		s.ReviewLogFactor = def.ReviewLogFactor
	}
	if s.VerifiedBonus <= 0 {
		s.VerifiedBonus = def.VerifiedBonus
	}
	if s.ReviewVolume.Divisor <= 0 {
		s.ReviewVolume.Divisor = def.ReviewVolumeDivisor
	}
	if s.ReviewVolume.Cap <= 0 {
		s.ReviewVolume.Cap = def.ReviewVolumeCap
	}
	if len(s.RecencyWindows) == 0 {
		for _, w := range def.RecencyWindows {
			s.RecencyWindows = append(s.RecencyWindows, WindowConfig{MaxAgeDays: w.MaxAgeDays, Points: w.Points})
		}
	}
	if s.Insights.HighRatingMin <= 0 {
		s.Insights.HighRatingMin = def.HighRatingInsightMin
	}
	if s.Insights.FriendlinessMin <= 0 {
		s.Insights.FriendlinessMin = def.FriendlinessInsightMin
	}
	if s.Insights.PunctualityMin <= 0 {
		s.Insights.PunctualityMin = def.PunctualityInsightMin
	}
}

// Validate checks the configuration for correctness. A config file cannot
// silently invert the design invariants of the scoring model.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if err := c.Weights().Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}

// Weights converts the scoring section into the engine weight table.
func (c *Config) Weights() personalize.Weights {
	s := c.Scoring
	w := personalize.Weights{
		InterestMatch:          s.InterestMatch,
		SubcategoryMatch:       s.SubcategoryMatch,
		DealBreakerPenalty:     s.DealBreakerPenalty,
		RatingMultiplier:       s.RatingMultiplier,
		ReviewLogFactor:        s.ReviewLogFactor,
		VerifiedBonus:          s.VerifiedBonus,
		ReviewVolumeDivisor:    s.ReviewVolume.Divisor,
		ReviewVolumeCap:        s.ReviewVolume.Cap,
		HighRatingInsightMin:   s.Insights.HighRatingMin,
		FriendlinessInsightMin: s.Insights.FriendlinessMin,
		PunctualityInsightMin:  s.Insights.PunctualityMin,
	}
	for _, b := range s.DistanceBands {
		w.DistanceBands = append(w.DistanceBands, personalize.DistanceBand{MaxKm: b.MaxKm, Points: b.Points})
	}
	for _, win := range s.RecencyWindows {
		w.RecencyWindows = append(w.RecencyWindows, personalize.RecencyWindow{MaxAgeDays: win.MaxAgeDays, Points: win.Points})
	}
	return w
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
