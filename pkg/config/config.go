package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Model struct {
		Seed            uint64             `yaml:"seed"`
		Segments        []string           `yaml:"segments"`
		BasePD          map[string]float64 `yaml:"base_pd"`
		PDFloor         float64            `yaml:"pd_floor"`
		PDCap           float64            `yaml:"pd_cap"`
		LGDRange        []float64          `yaml:"lgd_range"`
		EADRange        []int              `yaml:"ead_range"`
		CouponRange     []float64          `yaml:"coupon_range"`
		TermRangeMonths []int              `yaml:"term_range_months"`
	} `yaml:"model"`
	Cache struct {
		SnapshotTTL time.Duration `yaml:"snapshot_ttl"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("MODEL_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Model.Seed = s
		}
	}
	if v := os.Getenv("MODEL_SEGMENTS"); v != "" {
		c.Model.Segments = strings.Split(v, ",")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Model.Segments) == 0 {
		return fmt.Errorf("model.segments cannot be empty")
	}
	for _, seg := range c.Model.Segments {
		if _, ok := c.Model.BasePD[seg]; !ok {
			return fmt.Errorf("model.base_pd missing entry for segment '%s'", seg)
		}
	}
	if len(c.Model.LGDRange) != 2 || len(c.Model.EADRange) != 2 ||
		len(c.Model.CouponRange) != 2 || len(c.Model.TermRangeMonths) != 2 {
		return fmt.Errorf("model ranges must be [min, max] pairs")
	}
	return nil
}
