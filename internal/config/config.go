// Package config holds the per-evaluation configuration for the canary
// control loop. Configs are immutable for the duration of one run; the
// controller re-reads them between runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region canary-config

// CanaryConfig governs whether and how often the candidate engine is sampled.
type CanaryConfig struct {
	Enabled             bool   `yaml:"enabled"`
	RolloutBps          int    `yaml:"rollout_bps"` // basis points of traffic in [0, 10000]
	Salt                string `yaml:"salt"`
	RollbackWindowRuns  int    `yaml:"rollback_window_runs"`
	ForceCanaryError    bool   `yaml:"force_canary_error"`
	ForceShadowError    bool   `yaml:"force_shadow_error"`
	ForceAltShadowError bool   `yaml:"force_alt_shadow_error"`
	ForceSkipReason     string `yaml:"force_skip_reason"` // non-empty = operator skip
	MaxShadowDiffs      int    `yaml:"max_shadow_diffs"`
	MaxAltShadowDiffs   int    `yaml:"max_alt_shadow_diffs"`
	ShadowEnabled       bool   `yaml:"shadow_enabled"`
	AltShadowEnabled    bool   `yaml:"alt_shadow_enabled"`
}

// DefaultCanaryConfig returns a conservative starting point: canary off,
// shadow comparison on, a 50-run rollback window.
func DefaultCanaryConfig() CanaryConfig {
	return CanaryConfig{
		Enabled:            false,
		RolloutBps:         0,
		Salt:               "",
		RollbackWindowRuns: 50,
		MaxShadowDiffs:     200,
		MaxAltShadowDiffs:  100,
		ShadowEnabled:      true,
		AltShadowEnabled:   false,
	}
}

// #endregion canary-config

// #region primary-config

// PrimaryConfig describes the graduated-rollout posture. Enabled=true means
// the candidate engine is the default primary and v1 is the safety net;
// Enabled=false means v1 stays primary and the candidate only serves runs it
// wins as a canary sample.
type PrimaryConfig struct {
	Enabled           bool `yaml:"enabled"`
	FallbackOnTimeout bool `yaml:"fallback_on_timeout"`
	FallbackOnLimited bool `yaml:"fallback_on_limited"`
	ForcePrimaryError bool `yaml:"force_primary_error"`
}

// DefaultPrimaryConfig keeps v1 primary with both safety fallbacks armed.
func DefaultPrimaryConfig() PrimaryConfig {
	return PrimaryConfig{
		Enabled:           false,
		FallbackOnTimeout: true,
		FallbackOnLimited: true,
	}
}

// #endregion primary-config

// #region rollback-thresholds

// RollbackThresholds is the concrete window-summary policy: a window with at
// least MinSamples samples latches the rollback when any failure fraction
// strictly exceeds its threshold.
type RollbackThresholds struct {
	MinSamples           int     `yaml:"min_samples"`
	MaxErrorRate         float64 `yaml:"max_error_rate"`
	MaxTimeoutRate       float64 `yaml:"max_timeout_rate"`
	MaxLimitedRate       float64 `yaml:"max_limited_rate"`
	MaxNegativeDeltaRate float64 `yaml:"max_negative_delta_rate"`
}

// DefaultRollbackThresholds returns the production policy.
func DefaultRollbackThresholds() RollbackThresholds {
	return RollbackThresholds{
		MinSamples:           5,
		MaxErrorRate:         0.20,
		MaxTimeoutRate:       0.50,
		MaxLimitedRate:       0.80,
		MaxNegativeDeltaRate: 0.60,
	}
}

// #endregion rollback-thresholds

// #region root-config

// Config roots every knob the controller reads per evaluation.
type Config struct {
	Canary     CanaryConfig       `yaml:"canary"`
	Primary    PrimaryConfig      `yaml:"primary"`
	Thresholds RollbackThresholds `yaml:"rollback_thresholds"`
}

// Default returns the full default configuration.
func Default() Config {
	return Config{
		Canary:     DefaultCanaryConfig(),
		Primary:    DefaultPrimaryConfig(),
		Thresholds: DefaultRollbackThresholds(),
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values. The result is sanitized before return.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize clamps out-of-range values to safe defaults instead of erroring:
// the control loop must never be the reason a matching request fails.
func (c *Config) Sanitize() {
	if c.Canary.RolloutBps < 0 {
		c.Canary.RolloutBps = 0
	}
	if c.Canary.RolloutBps > 10000 {
		c.Canary.RolloutBps = 10000
	}
	if c.Canary.RollbackWindowRuns < 1 {
		c.Canary.RollbackWindowRuns = 1
	}
	if c.Canary.MaxShadowDiffs < 0 {
		c.Canary.MaxShadowDiffs = 0
	}
	if c.Canary.MaxAltShadowDiffs < 0 {
		c.Canary.MaxAltShadowDiffs = 0
	}
	if c.Thresholds.MinSamples < 1 {
		c.Thresholds.MinSamples = 1
	}
}

// #endregion root-config
