// Package config holds the compositor's tunable constants and loads them
// through viper, the way LanternOps-breeze's agent config loads onto a
// mapstructure-tagged struct. Most magic numbers named in the camera,
// cursor-smoothing, and keystroke sections of the spec live here. A few
// remain literals in internal/camera: the dead-zone scale breakpoints 1.1
// and 2.5, the 1.25 freeze scale threshold, the 50ms velocity window and
// its 400ms/8-sample attractor, the [0.5, 3] playback-rate clamp, and the
// 300ms intro/outro fallback in ramp.go (DefaultIntroMs and DefaultOutroMs
// are not read by it).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Camera holds the Camera Engine's (component F) tunables.
type Camera struct {
	DeadZoneRatioNear float64 `mapstructure:"dead_zone_ratio_near"` // at scale 1.1
	DeadZoneRatioFar  float64 `mapstructure:"dead_zone_ratio_far"`  // at scale 2.5
	SoftFollowGain    float64 `mapstructure:"soft_follow_gain"`     // 0.25
	DirectionalBias   float64 `mapstructure:"directional_bias"`     // 0.7
	PredictiveGain    float64 `mapstructure:"predictive_gain"`      // small offset from smoothed cursor velocity
	StopVelocityMax   float64 `mapstructure:"stop_velocity_max"`    // 0.02 normalized units/s
	StopHoldMs        float64 `mapstructure:"stop_hold_ms"`         // 300
	StopHysteresis    float64 `mapstructure:"stop_hysteresis"`      // 1.5x
	StopDamping       float64 `mapstructure:"stop_damping"`         // ~3
	StopSnapEpsilon   float64 `mapstructure:"stop_snap_epsilon"`    // 0.003
	SeekThresholdMs   float64 `mapstructure:"seek_threshold_ms"`    // 100
	TensionPerRate    float64 `mapstructure:"tension_per_rate"`     // 120
	FrictionPerRate   float64 `mapstructure:"friction_per_rate"`    // 25 (sqrt(rate) applied)
	DefaultIntroMs    float64 `mapstructure:"default_intro_ms"`     // 300
	DefaultOutroMs    float64 `mapstructure:"default_outro_ms"`     // 300
	ClusterRadiusFrac float64 `mapstructure:"cluster_radius_frac"`  // 0.15 * diag
	ClusterMinHoldMs  float64 `mapstructure:"cluster_min_hold_ms"`  // 400
	CinematicWindowMs float64 `mapstructure:"cinematic_window_ms"`  // 400
	CinematicSamples  int     `mapstructure:"cinematic_samples"`    // 8
	FallbackSourceW   int     `mapstructure:"fallback_source_w"`    // 1920
	FallbackSourceH   int     `mapstructure:"fallback_source_h"`    // 1080
	PhysicalScaleTol  float64 `mapstructure:"physical_scale_tol"`   // 1.10 (10% over)
}

// Cursor holds the Cursor Smoother's (component D) tunables.
type Cursor struct {
	ReconstructLookbackMinMs float64 `mapstructure:"reconstruct_lookback_min_ms"` // 90
	ReconstructBaseMs        float64 `mapstructure:"reconstruct_base_ms"`         // 120
	ReconstructSmoothSpanMs  float64 `mapstructure:"reconstruct_smooth_span_ms"`  // 300
	ReconstructSpeedBase     float64 `mapstructure:"reconstruct_speed_base"`      // 0.55
	ReconstructSpeedSpan     float64 `mapstructure:"reconstruct_speed_span"`      // 0.4
	StepReuseWindowMs        float64 `mapstructure:"step_reuse_window_ms"`        // 120
	TauMin                   float64 `mapstructure:"tau_min"`                     // 6
	TauBaseMin               float64 `mapstructure:"tau_base_min"`                // 14
	TauBaseMax               float64 `mapstructure:"tau_base_max"`                // 160
	SpeedTauFactor           float64 `mapstructure:"speed_tau_factor"`            // 1.35
	FarBoostDivisor          float64 `mapstructure:"far_boost_divisor"`           // 80
	FarBoostMaxExtra         float64 `mapstructure:"far_boost_max_extra"`         // 3
	JitterRadiusMin          float64 `mapstructure:"jitter_radius_min"`           // 0.9 px
	JitterRadiusMax          float64 `mapstructure:"jitter_radius_max"`           // 2.5 px
	IdleFadeOutMs            float64 `mapstructure:"idle_fade_out_ms"`            // 300
	IdleFadeInMs             float64 `mapstructure:"idle_fade_in_ms"`             // 180
	ClickRippleMaxAgeMs      float64 `mapstructure:"click_ripple_max_age_ms"`     // 300
	ClickRippleGrowMs        float64 `mapstructure:"click_ripple_grow_ms"`        // 200
	ClickRippleBaseRadius    float64 `mapstructure:"click_ripple_base_radius"`    // 10
	ClickRippleGrowRadius    float64 `mapstructure:"click_ripple_grow_radius"`    // 50
	CacheSize                int     `mapstructure:"cache_size"`                  // LRU bound
}

// Keystroke holds the Keystroke Aggregator's (component H) tunables.
type Keystroke struct {
	FlushIdleMs  float64 `mapstructure:"flush_idle_ms"`  // 800
	FadeInMs     float64 `mapstructure:"fade_in_ms"`     // 200
	VisibleMs    float64 `mapstructure:"visible_ms"`     // 2500
	FadeOutMs    float64 `mapstructure:"fade_out_ms"`    // 300
}

// Effects holds the Effect Resolver's (component I) tunables.
type Effects struct {
	FadeInMs  float64 `mapstructure:"fade_in_ms"`  // 200
	FadeOutMs float64 `mapstructure:"fade_out_ms"` // 200
}

// Output describes the render target geometry the Camera Engine projects into.
type Output struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	FPS    int `mapstructure:"fps"`
}

// Logging controls the internal/logging backend.
type Logging struct {
	Format string `mapstructure:"format"` // text|json
	Level  string `mapstructure:"level"`  // debug|info|warn|error
}

// Config is the compositor's full tunable set.
type Config struct {
	Output    Output    `mapstructure:"output"`
	Camera    Camera    `mapstructure:"camera"`
	Cursor    Cursor    `mapstructure:"cursor"`
	Keystroke Keystroke `mapstructure:"keystroke"`
	Effects   Effects   `mapstructure:"effects"`
	Logging   Logging   `mapstructure:"logging"`
}

// Default returns the configuration with every constant spec.md spells out
// literally (§4.D-1, §4.F, §4.H).
func Default() *Config {
	return &Config{
		Output: Output{Width: 1920, Height: 1080, FPS: 30},
		Camera: Camera{
			DeadZoneRatioNear: 0.30,
			DeadZoneRatioFar:  0.18,
			SoftFollowGain:    0.25,
			DirectionalBias:   0.7,
			PredictiveGain:    0.15,
			StopVelocityMax:   0.02,
			StopHoldMs:        300,
			StopHysteresis:    1.5,
			StopDamping:       3.0,
			StopSnapEpsilon:   0.003,
			SeekThresholdMs:   100,
			TensionPerRate:    120,
			FrictionPerRate:   25,
			DefaultIntroMs:    300,
			DefaultOutroMs:    300,
			ClusterRadiusFrac: 0.15,
			ClusterMinHoldMs:  400,
			CinematicWindowMs: 400,
			CinematicSamples:  8,
			FallbackSourceW:   1920,
			FallbackSourceH:   1080,
			PhysicalScaleTol:  1.10,
		},
		Cursor: Cursor{
			ReconstructLookbackMinMs: 90,
			ReconstructBaseMs:        120,
			ReconstructSmoothSpanMs:  300,
			ReconstructSpeedBase:     0.55,
			ReconstructSpeedSpan:     0.4,
			StepReuseWindowMs:        120,
			TauMin:                   6,
			TauBaseMin:               14,
			TauBaseMax:               160,
			SpeedTauFactor:           1.35,
			FarBoostDivisor:          80,
			FarBoostMaxExtra:         3,
			JitterRadiusMin:          0.9,
			JitterRadiusMax:          2.5,
			IdleFadeOutMs:            300,
			IdleFadeInMs:             180,
			ClickRippleMaxAgeMs:      300,
			ClickRippleGrowMs:        200,
			ClickRippleBaseRadius:    10,
			ClickRippleGrowRadius:    50,
			CacheSize:                512,
		},
		Keystroke: Keystroke{
			FlushIdleMs: 800,
			FadeInMs:    200,
			VisibleMs:   2500,
			FadeOutMs:   300,
		},
		Effects: Effects{
			FadeInMs:  200,
			FadeOutMs: 200,
		},
		Logging: Logging{Format: "text", Level: "info"},
	}
}

// Load builds a viper instance seeded with Default(), optionally merges a
// config file (path may be empty, in which case only defaults and
// COMPOSITOR_-prefixed environment overrides apply), and unmarshals into a
// Config. Mirrors breeze's config.Load: viper owns precedence, the struct
// is the typed result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COMPOSITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	setDefaults(v, "output", def.Output)
	setDefaults(v, "camera", def.Camera)
	setDefaults(v, "cursor", def.Cursor)
	setDefaults(v, "keystroke", def.Keystroke)
	setDefaults(v, "effects", def.Effects)
	setDefaults(v, "logging", def.Logging)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// setDefaults pushes every field of a leaf section into viper under the
// given key prefix. Explicit per-field wiring would be verbose here;
// instead each field goes through viper's own SetDefault via a tiny
// reflection-based struct-to-map helper.
func setDefaults(v *viper.Viper, prefix string, section any) {
	m := structToMap(section)
	for k, val := range m {
		v.SetDefault(prefix+"."+k, val)
	}
}
