// Package settings holds the tunable parameters for the palette synthesis
// engine and the layered viper configuration loader that resolves them.
package settings

import "context"

type contextKey string

const settingsKey contextKey = "settings"

// Settings collects every tunable the synthesis pipeline reads. Values are
// resolved once by Load and then threaded through the call tree via
// context.Context — the core engine never touches viper directly.
type Settings struct {
	Quality QualitySettings `mapstructure:"quality"`
	Roles   RoleSettings    `mapstructure:"roles"`
	Cluster ClusterSettings `mapstructure:"cluster"`
	Mood    MoodSettings    `mapstructure:"mood"`
	Synth   SynthSettings   `mapstructure:"synth"`
}

// QualitySettings configures the chroma-clamp and de-duplication gates.
type QualitySettings struct {
	MaxChroma               float64 `mapstructure:"max_chroma"`
	DuplicateThresholdColor float64 `mapstructure:"duplicate_threshold_color"`
	DuplicateThresholdMood  float64 `mapstructure:"duplicate_threshold_mood"`
	DuplicateThresholdImage float64 `mapstructure:"duplicate_threshold_image"`
}

// RoleSettings configures the lightness band used to qualify a primary
// role candidate.
type RoleSettings struct {
	PrimaryLightnessMin float64 `mapstructure:"primary_lightness_min"`
	PrimaryLightnessMax float64 `mapstructure:"primary_lightness_max"`
}

// ClusterSettings configures the image dominant-color extractor.
type ClusterSettings struct {
	MaxIterations  int `mapstructure:"max_iterations"`
	MinDominant    int `mapstructure:"min_dominant"`
	MaxDominant    int `mapstructure:"max_dominant"`
	PixelsPerGroup int `mapstructure:"pixels_per_group"`
}

// MoodSettings configures the mood-driven synthesizer.
type MoodSettings struct {
	Shuffle              bool    `mapstructure:"shuffle"`
	HueJitterDeg         float64 `mapstructure:"hue_jitter_deg"`
	FallbackChromaMin    float64 `mapstructure:"fallback_chroma_min"`
	FallbackChromaMax    float64 `mapstructure:"fallback_chroma_max"`
	FallbackLightnessMin float64 `mapstructure:"fallback_lightness_min"`
	FallbackLightnessMax float64 `mapstructure:"fallback_lightness_max"`
	AllowFallbackRandom  bool    `mapstructure:"allow_fallback_random"`
}

// SynthSettings configures overall palette shaping.
type SynthSettings struct {
	MinSize int `mapstructure:"min_size"`
	MaxSize int `mapstructure:"max_size"`
}

// WithSettings attaches s to ctx for downstream retrieval via FromContext.
func WithSettings(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, settingsKey, s)
}

// FromContext returns the Settings attached to ctx, or the layered default
// configuration if none was attached.
func FromContext(ctx context.Context) *Settings {
	if s, ok := ctx.Value(settingsKey).(*Settings); ok {
		return s
	}
	s, _ := Load()
	return s
}
