package settings

import (
	"fmt"

	"github.com/spf13/viper"
	_ "golang.org/x/image/webp"
)

func setDefaults(v *viper.Viper) {
	// Quality gate settings
	v.SetDefault("quality.max_chroma", 0.4)
	v.SetDefault("quality.duplicate_threshold_color", 0.02) // generate_from_base_color
	v.SetDefault("quality.duplicate_threshold_mood", 0.02)  // generate_from_mood
	v.SetDefault("quality.duplicate_threshold_image", 0.03) // generate_from_image

	// Role assignment settings
	v.SetDefault("roles.primary_lightness_min", 0.3)
	v.SetDefault("roles.primary_lightness_max", 0.7)

	// Image clusterer settings
	v.SetDefault("cluster.max_iterations", 10)
	v.SetDefault("cluster.min_dominant", 2)
	v.SetDefault("cluster.max_dominant", 4)
	v.SetDefault("cluster.pixels_per_group", 1000) // num_dominant = clamp(N/pixels_per_group, min, max)

	// Mood mapper settings
	v.SetDefault("mood.shuffle", true)
	v.SetDefault("mood.hue_jitter_deg", 15.0)
	v.SetDefault("mood.fallback_chroma_min", 0.12)
	v.SetDefault("mood.fallback_chroma_max", 0.22)
	v.SetDefault("mood.fallback_lightness_min", 0.4)
	v.SetDefault("mood.fallback_lightness_max", 0.8)
	v.SetDefault("mood.allow_fallback_random", true)

	// Synthesizer shaping settings
	v.SetDefault("synth.min_size", 8)
	v.SetDefault("synth.max_size", 12)
}

// DefaultSettings returns the layered defaults without consulting any
// config file or environment variable — useful for tests and for callers
// that never call Load.
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default settings: %v", err))
	}

	return &s
}
