package settings

import (
	"context"
	"testing"
)

func TestDefaultSettingsPopulated(t *testing.T) {
	s := DefaultSettings()
	if s.Quality.MaxChroma != 0.4 {
		t.Errorf("MaxChroma = %v, want 0.4", s.Quality.MaxChroma)
	}
	if s.Cluster.MaxIterations != 10 {
		t.Errorf("Cluster.MaxIterations = %v, want 10", s.Cluster.MaxIterations)
	}
	if s.Synth.MinSize != 8 || s.Synth.MaxSize != 12 {
		t.Errorf("Synth size bounds = [%d,%d], want [8,12]", s.Synth.MinSize, s.Synth.MaxSize)
	}
}

func TestContextRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.Quality.MaxChroma = 0.33

	ctx := WithSettings(context.Background(), s)
	got := FromContext(ctx)

	if got.Quality.MaxChroma != 0.33 {
		t.Errorf("FromContext returned %v, want the attached settings", got.Quality.MaxChroma)
	}
}

func TestFromContextFallsBackToLoad(t *testing.T) {
	got := FromContext(context.Background())
	if got == nil {
		t.Fatal("expected a non-nil fallback Settings")
	}
}
