package quality

import (
	"testing"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

func TestFilterSaneChroma(t *testing.T) {
	seq := []colorspace.OKLCH{
		{L: 0.5, C: 0.1, H: 10},
		{L: 0.5, C: 0.5, H: 20},
		{L: 0.5, C: 0.39, H: 30},
	}
	got := FilterSaneChroma(seq, 0.4)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries within chroma bound, got %d", len(got))
	}
}

func TestRemoveDuplicatesHueWrapAware(t *testing.T) {
	seq := []colorspace.OKLCH{
		{L: 0.5, C: 0.1, H: 1},
		{L: 0.5, C: 0.1, H: 359.5},
		{L: 0.5, C: 0.1, H: 180},
	}
	got := RemoveDuplicates(seq, 0.01)
	if len(got) != 2 {
		t.Fatalf("expected hue-wrap duplicate to merge, got %d entries: %+v", len(got), got)
	}
	if got[0].H != 1 {
		t.Errorf("first-wins should keep the earlier entry, got %+v", got[0])
	}
}

func TestApplyGatesIdempotent(t *testing.T) {
	seq := []colorspace.OKLCH{
		{L: 0.5, C: 0.1, H: 10},
		{L: 0.5, C: 0.1, H: 10.005},
		{L: 0.9, C: 0.9, H: 90},
	}
	opts := DefaultOptions()
	once := ApplyGates(seq, opts)
	twice := ApplyGates(once, opts)

	if len(once) != len(twice) {
		t.Fatalf("gates not idempotent: once=%d twice=%d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("entry %d differs between passes: %+v vs %+v", i, once[i], twice[i])
		}
	}
}
