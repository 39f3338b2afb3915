package paletteerrors

import (
	"errors"
	"testing"
)

func TestPaletteSizeErrorUnwraps(t *testing.T) {
	err := &PaletteSizeError{Requested: 10, Available: 4}
	if !errors.Is(err, ErrInsufficientColors) {
		t.Error("PaletteSizeError should unwrap to ErrInsufficientColors")
	}
}
