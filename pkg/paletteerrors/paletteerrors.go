// Package paletteerrors defines the sentinel and structured error types the
// synthesis engine returns. Every error satisfies errors.Is/errors.As
// against its sentinel, in the shape the rest of this module's error
// handling follows throughout.
package paletteerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the invalid-input and degenerate-data conditions the
// engine can return. Check these with errors.Is.
var (
	// ErrEmptyBaseColors indicates generate_from_base_colors was called
	// with zero colors.
	ErrEmptyBaseColors = errors.New("no base colors provided")

	// ErrEmptyPixels indicates generate_from_image was called with zero
	// pixels.
	ErrEmptyPixels = errors.New("no pixels provided")

	// ErrInsufficientColors indicates quality-gate de-duplication left
	// fewer usable colors than the minimum palette size even after
	// extending the seed pool.
	ErrInsufficientColors = errors.New("insufficient colors available after quality gates")

	// ErrUnknownMood indicates a mood phrase matched no lexicon keyword
	// while Settings.Mood.AllowFallbackRandom was false, so the engine
	// refused to synthesize a random fallback base color.
	ErrUnknownMood = errors.New("mood phrase matched no lexicon keyword")

	// ErrInvalidPaletteSize indicates the configured synth size bounds
	// are not a usable positive range (min <= 0, max <= 0, or max < min).
	ErrInvalidPaletteSize = errors.New("invalid palette size bounds")
)

// PaletteSizeError reports a mismatch between a requested palette size and
// what quality gating left available.
type PaletteSizeError struct {
	Requested int
	Available int
}

func (e *PaletteSizeError) Error() string {
	return fmt.Sprintf("requested %d colors but only %d available after quality gates", e.Requested, e.Available)
}

func (e *PaletteSizeError) Unwrap() error {
	return ErrInsufficientColors
}
