package ui

import (
	"testing"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 255}, ParseColor("255,255,255,255"))
	assert.Equal(t, sdl.Color{R: 0, G: 120, B: 255, A: 255}, ParseColor("0,120,255,255"))
}

func TestWrapLines(t *testing.T) {
	lines := wrapLines("short", 20)
	assert.Equal(t, []string{"short"}, lines)

	lines = wrapLines("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	// Explicit newlines are kept as paragraph breaks.
	lines = wrapLines("a\n\nb", 20)
	assert.Equal(t, []string{"a", "", "b"}, lines)
}

func TestInRect(t *testing.T) {
	r := sdl.FRect{X: 10, Y: 10, W: 20, H: 10}
	assert.True(t, inRect(15, 15, r))
	assert.True(t, inRect(10, 10, r))
	assert.True(t, inRect(30, 20, r))
	assert.False(t, inRect(31, 15, r))
	assert.False(t, inRect(15, 9, r))
}

func TestTrimLastRune(t *testing.T) {
	assert.Equal(t, "ab", trimLastRune("abc"))
	assert.Equal(t, "Geh", trimLastRune("Gehö"))
}
