package scopeprefs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFrom(t *testing.T) {
	c := ColorFrom(color.RGBA64{R: 0xDEAD, G: 0xBEEF, B: 0xF00D, A: 0xFFFF})
	assert.Equal(t, Color{R: 0xDEAD, G: 0xBEEF, B: 0xF00D}, c)
}

func TestColorExternal(t *testing.T) {
	c := Color{R: 0x1234, G: 0x5678, B: 0x9ABC}
	assert.Equal(t, color.RGBA64{R: 0x1234, G: 0x5678, B: 0x9ABC, A: 0xFFFF}, c.External())
}

func TestColorRoundTrip(t *testing.T) {
	orig := Color{R: 0x0102, G: 0x0304, B: 0x0506}
	assert.Equal(t, orig, ColorFrom(orig.External()))
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		expected string
	}{
		{"black", Color{}, "#000000000000"},
		{"white", Color{R: 0xFFFF, G: 0xFFFF, B: 0xFFFF}, "#ffffffffffff"},
		{"mixed", Color{R: 0x00AB, G: 0x1000, B: 0xCDEF}, "#00ab1000cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
