package text

import "testing"

func TestGlyphPixelKnownShapes(t *testing.T) {
	// Space is blank
	for y := 0; y < GlyphSize; y++ {
		for x := 0; x < GlyphSize; x++ {
			if GlyphPixel(' ', x, y) {
				t.Fatalf("space glyph should be blank, pixel set at (%d, %d)", x, y)
			}
		}
	}

	// Underscore fills the bottom row only
	for x := 0; x < GlyphSize; x++ {
		if !GlyphPixel('_', x, 7) {
			t.Errorf("underscore bottom row pixel (%d, 7) should be set", x)
		}
		if GlyphPixel('_', x, 0) {
			t.Errorf("underscore top row pixel (%d, 0) should be clear", x)
		}
	}
}

func TestGlyphPixelOutOfRange(t *testing.T) {
	if GlyphPixel(0x1F, 0, 0) || GlyphPixel(0x7F, 0, 0) {
		t.Error("characters outside the printable range should be blank")
	}
	if GlyphPixel('A', -1, 0) || GlyphPixel('A', 8, 0) || GlyphPixel('A', 0, 8) {
		t.Error("out-of-bounds pixel queries should be false")
	}
}

func TestGlyphsNonEmpty(t *testing.T) {
	// Every printable glyph except space has at least one pixel
	for ch := byte(glyphFirst + 1); ch <= glyphLast; ch++ {
		found := false
		for y := 0; y < GlyphSize && !found; y++ {
			for x := 0; x < GlyphSize; x++ {
				if GlyphPixel(ch, x, y) {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("glyph %q has no pixels", ch)
		}
	}
}
