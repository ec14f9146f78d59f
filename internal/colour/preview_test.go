package colour

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	got := Preview(RGB{R: 1}, 4)
	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") {
		t.Errorf("missing background escape: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("missing reset: %q", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("block not 4 wide: %q", got)
	}

	if got := Preview(RGB{}, 0); !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("zero width should fall back to default: %q", got)
	}
}

func TestPreviewWithTextContrast(t *testing.T) {
	light := PreviewWithText(RGB{R: 0.95, G: 0.95, B: 0.9}, "Ivory", 10)
	if !strings.Contains(light, ansiFgPrefix+"0;0;0"+ansiSuffix) {
		t.Errorf("light background should take black text: %q", light)
	}

	dark := PreviewWithText(RGB{R: 0.05, G: 0.05, B: 0.2}, "Navy", 10)
	if !strings.Contains(dark, ansiFgPrefix+"255;255;255"+ansiSuffix) {
		t.Errorf("dark background should take white text: %q", dark)
	}
}

func TestPreviewWithTextWidth(t *testing.T) {
	// Short text is centred in the block.
	got := PreviewWithText(RGB{R: 0.5}, "Teal", 10)
	if !strings.Contains(got, "   Teal   ") {
		t.Errorf("text not centred: %q", got)
	}

	// Long text is truncated to the block width.
	trunc := PreviewWithText(RGB{}, "Deep Sea Green", 6)
	if !strings.Contains(trunc, "Deep S") || strings.Contains(trunc, "Deep Sea") {
		t.Errorf("text not truncated to width: %q", trunc)
	}
}
