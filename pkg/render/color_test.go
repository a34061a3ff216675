package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 51, 77})
	want := color.RGBA{100, 50, 25, 77}
	if got != want {
		t.Fatalf("DarkenColor = %v, want %v", got, want)
	}
}

func TestLightenColorSaturates(t *testing.T) {
	got := LightenColor(color.RGBA{250, 10, 0, 255}, 40)
	want := color.RGBA{255, 50, 40, 255}
	if got != want {
		t.Fatalf("LightenColor = %v, want %v", got, want)
	}
}

func TestWithAlphaAndIsLight(t *testing.T) {
	if c := WithAlpha(color.RGBA{1, 2, 3, 255}, 9); c.A != 9 || c.R != 1 {
		t.Fatalf("WithAlpha = %v", c)
	}
	if !IsLight(color.RGBA{240, 240, 240, 255}) {
		t.Fatalf("white should be light")
	}
	if IsLight(color.RGBA{20, 20, 30, 255}) {
		t.Fatalf("dark should not be light")
	}
}
