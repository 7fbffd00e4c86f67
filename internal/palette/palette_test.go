package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{" Yellow ", color.RGBA{255, 255, 0, 255}},
		{"#ccc", color.RGBA{204, 204, 204, 255}},
		{"#000", color.RGBA{0, 0, 0, 255}},
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"#00FF00", color.RGBA{0, 255, 0, 255}},
		{"#f008", color.RGBA{255, 0, 0, 136}},
		{"#11223380", color.RGBA{17, 34, 51, 128}},
		{"rgb(1, 2, 3)", color.RGBA{1, 2, 3, 255}},
		{"rgba(10,20,30,0.5)", color.RGBA{10, 20, 30, 128}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "rgb(1,2)", "rgb(300,0,0)", "rgba(0,0,0,2)", "chartreuse-ish"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("%q: expected ErrUnknownColor, got %v", in, err)
		}
	}
}

func TestResolveFallback(t *testing.T) {
	fb := color.RGBA{1, 1, 1, 255}
	if got := Resolve("nope", fb); got != fb {
		t.Errorf("expected fallback, got %v", got)
	}
	if got := Resolve("blue", fb); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("expected blue, got %v", got)
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#ccc", "#ffffff"); got != "#cccccc" {
		t.Errorf("expected #cccccc, got %s", got)
	}
	if got := Hex("red", "#ffffff"); got != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", got)
	}
	if got := Hex("???", "#ffffff"); got != "#ffffff" {
		t.Errorf("expected fallback, got %s", got)
	}
}
