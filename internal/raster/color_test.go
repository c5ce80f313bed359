package raster

import (
	"image/color"
	"testing"
)

func TestRGBChannelOrder(t *testing.T) {
	c := RGB(1, 2, 3)
	if c.R != 1 || c.G != 2 || c.B != 3 {
		t.Fatalf("RGB(1,2,3) = %+v", c)
	}
	if c != (Color{3, 2, 1}) {
		t.Fatalf("fields must be laid out blue, green, red: %+v", c)
	}
}

func TestColorModel(t *testing.T) {
	got := color.NRGBAModel.Convert(RGB(255, 128, 0)).(color.NRGBA)
	if got != (color.NRGBA{255, 128, 0, 255}) {
		t.Fatalf("NRGBA = %v", got)
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", White},
		{"#ff0000", Red},
		{"#00ff00", Green},
		{"#102030", RGB(0x10, 0x20, 0x30)},
	}
	for _, tc := range tests {
		got, err := ColorFromHex(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%s = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ColorFromHex("red"); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestColorScale(t *testing.T) {
	if got := RGB(200, 100, 50).Scale(0.5); got != RGB(100, 50, 25) {
		t.Fatalf("Scale(0.5) = %v", got)
	}
	if got := RGB(200, 100, 50).Scale(2); got != RGB(255, 200, 100) {
		t.Fatalf("Scale(2) = %v", got)
	}
	if got := White.Scale(-1); got != Black {
		t.Fatalf("Scale(-1) = %v", got)
	}
}

func TestColorString(t *testing.T) {
	if s := RGB(0xab, 0xcd, 0xef).String(); s != "#abcdef" {
		t.Fatalf("String = %s", s)
	}
}
