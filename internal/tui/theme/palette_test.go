package theme

import "testing"

func TestTextOn(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{bg: "#ffffff", want: "#000000"},
		{bg: "#000000", want: "#ffffff"},
		{bg: "#f8b195", want: "#000000"},
		{bg: "#2a363b", want: "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			if got := TextOn(tt.bg, "#ffffff", "#000000"); got != tt.want {
				t.Errorf("TextOn(%s) = %s, want %s", tt.bg, got, tt.want)
			}
		})
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		a, b  string
		ratio float64
		want  string
	}{
		{a: "#000000", b: "#ffffff", ratio: 0, want: "#000000"},
		{a: "#000000", b: "#ffffff", ratio: 1, want: "#ffffff"},
		{a: "#000000", b: "#ffffff", ratio: 0.5, want: "#7f7f7f"},
		{a: "#000000", b: "#ffffff", ratio: 2, want: "#ffffff"},
		{a: "bad", b: "#ffffff", ratio: 0.5, want: "bad"},
	}
	for _, tt := range tests {
		if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
			t.Errorf("blendColors(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.ratio, got, tt.want)
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b, ok := rgb("#0a141e")
	if !ok || r != 10 || g != 20 || b != 30 {
		t.Errorf("rgb = %d %d %d %v", r, g, b, ok)
	}
	for _, bad := range []string{"", "#fff", "0a141e0", "#zzzzzz"} {
		if _, _, _, ok := rgb(bad); ok {
			t.Errorf("rgb(%q) should fail", bad)
		}
	}
}

func TestNewPalette(t *testing.T) {
	th, err := Load("latte")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPalette(th)

	if string(p.Bg) != "#eff1f5" {
		t.Errorf("Bg = %s", p.Bg)
	}
	if string(p.Modal.Border) != "#7287fd" {
		t.Errorf("modal border = %s", p.Modal.Border)
	}
	if string(p.TextOnAccent) != th.Bg {
		t.Errorf("text on dark accent should be the light bg, got %s", p.TextOnAccent)
	}

	if NewPalette(nil).Bg == "" {
		t.Error("nil theme should fall back to mocha")
	}
}
