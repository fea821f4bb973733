package domain

import "testing"

func TestMakeColorClamps(t *testing.T) {
	cases := []struct {
		r, g, b            float64
		wantR, wantG, wantB float64
	}{
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{-1, 2, 0, 0, 1, 0},
		{1.5, -0.5, 1, 1, 0, 1},
	}
	for _, c := range cases {
		got := MakeColor(c.r, c.g, c.b)
		if got.R != c.wantR || got.G != c.wantG || got.B != c.wantB {
			t.Errorf("MakeColor(%v, %v, %v) = %+v, want {%v %v %v}", c.r, c.g, c.b, got, c.wantR, c.wantG, c.wantB)
		}
	}
}

func TestKelvinMiredRoundTrip(t *testing.T) {
	kelvin := 2700.0
	mired := KelvinToMired(kelvin)
	if got := MiredToKelvin(mired); got != kelvin {
		t.Errorf("MiredToKelvin(KelvinToMired(%v)) = %v, want %v", kelvin, got, kelvin)
	}
}

func TestKelvinToMiredZeroGuard(t *testing.T) {
	if got := KelvinToMired(0); got != 0 {
		t.Errorf("KelvinToMired(0) = %v, want 0", got)
	}
	if got := KelvinToMired(-100); got != 0 {
		t.Errorf("KelvinToMired(-100) = %v, want 0", got)
	}
}

func TestMiredToKelvinZeroGuard(t *testing.T) {
	if got := MiredToKelvin(0); got != 0 {
		t.Errorf("MiredToKelvin(0) = %v, want 0", got)
	}
	if got := MiredToKelvin(-1); got != 0 {
		t.Errorf("MiredToKelvin(-1) = %v, want 0", got)
	}
}
