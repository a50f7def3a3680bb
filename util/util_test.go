package util

import (
	"math/rand"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		f, err := Easing(name)
		if err != nil {
			t.Fatalf("Easing(%q): %v", name, err)
		}
		if got := f(0); got > 1e-9 || got < -1e-9 {
			t.Fatalf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); got < 1-1e-9 || got > 1+1e-9 {
			t.Fatalf("%s(1) = %v, want 1", name, got)
		}
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			if v < prev-1e-12 {
				t.Fatalf("%s not monotonic at %d", name, i)
			}
			prev = v
		}
	}
}

func TestEasingDefaultsToLinear(t *testing.T) {
	f, err := Easing("")
	if err != nil {
		t.Fatalf("Easing(\"\"): %v", err)
	}
	if f(0.25) != 0.25 {
		t.Fatalf("default easing is not linear")
	}
}

func TestEasingUnknown(t *testing.T) {
	if _, err := Easing("inElastic"); err == nil {
		t.Fatalf("expected error for unsupported easing")
	}
}

func TestRandomColourValid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		c := RandomColour(rng)
		if !c.IsValid() {
			t.Fatalf("colour %v out of gamut", c)
		}
	}
}
