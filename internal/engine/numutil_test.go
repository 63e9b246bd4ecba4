package engine

import (
	"math"
	"testing"
)

func TestSafeNumberDegradesNonFinite(t *testing.T) {
	if got := SafeNumber(math.NaN(), 0); got != 0 {
		t.Fatalf("NaN should degrade to fallback, got %f", got)
	}
	if got := SafeNumber(math.Inf(1), 5); got != 5 {
		t.Fatalf("+Inf should degrade to fallback, got %f", got)
	}
	if got := SafeNumber(math.Inf(-1), 5); got != 5 {
		t.Fatalf("-Inf should degrade to fallback, got %f", got)
	}
	if got := SafeNumber(3.5, 0); got != 3.5 {
		t.Fatalf("finite value should pass through, got %f", got)
	}
}

func TestRound2HalfUp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.006, 1.01},
		{1.004, 1.0},
		{33.333333, 33.33},
		{116.666666, 116.67},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Fatalf("Round2(%f): got %f want %f", c.in, got, c.want)
		}
	}
}

func TestCeil2(t *testing.T) {
	if got := Ceil2(116.661); got != 116.67 {
		t.Fatalf("Ceil2(116.661): got %f", got)
	}
	if got := Ceil2(100.0); got != 100.0 {
		t.Fatalf("Ceil2(100): got %f", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 99.99); got != 99.99 {
		t.Fatalf("expected upper clamp, got %f", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Fatalf("expected lower clamp, got %f", got)
	}
	if got := Clamp(math.NaN(), 10, 90); got != 10 {
		t.Fatalf("NaN should clamp to min, got %f", got)
	}
}
