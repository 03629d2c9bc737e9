package random

import "testing"

func TestIntBetweenBounds(t *testing.T) {
	src := NewSource(99)

	for i := 0; i < 1000; i++ {
		v := src.IntBetween(1, 100)
		if v < 1 || v > 100 {
			t.Fatalf("value %d outside [1, 100]", v)
		}
	}
}

func TestIntBetweenSingleValue(t *testing.T) {
	src := NewSource(1)
	if v := src.IntBetween(7, 7); v != 7 {
		t.Fatalf("value = %d, want 7", v)
	}
}

func TestIntBetweenSwappedBounds(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 100; i++ {
		v := src.IntBetween(5, -5)
		if v < -5 || v > 5 {
			t.Fatalf("value %d outside [-5, 5]", v)
		}
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if a == b {
		t.Fatal("two seeds collided")
	}
}

func TestScriptedReplaysSequence(t *testing.T) {
	src := NewScripted(1, 50, 100)

	want := []int{1, 50, 100, 1, 50}
	for i, w := range want {
		if v := src.IntBetween(1, 100); v != w {
			t.Fatalf("draw %d = %d, want %d", i, v, w)
		}
	}
}

func TestScriptedClampsIntoRange(t *testing.T) {
	src := NewScripted(-10, 200)

	if v := src.IntBetween(1, 100); v != 1 {
		t.Fatalf("low value clamped to %d, want 1", v)
	}
	if v := src.IntBetween(1, 100); v != 100 {
		t.Fatalf("high value clamped to %d, want 100", v)
	}
}

func TestScriptedEmptyYieldsMin(t *testing.T) {
	src := NewScripted()
	if v := src.IntBetween(3, 9); v != 3 {
		t.Fatalf("value = %d, want 3", v)
	}
}
