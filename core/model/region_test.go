package model

import "testing"

func TestEffectiveRate(t *testing.T) {
	r := NewRegion("downtown", 40)
	if got := r.EffectiveRate(); got != 40 {
		t.Fatalf("zero adjustment: got %v", got)
	}
	r.Adjustment = 0.5
	if got := r.EffectiveRate(); got != 60 {
		t.Fatalf("50%% adjustment: got %v", got)
	}
	r.Adjustment = 0.25
	if got := r.EffectiveRate(); got != 50 {
		t.Fatalf("25%% adjustment: got %v", got)
	}
}
