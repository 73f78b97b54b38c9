package score

import (
	"math"
	"testing"
)

func TestNew_TotalIsBreakdownSum(t *testing.T) {
	b := Breakdown{
		Interest:     15,
		Subcategory:  25,
		DealBreakers: -50,
		Distance:     8,
		Rating:       17.02,
		Freshness:    3.5,
	}
	s := New(b, []string{"a", "b"})

	want := 15 + 25 - 50 + 8 + 17.02 + 3.5
	if math.Abs(s.Total()-want) > 1e-12 {
		t.Fatalf("total = %f, want %f", s.Total(), want)
	}
	if s.Breakdown() != b {
		t.Fatalf("breakdown mutated: %+v", s.Breakdown())
	}
	if len(s.Insights()) != 2 || s.Insights()[0] != "a" {
		t.Fatalf("insights = %v", s.Insights())
	}
}

func TestNew_NegativeTotal(t *testing.T) {
	s := New(Breakdown{DealBreakers: -100, Rating: 10}, nil)
	if s.Total() != -90 {
		t.Fatalf("total = %f, want -90", s.Total())
	}
}

func TestBreakdownSum_Empty(t *testing.T) {
	if (Breakdown{}).Sum() != 0 {
		t.Fatalf("empty breakdown should sum to 0")
	}
}
