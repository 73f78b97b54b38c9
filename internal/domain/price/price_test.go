package price

import "testing"

func TestIsValid(t *testing.T) {
	for _, r := range []Range{Budget, Moderate, Premium, Luxury} {
		if !r.IsValid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, s := range []string{"", "$$$$$", "cheap", " $"} {
		if Range(s).IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestBudgetFriendly(t *testing.T) {
	tests := []struct {
		r    Range
		want bool
	}{
		{Budget, true},
		{Moderate, true},
		{Premium, false},
		{Luxury, false},
		{Range(""), false},
	}
	for _, tt := range tests {
		if got := tt.r.BudgetFriendly(); got != tt.want {
			t.Errorf("BudgetFriendly(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestExpensive(t *testing.T) {
	tests := []struct {
		r    Range
		want bool
	}{
		{Budget, false},
		{Moderate, false},
		{Premium, true},
		{Luxury, true},
		{Range(""), false},
	}
	for _, tt := range tests {
		if got := tt.r.Expensive(); got != tt.want {
			t.Errorf("Expensive(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestTierOrdering(t *testing.T) {
	// The scale must stay strictly ordered cheapest to most expensive.
	order := []Range{Budget, Moderate, Premium, Luxury}
	for i := 1; i < len(order); i++ {
		if order[i-1].Tier() >= order[i].Tier() {
			t.Fatalf("tier order broken: %q (%d) >= %q (%d)",
				order[i-1], order[i-1].Tier(), order[i], order[i].Tier())
		}
	}
	if Range("??").Tier() != 0 {
		t.Fatalf("invalid range should have tier 0")
	}
}

func TestParse(t *testing.T) {
	if r, ok := Parse("$$"); !ok || r != Moderate {
		t.Fatalf("Parse($$) = %q, %v", r, ok)
	}
	if _, ok := Parse("mid"); ok {
		t.Fatalf("Parse(mid) should fail")
	}
}
