package analyzer

import "testing"

func TestCounterRankedOrder(t *testing.T) {
	c := newCounter()
	c.Add("b", 1)
	c.Add("a", 1)
	c.Add("c", 3)
	c.Add("a", 1)

	ranked := c.Ranked()
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	if ranked[0].Name != "c" || ranked[0].Count != 3 {
		t.Errorf("expected c=3 first, got %s=%d", ranked[0].Name, ranked[0].Count)
	}
	// a and b tie at counts 2 vs 1; a has 2 so comes second
	if ranked[1].Name != "a" || ranked[1].Count != 2 {
		t.Errorf("expected a=2 second, got %s=%d", ranked[1].Name, ranked[1].Count)
	}
}

func TestCounterTieBreakFirstSeen(t *testing.T) {
	c := newCounter()
	c.Add("late", 2)
	c.Add("early", 2)

	ranked := c.Ranked()
	if ranked[0].Name != "late" {
		t.Errorf("equal counts should rank by first-seen order, got %s first", ranked[0].Name)
	}
}

func TestCounterTotals(t *testing.T) {
	c := newCounter()
	c.Add("x", 2)
	c.Add("y", 3)
	if c.Total() != 5 {
		t.Errorf("Total() = %d, want 5", c.Total())
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Get("x") != 2 {
		t.Errorf("Get(x) = %d, want 2", c.Get("x"))
	}
}

func TestCapList(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	capped, truncated := capList(items, 3)
	if len(capped) != 3 || !truncated {
		t.Errorf("capList(5 items, 3) = len %d truncated %v", len(capped), truncated)
	}

	// Idempotent: capping the capped list again changes nothing.
	again, truncated := capList(capped, 3)
	if len(again) != 3 || truncated {
		t.Errorf("second capList should be a no-op, got len %d truncated %v", len(again), truncated)
	}

	whole, truncated := capList(items, 10)
	if len(whole) != 5 || truncated {
		t.Errorf("capList under limit should keep all, got len %d truncated %v", len(whole), truncated)
	}

	all, truncated := capList(items, 0)
	if len(all) != 5 || truncated {
		t.Errorf("capList with non-positive max should keep all, got len %d truncated %v", len(all), truncated)
	}
}

func TestContextIDStable(t *testing.T) {
	a := contextID("src/App.tsx", "/api/users")
	b := contextID("src/App.tsx", "/api/users")
	if a != b {
		t.Errorf("same inputs should hash identically: %s vs %s", a, b)
	}
	if contextID("src/App.tsx", "/api/users") == contextID("src/App.tsx", "/api/posts") {
		t.Error("different targets should hash differently")
	}
	// The separator prevents boundary ambiguity.
	if contextID("ab", "c") == contextID("a", "bc") {
		t.Error("part boundaries must affect the hash")
	}
}
