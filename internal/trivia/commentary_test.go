package trivia

import "testing"

func TestSubscriberCommentary(t *testing.T) {
	// Band edges are inclusive on the low side.
	tests := []struct {
		a, b int64
		same bool
	}{
		{a: 0, b: 999, same: true},
		{a: 999, b: 1000, same: false},
		{a: 1000, b: 1499, same: true},
		{a: 1499, b: 1500, same: false},
		{a: 1500, b: 1999, same: true},
		{a: 1999, b: 2000, same: false},
		{a: 2000, b: 9999, same: true},
		{a: 9999, b: 10000, same: false},
		{a: 10000, b: 49999, same: true},
		{a: 49999, b: 50000, same: false},
		{a: 50000, b: 99999, same: true},
		{a: 99999, b: 100000, same: false},
		{a: 100000, b: 199999, same: true},
		{a: 199999, b: 200000, same: false},
		{a: 200000, b: 499999, same: true},
		{a: 499999, b: 500000, same: false},
		{a: 500000, b: 999999, same: true},
		{a: 999999, b: 1000000, same: false},
		{a: 1000000, b: 123456789, same: true},
	}

	for _, tt := range tests {
		left, right := SubscriberCommentary(tt.a), SubscriberCommentary(tt.b)
		if (left == right) != tt.same {
			t.Errorf("counts %d and %d: got %q and %q, want same=%v", tt.a, tt.b, left, right, tt.same)
		}
	}
}

func TestSubscriberCommentaryCoversAllBands(t *testing.T) {
	counts := []int64{0, 1000, 1500, 2000, 10000, 50000, 100000, 200000, 500000, 1000000}

	seen := make(map[string]int64)
	for _, count := range counts {
		text := SubscriberCommentary(count)
		if text == "" {
			t.Errorf("count %d has empty commentary", count)
		}
		if prev, dup := seen[text]; dup {
			t.Errorf("counts %d and %d share commentary %q", prev, count, text)
		}
		seen[text] = count
	}
}

func TestPlayerCommentary(t *testing.T) {
	// 0 through 7 each get their own band, 8 and up share one.
	seen := make(map[string]int)
	for count := 0; count <= 7; count++ {
		text := PlayerCommentary(count)
		if text == "" {
			t.Errorf("count %d has empty commentary", count)
		}
		if prev, dup := seen[text]; dup {
			t.Errorf("counts %d and %d share commentary %q", prev, count, text)
		}
		seen[text] = count
	}

	if PlayerCommentary(8) != PlayerCommentary(100) {
		t.Error("counts 8 and 100 should share the overflow band")
	}
	if PlayerCommentary(8) == PlayerCommentary(7) {
		t.Error("count 8 should not share a band with count 7")
	}
}
