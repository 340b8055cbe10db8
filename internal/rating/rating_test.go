package rating

import "testing"

func scores(values ...int) []*int {
	out := make([]*int, 0, len(values))
	for i := range values {
		v := values[i]
		out = append(out, &v)
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %v", got)
	}
	if got := Aggregate([]*int{}); got != 0 {
		t.Fatalf("expected 0 for empty, got %v", got)
	}
}

func TestAggregateIgnoresMissingScores(t *testing.T) {
	in := append(scores(5, 3), nil)
	if got := Aggregate(in); got != 4.0 {
		t.Fatalf("expected 4.0, got %v", got)
	}
}

func TestAggregateAllMissing(t *testing.T) {
	if got := Aggregate([]*int{nil, nil}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestAggregateHalf(t *testing.T) {
	if got := Aggregate(scores(1, 2)); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}

func TestAggregateRounding(t *testing.T) {
	cases := []struct {
		in   []int
		want float64
	}{
		{[]int{4, 4, 5}, 4.3},
		{[]int{1, 2, 2, 2}, 1.8},
		{[]int{2, 3, 3, 3}, 2.8},
		{[]int{5, 4, 4}, 4.3},
		{[]int{1, 1, 2}, 1.3},
		{[]int{5}, 5.0},
	}
	for _, tc := range cases {
		if got := Aggregate(scores(tc.in...)); got != tc.want {
			t.Fatalf("Aggregate(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAggregateHalfUpOnTwentieths(t *testing.T) {
	// 89 / 20 = 4.45 exactly, rounds up to 4.5
	values := make([]int, 0, 20)
	for i := 0; i < 9; i++ {
		values = append(values, 5)
	}
	for i := 0; i < 11; i++ {
		values = append(values, 4)
	}
	if got := Aggregate(scores(values...)); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}

func TestAggregateOrderInvariant(t *testing.T) {
	a := Aggregate(append(scores(1, 4, 5), nil))
	b := Aggregate(append([]*int{nil}, scores(5, 1, 4)...))
	if a != b {
		t.Fatalf("expected order invariance, got %v and %v", a, b)
	}
}

func TestAggregateRange(t *testing.T) {
	for a := 1; a <= 5; a++ {
		for b := 1; b <= 5; b++ {
			got := Aggregate(scores(a, b, 3))
			if got < 0 || got > 5 {
				t.Fatalf("rating out of range: %v", got)
			}
		}
	}
}

func TestRated(t *testing.T) {
	if Rated(nil) {
		t.Fatalf("expected unrated for nil")
	}
	if Rated([]*int{nil}) {
		t.Fatalf("expected unrated when every score is missing")
	}
	if !Rated(append([]*int{nil}, scores(3)...)) {
		t.Fatalf("expected rated")
	}
}
