package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := map[int]int{0: DefaultLimit, -3: DefaultLimit, 10: 10, 500: 500, 900: MaxLimit}
	for in, want := range cases {
		if got := NormalizeLimit(in); got != want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3}
	if got := Truncate(items, 2); len(got) != 2 {
		t.Fatalf("expected 2 items, got %v", got)
	}
	if got := Truncate(items, 10); len(got) != 3 {
		t.Fatalf("expected all items, got %v", got)
	}
}
