package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstPrefersPresentZero(t *testing.T) {
	got := First(Present(0, true), NonZero(12), Fallback(0))
	assert.Equal(t, 0, got, "a computed zero that exists beats the stored value")
}

func TestFirstSkipsAbsentAggregate(t *testing.T) {
	got := First(Present(0, false), NonZero(12), Fallback(0))
	assert.Equal(t, 12, got)
}

func TestNonZeroTreatsZeroAsMissing(t *testing.T) {
	// A computed 0 earnings figure is overridden by the stored total.
	got := First(NonZero(0.0), NonZero(850.5), Fallback(0.0))
	assert.Equal(t, 850.5, got)
}

func TestFallbackEndsChain(t *testing.T) {
	assert.Equal(t, "Unknown", First(NonZero(""), NonZero(""), Fallback("Unknown")))
	assert.Equal(t, "", First[string]())
}

func TestLookup(t *testing.T) {
	one := 1
	m := map[string]*int{"a": &one, "nil": nil}
	v, ok := Lookup(m, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, *v)
	_, ok = Lookup(m, "nil")
	assert.False(t, ok)
	_, ok = Lookup(m, "missing")
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	if !Matches("", "anything") {
		t.Fatal("empty term should match")
	}
	if !Matches(" spice ", "Spice Route", "") {
		t.Fatal("expected case-insensitive match")
	}
	if Matches("pizza", "Spice Route", "Koramangala") {
		t.Fatal("unexpected match")
	}
}
