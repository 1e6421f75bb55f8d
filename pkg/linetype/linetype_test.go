package linetype

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "DASHED", want: Dashed, wantOK: true},
		{in: "dashed", want: Dashed, wantOK: true},
		{in: " Center ", want: Center, wantOK: true},
		{in: "BYLAYER", wantOK: false},
		{in: "nope", wantOK: false},
	}

	for _, tt := range tests {
		lt, ok := Lookup(tt.in)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && lt.Name != tt.want {
			t.Errorf("Lookup(%q).Name = %q, want %q", tt.in, lt.Name, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if n, ok := Normalize("bylayer"); !ok || n != ByLayer {
		t.Errorf("Normalize(bylayer) = %q, %v", n, ok)
	}
	if n, ok := Normalize("ByBlock"); !ok || n != ByBlock {
		t.Errorf("Normalize(ByBlock) = %q, %v", n, ok)
	}
	if _, ok := Normalize("zigzag"); ok {
		t.Error("Normalize(zigzag) ok = true")
	}
}

func TestLength(t *testing.T) {
	lt, _ := Lookup(Dashed)
	if got := lt.Length(); math.Abs(got-19.05) > 1e-9 {
		t.Errorf("DASHED Length() = %g, want 19.05", got)
	}
	lt, _ = Lookup(Continuous)
	if got := lt.Length(); got != 0 {
		t.Errorf("CONTINUOUS Length() = %g, want 0", got)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("Names() len = %d, want 8", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
