package cli

import (
	"math"
	"testing"

	"github.com/jmylchreest/huesight/internal/colour"
	"github.com/jmylchreest/huesight/internal/naming"
	"github.com/jmylchreest/huesight/internal/sampler"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantX   int
		wantY   int
		wantErr bool
	}{
		{name: "plain", in: "120,340", wantX: 120, wantY: 340},
		{name: "spaces", in: " 12 , 34 ", wantX: 12, wantY: 34},
		{name: "missing y", in: "120", wantErr: true},
		{name: "too many", in: "1,2,3", wantErr: true},
		{name: "not numbers", in: "a,b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, err := parsePoint(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestResolveSampleHex(t *testing.T) {
	got, err := resolveSample("#008000", "", sampler.DefaultRadius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.G-128.0/255.0) > 1e-9 || got.R != 0 || got.B != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestResolveSampleRejectsGarbage(t *testing.T) {
	if _, err := resolveSample("definitely-not-a-colour-or-file", "", 1); err == nil {
		t.Error("expected error for unresolvable argument")
	}
}

func TestClassifyCommandRejectsBadArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"classify", "no-such-image.png"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for missing image")
	}
}

func TestWatchCommandRejectsConflictingSources(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"watch", "--plugin", "./p", "--replay", "./r"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for conflicting source flags")
	}
}

func TestRepresentativeColoursResolveToOwnName(t *testing.T) {
	// The swatch shown next to each taxonomy name must itself
	// classify to that name, otherwise the listing lies.
	for _, entry := range naming.Entries() {
		c := representativeColour(entry)
		hsl := colour.RGBToHSL(c)
		got := naming.Resolve(hsl.HueDegrees(), hsl.S*100, hsl.L*100, c.Chroma())
		if got != entry.Name {
			t.Errorf("swatch for %q classifies as %q", entry.Name, got)
		}
	}
}
