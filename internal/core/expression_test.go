package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hpkgmeta/internal/types"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		raw  string
		want types.ResolvableExpression
	}{
		{"libfoo", types.ResolvableExpression{Name: "libfoo"}},
		{"libfoo >= 2.0", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpGte, Version: "2.0"}},
		{"libfoo>=2.0", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpGte, Version: "2.0"}},
		{"libfoo = 1.0", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpEq, Version: "1.0"}},
		{"libfoo != 1.0", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpNe, Version: "1.0"}},
		{"libfoo < 3", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpLt, Version: "3"}},
		{"libfoo <= 3", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpLte, Version: "3"}},
		{"libfoo > 3", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOpGt, Version: "3"}},
		// The grammar captures any comparison-character run.
		{"libfoo => 3", types.ResolvableExpression{Name: "libfoo", Op: types.ConstraintOp("=>"), Version: "3"}},
	}

	for _, tt := range tests {
		got := ParseExpression(tt.raw, false)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("ParseExpression(%q) mismatch (-want +got):\n%s", tt.raw, diff)
		}
	}
}

func TestParseExpressionBaseFlag(t *testing.T) {
	withBase := ParseExpression("haiku base", false)
	if diff := cmp.Diff(types.ResolvableExpression{Name: "haiku base", Base: true}, withBase); diff != "" {
		t.Fatalf("base flag expected (-want +got):\n%s", diff)
	}

	ignored := ParseExpression("haiku base", true)
	if diff := cmp.Diff(types.ResolvableExpression{Name: "haiku base"}, ignored); diff != "" {
		t.Fatalf("base flag should be ignored (-want +got):\n%s", diff)
	}
}

func TestParseExpressionVersionedBase(t *testing.T) {
	got := ParseExpression("haiku >= 1.0 base", false)
	want := types.ResolvableExpression{
		Name:    "haiku",
		Op:      types.ConstraintOpGte,
		Version: "1.0",
		Base:    true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("versioned base mismatch (-want +got):\n%s", diff)
	}
}

// TestParseExpressionBaseWord pins a deliberate quirk: the grammar and
// the base-marker check both run against the original string, so a bare
// "name >= base" captures the literal word "base" as the version while
// also setting the flag. Consumers rely on the flag; changing the
// capture would be a behavior change for them.
func TestParseExpressionBaseWord(t *testing.T) {
	got := ParseExpression("haiku >= base", false)
	want := types.ResolvableExpression{
		Name:    "haiku",
		Op:      types.ConstraintOpGte,
		Version: "base",
		Base:    true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("base word capture mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExpressionRoundTrip(t *testing.T) {
	tests := []string{
		"libfoo",
		"libfoo >= 2.0",
		"haiku >= 1.0 base",
	}
	for _, raw := range tests {
		rendered := ParseExpression(raw, false).String()
		if diff := cmp.Diff(raw, rendered); diff != "" {
			t.Fatalf("round trip of %q (-want +got):\n%s", raw, diff)
		}
	}
}
