package wiki

import (
	"testing"

	"github.com/ra-bench/ra-gen/guard"
)

func TestFormatWikiGuardMatchesCanonicalExample(t *testing.T) {
	g, err := ParseGuard("a == b && a != 1000 || a >= x_0")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	got := FormatWikiGuard(g)
	want := "(((a == b) && (a != 1000)) || (a >= x_0))"
	if got != want {
		t.Fatalf("FormatWikiGuard = %q, want %q", got, want)
	}
}

func TestFormatWikiGuardTrueIsEmpty(t *testing.T) {
	if got := FormatWikiGuard(guard.True[Expression]{}); got != "" {
		t.Fatalf("FormatWikiGuard(True) = %q, want empty", got)
	}
}

func TestFormatRALibGuardRejectsNonStrictRelations(t *testing.T) {
	g, err := ParseGuard("a >= x_0")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	dnf := guard.ToDisjunctiveNormalForm[Expression](g)
	if _, err := FormatRALibGuard(dnf); err != guard.ErrUnsupportedInRALibDialect {
		t.Fatalf("FormatRALibGuard error = %v, want ErrUnsupportedInRALibDialect", err)
	}
}

func TestFormatRALibGuardAfterSimplifyIsStrictOnly(t *testing.T) {
	g, err := ParseGuard("a == b && a != 1000 || a >= x_0")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	simplified := guard.SimplifyInequalities[Expression](g)
	dnf := guard.ToDisjunctiveNormalForm[Expression](simplified)
	s, err := FormatRALibGuard(dnf)
	if err != nil {
		t.Fatalf("FormatRALibGuard: %v", err)
	}
	if s == "" {
		t.Fatal("expected non-empty RALib-safe rendering")
	}
	reparsed, err := ParseGuard(s)
	if err != nil {
		t.Fatalf("ParseGuard(round-trip): %v", err)
	}
	redone := guard.ToDisjunctiveNormalForm[Expression](guard.SimplifyInequalities[Expression](reparsed))
	if len(redone.Conjuncts) != len(dnf.Conjuncts) {
		t.Fatalf("round-trip conjunct count = %d, want %d", len(redone.Conjuncts), len(dnf.Conjuncts))
	}
}

func TestFormatRALibGuardEmptyDNFIsEmptyString(t *testing.T) {
	s, err := FormatRALibGuard(guard.DNFOr[Expression]{})
	if err != nil {
		t.Fatalf("FormatRALibGuard: %v", err)
	}
	if s != "" {
		t.Fatalf("FormatRALibGuard(empty) = %q, want empty", s)
	}
}
