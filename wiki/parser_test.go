package wiki

import (
	"testing"

	"github.com/ra-bench/ra-gen/guard"
)

func TestParseGuardEmptyIsTrue(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\n"} {
		g, err := ParseGuard(src)
		if err != nil {
			t.Fatalf("ParseGuard(%q): %v", src, err)
		}
		if _, ok := g.(guard.True[Expression]); !ok {
			t.Fatalf("ParseGuard(%q) = %T, want True", src, g)
		}
	}
}

func TestParseGuardAndBindsTighterThanOr(t *testing.T) {
	g, err := ParseGuard("a == b && a != 1000 || a >= x_0")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	or, ok := g.(guard.Or[Expression])
	if !ok || len(or.Children) != 2 {
		t.Fatalf("top level = %#v, want 2-child Or", g)
	}
	and, ok := or.Children[0].(guard.And[Expression])
	if !ok || len(and.Children) != 2 {
		t.Fatalf("first disjunct = %#v, want 2-child And", or.Children[0])
	}
	if _, ok := or.Children[1].(guard.BinaryRel[Expression]); !ok {
		t.Fatalf("second disjunct = %#v, want BinaryRel", or.Children[1])
	}
}

func TestParseGuardParenOverridesPrecedence(t *testing.T) {
	g, err := ParseGuard("a == b && (a != 1000 || a >= x_0)")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	and, ok := g.(guard.And[Expression])
	if !ok || len(and.Children) != 2 {
		t.Fatalf("top level = %#v, want 2-child And", g)
	}
	if _, ok := and.Children[1].(guard.Or[Expression]); !ok {
		t.Fatalf("second conjunct = %#v, want Or", and.Children[1])
	}
}

func TestParseGuardIntegerLiteral(t *testing.T) {
	g, err := ParseGuard("x == -5")
	if err != nil {
		t.Fatalf("ParseGuard: %v", err)
	}
	rel, ok := g.(guard.BinaryRel[Expression])
	if !ok {
		t.Fatalf("got %#v, want BinaryRel", g)
	}
	if rel.Right.Kind != ExprConstant || rel.Right.Value != -5 {
		t.Fatalf("right leaf = %#v, want constant -5", rel.Right)
	}
}

func TestParseGuardRejectsTrailingGarbage(t *testing.T) {
	if _, err := ParseGuard("a == b )"); err == nil {
		t.Fatal("expected parse error on trailing ')'")
	}
}

func TestParseGuardRejectsMalformedOperator(t *testing.T) {
	if _, err := ParseGuard("a === b"); err == nil {
		t.Fatal("expected parse error on '==='")
	}
}
