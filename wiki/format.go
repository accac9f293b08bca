package wiki

import (
	"fmt"
	"strings"

	"github.com/ra-bench/ra-gen/guard"
)

// FormatWikiGuard renders g in the full Wiki dialect: every And/Or/BinaryRel
// node is parenthesised, "&&"/"||" carry surrounding spaces, and True
// formats as the empty string.
func FormatWikiGuard(g WikiGuard) string {
	switch n := g.(type) {
	case guard.True[Expression]:
		return ""
	case guard.BinaryRel[Expression]:
		return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op.String(), n.Right.String())
	case guard.And[Expression]:
		return "(" + joinWikiGuard(n.Children, " && ") + ")"
	case guard.Or[Expression]:
		return "(" + joinWikiGuard(n.Children, " || ") + ")"
	default:
		return ""
	}
}

func joinWikiGuard(children []WikiGuard, sep string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = FormatWikiGuard(c)
	}
	return strings.Join(parts, sep)
}

// FormatRALibGuard renders a guard already reduced to disjunctive normal
// form (via guard.SimplifyInequalities then guard.ToDisjunctiveNormalForm)
// in the RALib-safe dialect: no parentheses, no spaces around "||"/"&&",
// each term "left op right" with no surrounding parens. Fails with
// guard.ErrUnsupportedInRALibDialect if any term uses <= or >=.
func FormatRALibGuard(d guard.DNFOr[Expression]) (string, error) {
	if d.HasNonStrictRelation() {
		return "", guard.ErrUnsupportedInRALibDialect
	}
	if len(d.Conjuncts) == 0 {
		return "", nil
	}
	conjuncts := make([]string, len(d.Conjuncts))
	for i, c := range d.Conjuncts {
		terms := make([]string, len(c.Terms))
		for j, t := range c.Terms {
			terms[j] = fmt.Sprintf("%s%s%s", t.Left.String(), t.Op.String(), t.Right.String())
		}
		conjuncts[i] = strings.Join(terms, "&&")
	}
	return strings.Join(conjuncts, "||"), nil
}
