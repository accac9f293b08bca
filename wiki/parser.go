package wiki

import (
	"strconv"

	"github.com/ra-bench/ra-gen/guard"
)

// parser is a recursive-descent parser over the guard mini-language:
//
//	guard    ::= orChain
//	orChain  ::= andChain ("||" andChain)*
//	andChain ::= clause ("&&" clause)*
//	clause   ::= expr relop expr | "(" orChain ")"
//
// "&&" binds tighter than "||", so andChain nests below orChain even though
// the tokens read left to right the other way.
type parser struct {
	lex *lexer
	cur token
}

// ParseGuard parses a Wiki guard expression. The empty (or all-whitespace)
// string parses to True.
func ParseGuard(src string) (WikiGuard, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind == tokEOF {
		return guard.True[Expression]{}, nil
	}
	g, err := p.parseOrChain()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, &ParseError{Offset: p.cur.offset, Message: "unexpected trailing input"}
	}
	return g, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) parseOrChain() (WikiGuard, error) {
	first, err := p.parseAndChain()
	if err != nil {
		return nil, err
	}
	children := []WikiGuard{first}
	for p.cur.kind == tokOrOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAndChain()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return guard.Or[Expression]{Children: children}, nil
}

func (p *parser) parseAndChain() (WikiGuard, error) {
	first, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	children := []WikiGuard{first}
	for p.cur.kind == tokAndAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return guard.And[Expression]{Children: children}, nil
}

func (p *parser) parseClause() (WikiGuard, error) {
	if p.cur.kind == tokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		g, err := p.parseOrChain()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, &ParseError{Offset: p.cur.offset, Message: "expected ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return g, nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokRelOp {
		return nil, &ParseError{Offset: p.cur.offset, Message: "expected relational operator"}
	}
	op, err := relFromText(p.cur.text)
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return guard.BinaryRel[Expression]{Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseExpr() (Expression, error) {
	switch p.cur.kind {
	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return Expression{}, err
		}
		return Variable(name), nil
	case tokNumber:
		v, err := strconv.ParseInt(p.cur.text, 10, 64)
		if err != nil {
			return Expression{}, &ParseError{Offset: p.cur.offset, Message: "invalid integer literal " + p.cur.text}
		}
		if err := p.advance(); err != nil {
			return Expression{}, err
		}
		return Constant(v), nil
	default:
		return Expression{}, &ParseError{Offset: p.cur.offset, Message: "expected identifier or integer literal"}
	}
}

func relFromText(text string) (guard.Rel, error) {
	switch text {
	case "==":
		return guard.Eq, nil
	case "!=":
		return guard.Neq, nil
	case ">=":
		return guard.Geq, nil
	case ">":
		return guard.Gt, nil
	case "<=":
		return guard.Leq, nil
	case "<":
		return guard.Lt, nil
	default:
		return 0, &ParseError{Message: "unknown relational operator " + text}
	}
}
