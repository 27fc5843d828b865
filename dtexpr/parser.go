package dtexpr

import "strings"

//go:generate go run ../internal/cmd/generate ops --out operator_gen.go

// comparisonOperators lists the comparison operators in matching order,
// longer symbols before their prefixes.
var comparisonOperators = []Operator{
	OperatorLesserOrEqual,
	OperatorLesserThan,
	OperatorEqual,
	OperatorNotEqual,
	OperatorGreaterOrEqual,
	OperatorGreaterThan,
}

// parser is a recursive descent parser over a compacted token stream.
// It tracks the current token and the byte offset inside it when that
// token is Text.
type parser struct {
	tokens Tokens
	tok    int
	off    int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpace moves past whitespace, crossing into following Text tokens.
func (p *parser) skipSpace() {
	for p.tok < len(p.tokens) {
		text, ok := p.tokens[p.tok].(Text)
		if !ok {
			return
		}
		for p.off < len(text) && isSpace(text[p.off]) {
			p.off++
		}
		if p.off < len(text) {
			return
		}
		p.tok++
		p.off = 0
	}
}

func (p *parser) pos() Position {
	p.skipSpace()
	return Position{Token: p.tok, Offset: p.off}
}

// accept consumes sym if the remaining text starts with it.
func (p *parser) accept(sym string) bool {
	p.skipSpace()
	if p.tok >= len(p.tokens) {
		return false
	}
	text, ok := p.tokens[p.tok].(Text)
	if !ok || !strings.HasPrefix(string(text[p.off:]), sym) {
		return false
	}
	p.off += len(sym)
	if p.off == len(text) {
		p.tok++
		p.off = 0
	}
	return true
}

// operand consumes a Placeholder or Literal token.
func (p *parser) operand() (node, bool) {
	at := p.pos()
	if p.tok >= len(p.tokens) {
		return nil, false
	}
	switch t := p.tokens[p.tok].(type) {
	case Placeholder:
		p.tok++
		return placeholderNode{at: at, name: t.Name}, true
	case Literal:
		p.tok++
		return literalNode{value: t.Value}, true
	}
	return nil, false
}

func (p *parser) errorf(at Position, msg string) *SyntaxError {
	return &SyntaxError{Tokens: p.tokens, Pos: at, Msg: msg}
}

func (p *parser) unexpected() *SyntaxError {
	at := p.pos()
	if at.Token >= len(p.tokens) {
		return p.errorf(at, "unexpected end of expression")
	}
	return p.errorf(at, "unexpected token")
}

func (p *parser) parse() (node, error) {
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if at := p.pos(); at.Token < len(p.tokens) {
		return nil, p.errorf(at, "unexpected token after end of expression")
	}
	return n, nil
}

// expr := poly ( comparison expr )?
func (p *parser) expr() (node, error) {
	left, err := p.poly()
	if err != nil {
		return nil, err
	}
	at := p.pos()
	for _, op := range comparisonOperators {
		if !p.accept(op.Symbol()) {
			continue
		}
		right, err := p.expr()
		if err != nil {
			return nil, err
		}
		return binaryNode{at: at, op: op, left: left, right: right}, nil
	}
	return left, nil
}

// poly := term ( ('+'|'-') poly )?
func (p *parser) poly() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	at := p.pos()
	for _, op := range []Operator{OperatorAddition, OperatorSubtraction} {
		if !p.accept(op.Symbol()) {
			continue
		}
		right, err := p.poly()
		if err != nil {
			return nil, err
		}
		return binaryNode{at: at, op: op, left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) term() (node, error) {
	return p.negterm()
}

// negterm := '-' realexpr | realexpr
func (p *parser) negterm() (node, error) {
	at := p.pos()
	if p.accept(OperatorNegation.Symbol()) {
		operand, err := p.realexpr()
		if err != nil {
			return nil, err
		}
		return negNode{at: at, operand: operand}, nil
	}
	return p.realexpr()
}

// realexpr := '(' poly ')' | operand
func (p *parser) realexpr() (node, error) {
	at := p.pos()
	if p.accept("(") {
		inner, err := p.poly()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, p.errorf(at, `unclosed parenthesis, expected ")"`)
		}
		return inner, nil
	}
	if n, ok := p.operand(); ok {
		return n, nil
	}
	return nil, p.unexpected()
}
