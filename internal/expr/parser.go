package expr

import (
	"slices"

	"github.com/jacoelho/scan/scanner"
)

// node is a parsed expression. Evaluation yields one of the value kinds
// described in eval.go.
type node interface {
	eval(env environment) (any, error)
}

type literalNode struct {
	value any
}

type identifierNode struct {
	name string
}

type unaryNode struct {
	op    tokenType
	right node
}

type binaryNode struct {
	op    tokenType
	left  node
	right node
}

// parserState walks the token stream with the same cursor used for runes.
type parserState struct {
	tokens *scanner.Scanner[token]
}

func parse(input string) (node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	state := parserState{tokens: scanner.New(tokens)}
	if state.current().typ == tokenEOF {
		return nil, expressionError("expression is empty")
	}

	root, err := state.parseExpression()
	if err != nil {
		return nil, err
	}

	if tok := state.current(); tok.typ != tokenEOF {
		return nil, expressionError("unexpected token at position %d", tok.pos)
	}

	return root, nil
}

func (p *parserState) parseExpression() (node, error) {
	return p.parseOr()
}

func (p *parserState) parseOr() (node, error) {
	return p.parseBinary(p.parseAnd, tokenOr)
}

func (p *parserState) parseAnd() (node, error) {
	return p.parseBinary(p.parseEquality, tokenAnd)
}

func (p *parserState) parseEquality() (node, error) {
	return p.parseBinary(p.parseUnary, tokenEqual, tokenNotEqual)
}

// parseBinary parses a left-associative chain of operand separated by any of ops.
func (p *parserState) parseBinary(operand func() (node, error), ops ...tokenType) (node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.accept(ops...)
		if !ok {
			return left, nil
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op.typ, left: left, right: right}
	}
}

func (p *parserState) parseUnary() (node, error) {
	if op, ok := p.accept(tokenNot); ok {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op.typ, right: right}, nil
	}

	return p.parsePrimary()
}

func (p *parserState) parsePrimary() (node, error) {
	tok := p.current()
	switch tok.typ {
	case tokenIdentifier:
		p.tokens.Next()
		return identifierNode{name: tok.literal}, nil
	case tokenNumber:
		p.tokens.Next()
		return literalNode{value: tok.number}, nil
	case tokenString:
		p.tokens.Next()
		return literalNode{value: tok.literal}, nil
	case tokenTrue:
		p.tokens.Next()
		return literalNode{value: true}, nil
	case tokenFalse:
		p.tokens.Next()
		return literalNode{value: false}, nil
	case tokenNull:
		p.tokens.Next()
		return literalNode{value: nil}, nil
	case tokenLParen:
		p.tokens.Next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(tokenRParen); !ok {
			return nil, expressionError("missing closing ')' at position %d", p.current().pos)
		}
		return expr, nil
	default:
		return nil, expressionError("unexpected token at position %d", tok.pos)
	}
}

// accept consumes the current token if its type is one of types.
func (p *parserState) accept(types ...tokenType) (token, bool) {
	return p.tokens.ScanElement(func(tok token) bool {
		return slices.Contains(types, tok.typ)
	})
}

func (p *parserState) current() token {
	tok, ok := p.tokens.Current()
	if !ok {
		return token{typ: tokenEOF, pos: p.tokens.Len()}
	}
	return tok
}
