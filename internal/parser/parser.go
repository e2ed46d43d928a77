// Package parser implements the arith recursive descent parser.
//
// The grammar is LL(1) and parsed by precedence climbing, one grammar
// function per precedence tier:
//
//	expr      := addExpr
//	addExpr   := mulExpr ( ('+' | '-') mulExpr )*
//	mulExpr   := primary ( ('*' | '/') primary )*
//	primary   := NUMBER | '(' expr ')'
//
// Both operator tiers fold left-associatively: "a - b - c" parses as
// "(a - b) - c". One token of lookahead, no backtracking.
package parser

import (
	"fmt"
	"strconv"

	"github.com/arith-lang/arith/internal/ast"
	"github.com/arith-lang/arith/internal/lexer"
)

// ParseError represents a parsing error with source position context
type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

// Parser represents the recursive descent parser. It owns its scanner and
// consumes tokens one at a time; the first error aborts the parse, no
// recovery is attempted and no partial tree is returned.
type Parser struct {
	scanner *lexer.Scanner
}

// New creates a parser over the given input text
func New(input string) *Parser {
	return &Parser{scanner: lexer.New(input)}
}

// Parse parses the input and returns the root expression node.
// Tokens remaining after a complete expression are left unconsumed.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.parseExpr()
}

// current returns the scanner's current token without consuming it
func (p *Parser) current() lexer.Token {
	return p.scanner.CurrentToken()
}

// nextToken advances the parser to the next token
func (p *Parser) nextToken() {
	p.scanner.Tokenize()
}

// consume requires the current token to be of the given type and advances
// past it.
func (p *Parser) consume(tokenType lexer.TokenType) error {
	if tok := p.current(); tok.Type != tokenType {
		return &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf("unexpected token %s, expected token %s", tok.Type, tokenType),
		}
	}
	p.nextToken()
	return nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAddExpr()
}

func (p *Parser) parseAddExpr() (ast.Expr, error) {
	lhs, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case lexer.TokenPlus:
			p.nextToken()
			rhs, err := p.parseMulExpr()
			if err != nil {
				return nil, err
			}
			lhs = &ast.AddExpr{Span: ast.SpanBetween(lhs.GetSpan(), rhs.GetSpan()), Lhs: lhs, Rhs: rhs}
		case lexer.TokenMinus:
			p.nextToken()
			rhs, err := p.parseMulExpr()
			if err != nil {
				return nil, err
			}
			lhs = &ast.SubExpr{Span: ast.SpanBetween(lhs.GetSpan(), rhs.GetSpan()), Lhs: lhs, Rhs: rhs}
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parseMulExpr() (ast.Expr, error) {
	lhs, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case lexer.TokenMul:
			p.nextToken()
			rhs, err := p.parsePrimaryExpr()
			if err != nil {
				return nil, err
			}
			lhs = &ast.MulExpr{Span: ast.SpanBetween(lhs.GetSpan(), rhs.GetSpan()), Lhs: lhs, Rhs: rhs}
		case lexer.TokenDiv:
			p.nextToken()
			rhs, err := p.parsePrimaryExpr()
			if err != nil {
				return nil, err
			}
			lhs = &ast.DivExpr{Span: ast.SpanBetween(lhs.GetSpan(), rhs.GetSpan()), Lhs: lhs, Rhs: rhs}
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch tok := p.current(); tok.Type {
	case lexer.TokenNumber:
		return p.parseNumberLiteral()
	case lexer.TokenLParen:
		p.nextToken()
		sub, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return sub, nil
	default:
		return nil, &ParseError{Pos: tok.Pos, Message: "primary expression expected"}
	}
}

// parseNumberLiteral decodes the current NUMBER token as a base-10 integer
func (p *Parser) parseNumberLiteral() (ast.Expr, error) {
	tok := p.current()

	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Pos:     tok.Pos,
			Message: fmt.Sprintf("integer literal %q out of range", tok.Literal),
		}
	}

	end := tok.Pos
	end.Column += len(tok.Literal)
	end.Offset += len(tok.Literal)
	span := lexer.Span{Start: tok.Pos, End: end}

	p.nextToken()
	return &ast.NumberLiteral{Span: span, Value: value}, nil
}
