// Package parser turns one line's token stream into an ordered list of
// statements, Pratt-parsing expressions with the precedence table from
// spec.md section 4.2. A Parser is reused across every line of a program:
// its user-defined-function registry must persist so that a DEF appearing
// on an earlier line lets later lines call it instead of treating the
// name as an array reference (spec.md section 9).
package parser

import (
	"fmt"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/interp/builtins"
	"github.com/ReleasedGroup/go-basic/pkg/token"
)

// Parser parses one line's tokens at a time, keeping the user-function
// registry alive between calls.
type Parser struct {
	toks      []token.Token
	pos       int
	line      int
	source    string
	userFuncs map[string]bool
}

// New creates a Parser with an empty user-function registry.
func New() *Parser {
	return &Parser{userFuncs: make(map[string]bool)}
}

// ResetFunctions clears the user-function registry, matching the NEW
// command's semantics (spec.md section 9: reset on NEW, not on CLEAR).
func (p *Parser) ResetFunctions() {
	p.userFuncs = make(map[string]bool)
}

// ParseLine parses one program line's pre-tokenized source into its
// statement list.
func (p *Parser) ParseLine(lineNo int, source string, toks []token.Token) ([]ast.Statement, error) {
	p.toks = toks
	p.pos = 0
	p.line = lineNo
	p.source = source
	return p.parseStatements()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) atEndOfStatement() bool {
	c := p.cur()
	return c.Kind == token.END || (c.Kind == token.SEPARATOR && c.Text == ":")
}

func (p *Parser) isKeyword(text string) bool {
	c := p.cur()
	return c.Kind == token.KEYWORD && c.Text == text
}

func (p *Parser) isSeparator(text string) bool {
	c := p.cur()
	return c.Kind == token.SEPARATOR && c.Text == text
}

func (p *Parser) isOperator(text string) bool {
	c := p.cur()
	return c.Kind == token.OPERATOR && c.Text == text
}

func (p *Parser) errorf(format string, args ...any) error {
	return &berrors.SyntaxError{
		Pos:     p.cur().Pos,
		Message: fmt.Sprintf(format, args...),
		Source:  p.source,
	}
}

func (p *Parser) expectKeyword(text string) error {
	if !p.isKeyword(text) {
		return p.errorf("expected %s, got %q", text, p.cur().Text)
	}
	p.advance()
	return nil
}

func (p *Parser) expectSeparator(text string) error {
	if !p.isSeparator(text) {
		return p.errorf("expected %q, got %q", text, p.cur().Text)
	}
	p.advance()
	return nil
}

func (p *Parser) expectOperator(text string) error {
	if !p.isOperator(text) {
		return p.errorf("expected %q, got %q", text, p.cur().Text)
	}
	p.advance()
	return nil
}

// parseStatements splits the remaining tokens on ':' and parses each
// segment as a statement. A leading or trailing ':' is permitted.
func (p *Parser) parseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.isSeparator(":") {
		p.advance()
	}
	for p.cur().Kind != token.END {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		for p.isSeparator(":") {
			p.advance()
		}
	}
	return stmts, nil
}

// callKind resolves name to a built-in call, a user-defined call, or,
// when it is neither, an array reference.
func (p *Parser) callKind(name string) ast.CallKind {
	if builtins.Default.IsBuiltin(name) {
		return ast.BuiltinCall
	}
	if p.userFuncs[name] {
		return ast.UserCall
	}
	return ast.ArrayRef
}
