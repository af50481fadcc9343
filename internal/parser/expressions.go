package parser

import (
	"github.com/ReleasedGroup/go-basic/internal/ast"
	"github.com/ReleasedGroup/go-basic/pkg/token"
)

// Precedence levels from spec.md section 4.2. Higher binds tighter.
const (
	lowest = iota
	precOr
	precAnd
	precEquals // = <> < <= > >=
	precSum    // + -
	precProduct // * / unary NOT
	precPower   // ^ unary + -
)

func infixPrecedence(t token.Token) int {
	switch {
	case t.Kind == token.KEYWORD && t.Text == "OR":
		return precOr
	case t.Kind == token.KEYWORD && t.Text == "AND":
		return precAnd
	case t.Kind == token.OPERATOR && (t.Text == "=" || t.Text == "<>" || t.Text == "<" || t.Text == "<=" || t.Text == ">" || t.Text == ">="):
		return precEquals
	case t.Kind == token.OPERATOR && (t.Text == "+" || t.Text == "-"):
		return precSum
	case t.Kind == token.OPERATOR && (t.Text == "*" || t.Text == "/"):
		return precProduct
	case t.Kind == token.OPERATOR && t.Text == "^":
		return precPower
	default:
		return lowest
	}
}

// parseExpression implements precedence-climbing: it parses one prefix
// term, then repeatedly folds in infix operators whose precedence beats
// the caller's minimum. '^' recurses at precedence-1 so chained '^' is
// right-associative; every other binary operator recurses at its own
// precedence, so a same-precedence operator is left for the caller's loop
// and the result stays left-associative.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		next := p.cur()
		nextPrec := infixPrecedence(next)
		if precedence >= nextPrec {
			break
		}
		p.advance()
		var right ast.Expression
		if next.Text == "^" {
			right, err = p.parseExpression(nextPrec - 1)
		} else {
			right, err = p.parseExpression(nextPrec)
		}
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{
			BaseNode: ast.BaseNode{Position: next.Pos},
			Operator: next.Text,
			Left:     left,
			Right:    right,
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	tok := p.cur()
	switch {
	case tok.Kind == token.NUMBER:
		p.advance()
		return &ast.NumberLiteral{BaseNode: ast.BaseNode{Position: tok.Pos}, Value: tok.Number}, nil

	case tok.Kind == token.STRING:
		p.advance()
		return &ast.StringLiteral{BaseNode: ast.BaseNode{Position: tok.Pos}, Value: tok.Text}, nil

	case tok.Kind == token.SEPARATOR && tok.Text == "(":
		p.advance()
		inner, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectSeparator(")"); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.Kind == token.OPERATOR && (tok.Text == "-" || tok.Text == "+"):
		p.advance()
		operand, err := p.parseExpression(precPower)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{BaseNode: ast.BaseNode{Position: tok.Pos}, Operator: tok.Text, Operand: operand}, nil

	case tok.Kind == token.KEYWORD && tok.Text == "NOT":
		p.advance()
		operand, err := p.parseExpression(precProduct)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{BaseNode: ast.BaseNode{Position: tok.Pos}, Operator: "NOT", Operand: operand}, nil

	case tok.Kind == token.IDENTIFIER:
		return p.parseIdentifierExpr()

	default:
		return nil, p.errorf("unexpected token %q", tok.Text)
	}
}

func (p *Parser) parseIdentifierExpr() (ast.Expression, error) {
	tok := p.advance()
	name := tok.Text

	if p.isSeparator("(") {
		p.advance()
		var args []ast.Expression
		if !p.isSeparator(")") {
			arg, err := p.parseExpression(lowest)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			for p.isSeparator(",") {
				p.advance()
				arg, err := p.parseExpression(lowest)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
		}
		if err := p.expectSeparator(")"); err != nil {
			return nil, err
		}
		return &ast.CallExpression{
			BaseNode: ast.BaseNode{Position: tok.Pos},
			Name:     name,
			Args:     args,
			Kind:     p.callKind(name),
		}, nil
	}

	// RND and GET may be invoked with no parentheses at all.
	if name == "RND" || name == "GET" {
		return &ast.CallExpression{BaseNode: ast.BaseNode{Position: tok.Pos}, Name: name, Kind: ast.BuiltinCall}, nil
	}

	return &ast.Identifier{BaseNode: ast.BaseNode{Position: tok.Pos}, Name: name}, nil
}

// parseTarget parses an assignment/READ/INPUT target: a bare name or a
// name with an array index list.
func (p *Parser) parseTarget() (*ast.VariableTarget, error) {
	tok := p.cur()
	if tok.Kind != token.IDENTIFIER {
		return nil, p.errorf("expected a variable name, got %q", tok.Text)
	}
	p.advance()
	target := &ast.VariableTarget{BaseNode: ast.BaseNode{Position: tok.Pos}, Name: tok.Text}
	if p.isSeparator("(") {
		p.advance()
		idx, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		target.Indices = append(target.Indices, idx)
		for p.isSeparator(",") {
			p.advance()
			idx, err := p.parseExpression(lowest)
			if err != nil {
				return nil, err
			}
			target.Indices = append(target.Indices, idx)
		}
		if err := p.expectSeparator(")"); err != nil {
			return nil, err
		}
	}
	return target, nil
}
