package parser

import (
	"github.com/ReleasedGroup/go-basic/internal/ast"
	"github.com/ReleasedGroup/go-basic/pkg/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.cur()

	if tok.Kind == token.KEYWORD {
		switch tok.Text {
		case "LET":
			p.advance()
			return p.parseAssignment()
		case "REM":
			return p.parseRem()
		case "PRINT":
			return p.parsePrint()
		case "INPUT":
			return p.parseInput()
		case "READ":
			return p.parseRead()
		case "DATA":
			return p.parseData()
		case "IF":
			return p.parseIf()
		case "ON":
			return p.parseOn()
		case "FOR":
			return p.parseFor()
		case "NEXT":
			return p.parseNext()
		case "GOTO":
			return p.parseGoto()
		case "GOSUB":
			return p.parseGosub()
		case "RETURN":
			p.advance()
			return &ast.ReturnStatement{BaseNode: ast.BaseNode{Position: tok.Pos}}, nil
		case "END":
			p.advance()
			return &ast.EndStatement{BaseNode: ast.BaseNode{Position: tok.Pos}}, nil
		case "STOP":
			p.advance()
			return &ast.StopStatement{BaseNode: ast.BaseNode{Position: tok.Pos}}, nil
		case "CLEAR":
			p.advance()
			return &ast.ClearStatement{BaseNode: ast.BaseNode{Position: tok.Pos}}, nil
		case "RESTORE":
			return p.parseRestore()
		case "RANDOMIZE":
			return p.parseRandomize()
		case "DIM":
			return p.parseDim()
		case "OPEN":
			return p.parseOpen()
		case "CLOSE":
			return p.parseClose()
		case "DEF":
			return p.parseDef()
		default:
			return nil, p.errorf("unexpected keyword %s", tok.Text)
		}
	}

	if tok.Kind == token.IDENTIFIER {
		return p.parseAssignment()
	}

	return nil, p.errorf("unexpected token %q", tok.Text)
}

// parseRem consumes every remaining token on the line, per spec.md
// section 4.2: an explicit REM, like the apostrophe shorthand, discards
// the rest of the line rather than stopping at the next ':'.
func (p *Parser) parseRem() (ast.Statement, error) {
	pos := p.cur().Pos
	for p.cur().Kind != token.END {
		p.advance()
	}
	return &ast.RemStatement{BaseNode: ast.BaseNode{Position: pos}}, nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	target, err := p.parseTarget()
	if err != nil {
		return nil, err
	}
	if err := p.expectOperator("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.LetStatement{BaseNode: target.BaseNode, Target: target, Value: value}, nil
}

// parsePrint parses PRINT [#chan,] [item (, |;) item ...]
func (p *Parser) parsePrint() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.PrintStatement{BaseNode: ast.BaseNode{Position: pos}}

	if p.isSeparator("#") {
		p.advance()
		ch, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Channel = ch
		if err := p.expectSeparator(","); err != nil {
			return nil, err
		}
	}

	for {
		if p.atEndOfStatement() {
			break
		}
		if p.isSeparator(",") || p.isSeparator(";") {
			sep := p.advance().Text
			stmt.Items = append(stmt.Items, ast.PrintItem{Sep: sep})
			continue
		}
		expr, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		sep := ""
		if p.isSeparator(",") || p.isSeparator(";") {
			sep = p.advance().Text
		}
		stmt.Items = append(stmt.Items, ast.PrintItem{Expr: expr, Sep: sep})
		if sep == "" {
			break
		}
	}
	return stmt, nil
}

// parseInput parses INPUT ["prompt";] [#chan,] target (, target)*
func (p *Parser) parseInput() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.InputStatement{BaseNode: ast.BaseNode{Position: pos}}

	if p.cur().Kind == token.STRING {
		stmt.HasPrompt = true
		stmt.Prompt = p.cur().Text
		p.advance()
		if err := p.expectSeparator(";"); err != nil {
			return nil, err
		}
	}

	if p.isSeparator("#") {
		p.advance()
		ch, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Channel = ch
		if err := p.expectSeparator(","); err != nil {
			return nil, err
		}
	}

	for {
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		stmt.Targets = append(stmt.Targets, target)
		if p.isSeparator(",") {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

func (p *Parser) parseRead() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.ReadStatement{BaseNode: ast.BaseNode{Position: pos}}
	for {
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		stmt.Targets = append(stmt.Targets, target)
		if p.isSeparator(",") {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

func (p *Parser) parseData() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.DataStatement{BaseNode: ast.BaseNode{Position: pos}}
	for {
		neg := false
		if p.isOperator("+") || p.isOperator("-") {
			neg = p.cur().Text == "-"
			p.advance()
		}
		switch p.cur().Kind {
		case token.STRING:
			stmt.Items = append(stmt.Items, ast.DataItem{IsString: true, Str: p.cur().Text, Line: p.line})
			p.advance()
		case token.NUMBER:
			n := p.cur().Number
			if neg {
				n = -n
			}
			stmt.Items = append(stmt.Items, ast.DataItem{Num: n, Line: p.line})
			p.advance()
		default:
			return nil, p.errorf("expected a DATA literal, got %q", p.cur().Text)
		}
		if p.isSeparator(",") {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

// parseIf parses IF cond THEN branch [ELSE branch], where a branch is
// either a lone line number (sugar for GOTO) or a full statement list.
// The entire remainder of the line belongs to the IF; the branch split
// on ELSE must skip over any nested IF...THEN's own ELSE (spec.md
// section 4.2).
func (p *Parser) parseIf() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}

	start := p.pos
	depth := 0
	elseIdx := -1
	for i := start; p.toks[i].Kind != token.END; i++ {
		tk := p.toks[i]
		if tk.Kind == token.KEYWORD && tk.Text == "IF" {
			depth++
			continue
		}
		if tk.Kind == token.KEYWORD && tk.Text == "ELSE" {
			if depth == 0 {
				elseIdx = i
				break
			}
			depth--
		}
	}

	var thenToks, elseToks []token.Token
	if elseIdx >= 0 {
		thenToks = append(append([]token.Token{}, p.toks[start:elseIdx]...), token.Token{Kind: token.END, Pos: p.toks[elseIdx].Pos})
		elseToks = p.toks[elseIdx+1:]
	} else {
		thenToks = p.toks[start:]
	}
	p.pos = len(p.toks) - 1 // IF consumes the rest of the line

	thenStmts, err := p.parseBranch(thenToks)
	if err != nil {
		return nil, err
	}
	var elseStmts []ast.Statement
	if elseIdx >= 0 {
		elseStmts, err = p.parseBranch(elseToks)
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStatement{
		BaseNode:  ast.BaseNode{Position: pos},
		Condition: cond,
		Then:      thenStmts,
		Else:      elseStmts,
	}, nil
}

// parseBranch parses one IF branch's tokens, handling the bare-line-number
// GOTO sugar before falling back to a full statement list parsed with a
// sub-parser that shares the user-function registry.
func (p *Parser) parseBranch(toks []token.Token) ([]ast.Statement, error) {
	if len(toks) == 2 && toks[0].Kind == token.NUMBER && toks[1].Kind == token.END {
		n := toks[0]
		return []ast.Statement{
			&ast.GotoStatement{
				BaseNode: ast.BaseNode{Position: n.Pos},
				Target:   &ast.NumberLiteral{BaseNode: ast.BaseNode{Position: n.Pos}, Value: n.Number},
			},
		}, nil
	}
	sub := &Parser{toks: toks, pos: 0, line: p.line, source: p.source, userFuncs: p.userFuncs}
	return sub.parseStatements()
}

func (p *Parser) parseOn() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	selector, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	isGosub := false
	switch {
	case p.isKeyword("GOTO"):
		p.advance()
	case p.isKeyword("GOSUB"):
		isGosub = true
		p.advance()
	default:
		return nil, p.errorf("expected GOTO or GOSUB, got %q", p.cur().Text)
	}
	stmt := &ast.OnStatement{BaseNode: ast.BaseNode{Position: pos}, Selector: selector, IsGosub: isGosub}
	for {
		target, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Targets = append(stmt.Targets, target)
		if p.isSeparator(",") {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	if p.cur().Kind != token.IDENTIFIER {
		return nil, p.errorf("expected a loop variable, got %q", p.cur().Text)
	}
	name := p.advance().Text
	if err := p.expectOperator("="); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("TO"); err != nil {
		return nil, err
	}
	limit, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	var step ast.Expression = &ast.NumberLiteral{BaseNode: ast.BaseNode{Position: pos}, Value: 1}
	if p.isKeyword("STEP") {
		p.advance()
		step, err = p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
	}
	return &ast.ForStatement{BaseNode: ast.BaseNode{Position: pos}, Variable: name, Start: start, Limit: limit, Step: step}, nil
}

func (p *Parser) parseNext() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	name := ""
	if p.cur().Kind == token.IDENTIFIER {
		name = p.advance().Text
	}
	return &ast.NextStatement{BaseNode: ast.BaseNode{Position: pos}, Variable: name}, nil
}

func (p *Parser) parseGoto() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	target, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.GotoStatement{BaseNode: ast.BaseNode{Position: pos}, Target: target}, nil
}

func (p *Parser) parseGosub() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	target, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.GosubStatement{BaseNode: ast.BaseNode{Position: pos}, Target: target}, nil
}

func (p *Parser) parseRestore() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.RestoreStatement{BaseNode: ast.BaseNode{Position: pos}}
	if !p.atEndOfStatement() {
		line, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Line = line
	}
	return stmt, nil
}

func (p *Parser) parseRandomize() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.RandomizeStatement{BaseNode: ast.BaseNode{Position: pos}}
	if !p.atEndOfStatement() {
		seed, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Seed = seed
	}
	return stmt, nil
}

func (p *Parser) parseDim() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.DimStatement{BaseNode: ast.BaseNode{Position: pos}}
	for {
		if p.cur().Kind != token.IDENTIFIER {
			return nil, p.errorf("expected an array name, got %q", p.cur().Text)
		}
		name := p.advance().Text
		if err := p.expectSeparator("("); err != nil {
			return nil, err
		}
		entry := ast.DimEntry{Name: name}
		dim, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		entry.Dims = append(entry.Dims, dim)
		for p.isSeparator(",") {
			p.advance()
			dim, err := p.parseExpression(lowest)
			if err != nil {
				return nil, err
			}
			entry.Dims = append(entry.Dims, dim)
		}
		if err := p.expectSeparator(")"); err != nil {
			return nil, err
		}
		stmt.Entries = append(stmt.Entries, entry)
		if p.isSeparator(",") {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

func (p *Parser) parseOpen() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	path, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("FOR"); err != nil {
		return nil, err
	}
	var mode ast.OpenMode
	switch p.cur().Text {
	case "INPUT":
		mode = ast.OpenInput
	case "OUTPUT":
		mode = ast.OpenOutput
	case "APPEND":
		mode = ast.OpenAppend
	default:
		return nil, p.errorf("expected INPUT, OUTPUT, or APPEND, got %q", p.cur().Text)
	}
	p.advance()
	if err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	if p.isSeparator("#") {
		p.advance()
	}
	channel, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.OpenStatement{BaseNode: ast.BaseNode{Position: pos}, Path: path, Mode: mode, Channel: channel}, nil
}

func (p *Parser) parseClose() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	stmt := &ast.CloseStatement{BaseNode: ast.BaseNode{Position: pos}}
	if p.atEndOfStatement() {
		return stmt, nil
	}
	for {
		if p.isSeparator("#") {
			p.advance()
		}
		ch, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		stmt.Channels = append(stmt.Channels, ch)
		if p.isSeparator(",") {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

// parseDef parses DEF name(params) = expression and registers name so
// later lines (and later statements) resolve name(...) as a user call
// rather than an array reference.
func (p *Parser) parseDef() (ast.Statement, error) {
	pos := p.cur().Pos
	p.advance()
	if p.cur().Kind != token.IDENTIFIER {
		return nil, p.errorf("expected a function name, got %q", p.cur().Text)
	}
	name := p.advance().Text
	if err := p.expectSeparator("("); err != nil {
		return nil, err
	}
	var params []string
	if !p.isSeparator(")") {
		if p.cur().Kind != token.IDENTIFIER {
			return nil, p.errorf("expected a parameter name, got %q", p.cur().Text)
		}
		params = append(params, p.advance().Text)
		for p.isSeparator(",") {
			p.advance()
			if p.cur().Kind != token.IDENTIFIER {
				return nil, p.errorf("expected a parameter name, got %q", p.cur().Text)
			}
			params = append(params, p.advance().Text)
		}
	}
	if err := p.expectSeparator(")"); err != nil {
		return nil, err
	}
	if err := p.expectOperator("="); err != nil {
		return nil, err
	}
	body, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	p.userFuncs[name] = true
	return &ast.DefStatement{BaseNode: ast.BaseNode{Position: pos}, Name: name, Params: params, Body: body}, nil
}
