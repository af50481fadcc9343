// Package lexer tokenizes a single BASIC source line into a flat token
// stream. A classic BASIC program is edited and stored one line at a time,
// so the lexer is line-oriented rather than file-oriented: it never sees a
// newline, and every call to Tokenize starts and ends within one line.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/pkg/token"
)

// Lexer scans one source line into tokens.
type Lexer struct {
	line    int
	source  string
	runes   []rune
	pos     int // index into runes of the next unread rune
}

// New creates a Lexer for the given program line number and raw source
// text. lineNo may be 0 for immediate-mode input that has no stored line.
func New(lineNo int, source string) *Lexer {
	return &Lexer{line: lineNo, source: source, runes: []rune(source)}
}

// Tokenize scans the whole line and returns its tokens, always terminated
// by a token.END token. It returns a *berrors.SyntaxError on the first
// unrecognized character.
func Tokenize(lineNo int, source string) ([]token.Token, error) {
	return New(lineNo, source).Tokenize()
}

func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		l.skipSpaces()
		if l.atEnd() {
			toks = append(toks, token.Token{Kind: token.END, Pos: l.pos1()})
			return toks, nil
		}

		ch := l.runes[l.pos]
		switch {
		case ch == '\'':
			toks = append(toks, token.Token{Kind: token.KEYWORD, Text: "REM", Pos: l.pos1()})
			l.pos = len(l.runes)

		case ch == '?':
			toks = append(toks, token.Token{Kind: token.KEYWORD, Text: "PRINT", Pos: l.pos1()})
			l.pos++

		case ch == '"':
			tok := l.readString()
			toks = append(toks, tok)

		case isDigit(ch) || (ch == '.' && l.peekIsDigit(1)):
			tok, err := l.readNumber()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case isIdentStart(ch):
			newToks, err := l.readWord()
			if err != nil {
				return nil, err
			}
			toks = append(toks, newToks...)

		case strings.ContainsRune(":;,()#", ch):
			toks = append(toks, token.Token{Kind: token.SEPARATOR, Text: string(ch), Pos: l.pos1()})
			l.pos++

		case ch == '<' || ch == '>':
			toks = append(toks, l.readComparison())

		case strings.ContainsRune("+-*/^=", ch):
			toks = append(toks, token.Token{Kind: token.OPERATOR, Text: string(ch), Pos: l.pos1()})
			l.pos++

		default:
			return nil, &berrors.SyntaxError{
				Pos:     l.pos1(),
				Message: "unexpected character '" + string(ch) + "'",
				Source:  l.source,
			}
		}
	}
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.runes) }

func (l *Lexer) pos1() token.Position {
	return token.Position{Line: l.line, Column: l.pos + 1}
}

func (l *Lexer) skipSpaces() {
	for !l.atEnd() && unicode.IsSpace(l.runes[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) peekIsDigit(offset int) bool {
	i := l.pos + offset
	return i < len(l.runes) && isDigit(l.runes[i])
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// readComparison scans <, >, <=, >=, <>.
func (l *Lexer) readComparison() token.Token {
	start := l.pos1()
	first := l.runes[l.pos]
	l.pos++
	if !l.atEnd() {
		next := l.runes[l.pos]
		if next == '=' {
			l.pos++
			return token.Token{Kind: token.OPERATOR, Text: string(first) + "=", Pos: start}
		}
		if first == '<' && next == '>' {
			l.pos++
			return token.Token{Kind: token.OPERATOR, Text: "<>", Pos: start}
		}
	}
	return token.Token{Kind: token.OPERATOR, Text: string(first), Pos: start}
}

// readString scans a double-quoted string literal. A doubled "" inside
// yields one literal ". Unterminated strings run to end-of-line without
// erroring, matching classic BASIC's lenient behavior.
func (l *Lexer) readString() token.Token {
	start := l.pos1()
	l.pos++ // consume opening quote
	var sb strings.Builder
	for !l.atEnd() {
		ch := l.runes[l.pos]
		if ch == '"' {
			if l.pos+1 < len(l.runes) && l.runes[l.pos+1] == '"' {
				sb.WriteRune('"')
				l.pos += 2
				continue
			}
			l.pos++ // consume closing quote
			break
		}
		sb.WriteRune(ch)
		l.pos++
	}
	return token.Token{Kind: token.STRING, Text: sb.String(), Pos: start}
}

// readNumber scans a numeric literal: optional integer digits, optional
// fraction, optional E/D exponent with optional sign.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.pos1()
	startPos := l.pos

	for l.peekIsDigit(0) {
		l.pos++
	}
	if !l.atEnd() && l.runes[l.pos] == '.' && l.peekIsDigit(1) {
		l.pos++
		for l.peekIsDigit(0) {
			l.pos++
		}
	}

	if !l.atEnd() {
		ch := l.runes[l.pos]
		if ch == 'E' || ch == 'e' || ch == 'D' || ch == 'd' {
			save := l.pos
			l.pos++
			if !l.atEnd() && (l.runes[l.pos] == '+' || l.runes[l.pos] == '-') {
				l.pos++
			}
			if l.peekIsDigit(0) {
				for l.peekIsDigit(0) {
					l.pos++
				}
			} else {
				l.pos = save // not actually an exponent
			}
		}
	}

	text := string(l.runes[startPos:l.pos])
	normalized := strings.NewReplacer("D", "E", "d", "e").Replace(text)
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return token.Token{}, &berrors.SyntaxError{
			Pos:     start,
			Message: "invalid numeric literal '" + text + "'",
			Source:  l.source,
		}
	}
	return token.Token{Kind: token.NUMBER, Text: text, Number: f, Pos: start}, nil
}

// readWord implements the keyword/identifier recognition described in
// spec.md section 4.1: a greedy-longest-prefix keyword match that's
// accepted immediately for statement keywords (or any keyword not
// immediately followed by an identifier character), and otherwise falls
// back to reading the whole word and post-splitting it.
func (l *Lexer) readWord() ([]token.Token, error) {
	start := l.pos1()
	startPos := l.pos

	if kw, matchLen, ok := l.matchKeywordAt(l.pos); ok {
		endPos := l.pos + matchLen
		nextIsIdentChar := endPos < len(l.runes) && isIdentChar(l.runes[endPos])
		if !nextIsIdentChar || allowsAdjacency[kw] {
			l.pos = endPos
			return []token.Token{{Kind: token.KEYWORD, Text: kw, Pos: start}}, nil
		}
	}

	for !l.atEnd() && isIdentChar(l.runes[l.pos]) {
		l.pos++
	}
	word := string(l.runes[startPos:l.pos])
	upper := strings.ToUpper(word)

	if isKeyword(upper) {
		return []token.Token{{Kind: token.KEYWORD, Text: upper, Pos: start}}, nil
	}

	for _, kw := range []string{"THEN", "GOTO", "GOSUB"} {
		idx := strings.Index(upper, kw)
		if idx > 0 {
			prefixRunes := []rune(word)[:idx]
			prefix := strings.ToUpper(string(prefixRunes))
			kwEndOffset := startPos + idx + len([]rune(kw))
			l.pos = kwEndOffset
			kwPos := token.Position{Line: l.line, Column: startPos + idx + 1}
			return []token.Token{
				{Kind: token.IDENTIFIER, Text: prefix, Pos: start},
				{Kind: token.KEYWORD, Text: kw, Pos: kwPos},
			}, nil
		}
	}

	normalized := strings.NewReplacer("D", "E", "d", "e").Replace(word)
	if f, err := strconv.ParseFloat(normalized, 64); err == nil {
		return []token.Token{{Kind: token.NUMBER, Text: word, Number: f, Pos: start}}, nil
	}

	return []token.Token{{Kind: token.IDENTIFIER, Text: upper, Pos: start}}, nil
}

// matchKeywordAt tries every keyword, longest first, against the input
// starting at pos, case-insensitively. It returns the keyword text (always
// uppercase) and its rune length on success.
func (l *Lexer) matchKeywordAt(pos int) (kw string, length int, ok bool) {
	remaining := l.runes[pos:]
	for _, candidate := range keywordsByLengthDesc {
		cl := len([]rune(candidate))
		if cl > len(remaining) {
			continue
		}
		if strings.EqualFold(string(remaining[:cl]), candidate) {
			return candidate, cl, true
		}
	}
	return "", 0, false
}
