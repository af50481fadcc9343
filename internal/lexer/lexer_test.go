package lexer

import (
	"testing"

	"github.com/ReleasedGroup/go-basic/pkg/token"
)

func tokenTexts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestTokenizeBasicStatement(t *testing.T) {
	toks, err := Tokenize(10, `PRINT "HELLO"; X`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"PRINT", "HELLO", ";", "X", ""}
	got := tokenTexts(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
	if toks[len(toks)-1].Kind != token.END {
		t.Errorf("last token kind = %v, want END", toks[len(toks)-1].Kind)
	}
}

func TestQuestionMarkIsPrint(t *testing.T) {
	toks, err := Tokenize(0, `?X`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.KEYWORD || toks[0].Text != "PRINT" {
		t.Errorf("first token = %v, want PRINT keyword", toks[0])
	}
}

func TestApostropheComment(t *testing.T) {
	toks, err := Tokenize(0, `X=1 ' this is ignored`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var kinds []string
	for _, tk := range toks {
		kinds = append(kinds, tk.Text)
	}
	found := false
	for _, k := range kinds {
		if k == "REM" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected REM token, got %v", kinds)
	}
}

func TestDoubledQuoteInString(t *testing.T) {
	toks, err := Tokenize(0, `PRINT "SHE SAID ""HI"""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Text != `SHE SAID "HI"` {
		t.Errorf("string literal = %q, want %q", toks[1].Text, `SHE SAID "HI"`)
	}
}

func TestUnterminatedStringRunsToEndOfLine(t *testing.T) {
	toks, err := Tokenize(0, `PRINT "UNCLOSED`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Kind != token.STRING || toks[1].Text != "UNCLOSED" {
		t.Errorf("got %v, want STRING(UNCLOSED)", toks[1])
	}
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"123", 123},
		{".5", 0.5},
		{"3.14", 3.14},
		{"1E10", 1e10},
		{"1.5D-2", 0.015},
	}
	for _, c := range cases {
		toks, err := Tokenize(0, c.src)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.src, err)
		}
		if toks[0].Kind != token.NUMBER {
			t.Fatalf("%s: kind = %v, want NUMBER", c.src, toks[0].Kind)
		}
		if toks[0].Number != c.want {
			t.Errorf("%s: value = %v, want %v", c.src, toks[0].Number, c.want)
		}
	}
}

func TestKeywordInsideIdentifierSplitting(t *testing.T) {
	toks, err := Tokenize(0, `IFA=1THEN10`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"IF", "A", "=", "1", "THEN", "10", ""}
	got := tokenTexts(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLogicalKeywordRequiresBoundary(t *testing.T) {
	toks, err := Tokenize(0, `ANDY=1`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.IDENTIFIER || toks[0].Text != "ANDY" {
		t.Errorf("first token = %v, want IDENTIFIER(ANDY)", toks[0])
	}
}

func TestComparisonOperators(t *testing.T) {
	toks, err := Tokenize(0, `A<=B A>=B A<>B A<B A>B`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A", "<=", "B", "A", ">=", "B", "A", "<>", "B", "A", "<", "B", "A", ">", "B", ""}
	got := tokenTexts(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnknownCharacterIsSyntaxError(t *testing.T) {
	_, err := Tokenize(0, `X = 1 @ 2`)
	if err == nil {
		t.Fatal("expected syntax error for '@'")
	}
}

func TestStringSigilIdentifier(t *testing.T) {
	toks, err := Tokenize(0, `A$="HI"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Text != "A$" {
		t.Errorf("identifier = %q, want A$", toks[0].Text)
	}
}
