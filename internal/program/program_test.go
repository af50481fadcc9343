package program

import (
	"testing"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	"github.com/ReleasedGroup/go-basic/internal/parser"
)

func TestSetLineKeepsAscendingOrder(t *testing.T) {
	p := New()
	p.SetLine(30, "PRINT 3")
	p.SetLine(10, "PRINT 1")
	p.SetLine(20, "PRINT 2")
	got := p.Lines()
	want := []int{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lines() = %v, want %v", got, want)
		}
	}
}

func TestSetLineWithBlankSourceRemovesLine(t *testing.T) {
	p := New()
	p.SetLine(10, "PRINT 1")
	p.SetLine(10, "   ")
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after blank-source removal", p.Len())
	}
}

func TestCompilePreservesLineOrderAndSharesUserFuncs(t *testing.T) {
	p := New()
	p.SetLine(10, "DEF FNSQ(X) = X * X")
	p.SetLine(20, "Y = FNSQ(3)")

	cp, err := Compile(p, parser.New())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if len(cp.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(cp.Lines))
	}
	let := cp.Lines[1].Statements[0].(*ast.LetStatement)
	call := let.Value.(*ast.CallExpression)
	if call.Kind != ast.UserCall {
		t.Errorf("call kind = %v, want ast.UserCall (DEF on line 10 should register before line 20 compiles)", call.Kind)
	}
}

func TestCompileWrapsParseErrorWithLineNumber(t *testing.T) {
	p := New()
	p.SetLine(10, "PRINT @")
	_, err := Compile(p, parser.New())
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if got := err.Error(); got == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestProgramCounterAdvancesAcrossLinesAndSkipsEmptyOnes(t *testing.T) {
	p := New()
	p.SetLine(10, "A = 1 : B = 2")
	p.SetLine(15, ":")
	p.SetLine(20, "C = 3")
	p.SetLine(30, "D = 4")
	cp, err := Compile(p, parser.New())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	pc := ProgramCounter{LineIndex: 0, StmtIndex: 0}
	pc, ok := pc.Next(cp)
	if !ok || LineNumber(cp, pc) != 10 || pc.StmtIndex != 1 {
		t.Fatalf("first Next() = %+v, ok=%v, want line 10 stmt 1", pc, ok)
	}
	pc, ok = pc.Next(cp)
	if !ok || LineNumber(cp, pc) != 20 {
		t.Fatalf("second Next() = %+v, ok=%v, want line 20 (line 15 has no statements)", pc, ok)
	}
	pc, ok = pc.Next(cp)
	if !ok || LineNumber(cp, pc) != 30 {
		t.Fatalf("third Next() = %+v, ok=%v, want line 30", pc, ok)
	}
	_, ok = pc.Next(cp)
	if ok {
		t.Fatal("Next() past the last statement should return ok=false")
	}
}

func TestJumpToLine(t *testing.T) {
	p := New()
	p.SetLine(10, "A = 1")
	p.SetLine(20, "B = 2")
	cp, err := Compile(p, parser.New())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	pc, ok := JumpToLine(cp, 20)
	if !ok || LineNumber(cp, pc) != 20 {
		t.Fatalf("JumpToLine(20) = %+v, ok=%v", pc, ok)
	}
	if _, ok := JumpToLine(cp, 999); ok {
		t.Fatal("JumpToLine(999) should fail: no such line")
	}
}
