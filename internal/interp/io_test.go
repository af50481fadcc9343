package interp

import "testing"

func TestInputReadsCommaSeparatedFields(t *testing.T) {
	console := &fakeConsole{in: []string{"3,4"}}
	runProgram(t, `
10 INPUT A, B
20 PRINT A + B
`, console, nil)

	if got := console.out.String(); got != "? 7\n" {
		t.Errorf("output = %q, want %q", got, "? 7\n")
	}
}

func TestInputWithPromptUsesPromptPlusQuestionMark(t *testing.T) {
	console := &fakeConsole{in: []string{"HI"}}
	runProgram(t, `
10 INPUT "NAME"; A$
20 PRINT A$
`, console, nil)

	if got := console.out.String(); got != "NAME? HI\n" {
		t.Errorf("output = %q, want %q", got, "NAME? HI\n")
	}
}

func TestInputRepromptsOnFieldCountMismatch(t *testing.T) {
	console := &fakeConsole{in: []string{"1", "2,3"}}
	runProgram(t, `
10 INPUT A, B
20 PRINT A; B
`, console, nil)

	if got := console.out.String(); got != "? ?Redo from start\n? 23\n" {
		t.Errorf("output = %q, want %q", got, "? ?Redo from start\n? 23\n")
	}
}

func TestInputRepromptsOnInvalidNumber(t *testing.T) {
	console := &fakeConsole{in: []string{"ABC", "9"}}
	runProgram(t, `
10 INPUT A
20 PRINT A
`, console, nil)

	if got := console.out.String(); got != "? ?Redo from start\n? 9\n" {
		t.Errorf("output = %q, want %q", got, "? ?Redo from start\n? 9\n")
	}
}

func TestInputQuotedFieldWithEmbeddedComma(t *testing.T) {
	console := &fakeConsole{in: []string{`"SMITH, JOHN",42`}}
	runProgram(t, `
10 INPUT A$, B
20 PRINT A$; B
`, console, nil)

	if got := console.out.String(); got != "? SMITH, JOHN42\n" {
		t.Errorf("output = %q, want %q", got, "? SMITH, JOHN42\n")
	}
}

func TestInputEndOfStreamErrors(t *testing.T) {
	p := mustCompileOne(t, `10 INPUT A`)
	rt := New(&fakeConsole{}, nil)
	if err := rt.Run(p.cp, p.start); err == nil {
		t.Fatalf("expected an end-of-stream error, got nil")
	}
}
