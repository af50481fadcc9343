package interp

import "testing"

func TestReadConsumesDataInOrder(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 DATA 1, 2, 3
20 READ A, B, C
30 PRINT A; B; C
`, console, nil)

	if got := console.out.String(); got != "123\n" {
		t.Errorf("output = %q, want %q", got, "123\n")
	}
}

func TestDataIsCollectedRegardlessOfControlFlow(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 GOTO 30
20 DATA 42
30 READ A
40 PRINT A
`, console, nil)

	if got := console.out.String(); got != "42\n" {
		t.Errorf("output = %q, want %q", got, "42\n")
	}
}

func TestReadPastEndOfDataErrors(t *testing.T) {
	p := mustCompileOne(t, `
10 DATA 1
20 READ A, B
`)
	rt := New(&fakeConsole{}, nil)
	if err := rt.Run(p.cp, p.start); err == nil {
		t.Fatalf("expected an out-of-data error, got nil")
	}
}

func TestRestoreResetsCursorToStart(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 DATA 1, 2
20 READ A, B
30 RESTORE
40 READ C
50 PRINT A; B; C
`, console, nil)

	if got := console.out.String(); got != "121\n" {
		t.Errorf("output = %q, want %q", got, "121\n")
	}
}

func TestRestoreToLineRepositionsCursor(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 DATA 1, 2
20 DATA 3
30 READ A
40 RESTORE 20
50 READ B
60 PRINT A; B
`, console, nil)

	if got := console.out.String(); got != "13\n" {
		t.Errorf("output = %q, want %q", got, "13\n")
	}
}

func TestReadCoercesToStringTarget(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 DATA 7
20 READ A$
30 PRINT A$
`, console, nil)

	if got := console.out.String(); got != "7\n" {
		t.Errorf("output = %q, want %q", got, "7\n")
	}
}
