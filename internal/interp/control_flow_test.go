package interp

import "testing"

func TestIfThenGoto(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 X = 5
20 IF X = 5 THEN 40
30 PRINT "SKIPPED"
40 PRINT "HIT"
`, console, nil)

	if got := console.out.String(); got != "HIT\n" {
		t.Errorf("output = %q, want %q", got, "HIT\n")
	}
}

func TestIfThenElseMultiStatementBranches(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 X = 1
20 IF X = 2 THEN PRINT "A" : PRINT "B" ELSE PRINT "C" : PRINT "D"
`, console, nil)

	if got := console.out.String(); got != "C\nD\n" {
		t.Errorf("output = %q, want %q", got, "C\nD\n")
	}
}

func TestGotoInsideIfBranchIsHonored(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 X = 1
20 IF X = 1 THEN PRINT "A" : GOTO 50
30 PRINT "NEVER"
50 PRINT "END"
`, console, nil)

	if got := console.out.String(); got != "A\nEND\n" {
		t.Errorf("output = %q, want %q", got, "A\nEND\n")
	}
}

func TestOnGotoDispatchesByIndex(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 X = 2
20 ON X GOTO 100, 200, 300
30 PRINT "FALLTHROUGH"
40 END
100 PRINT "ONE"
110 END
200 PRINT "TWO"
210 END
300 PRINT "THREE"
`, console, nil)

	if got := console.out.String(); got != "TWO\n" {
		t.Errorf("output = %q, want %q", got, "TWO\n")
	}
}

func TestOnGotoOutOfRangeFallsThroughSilently(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 X = 9
20 ON X GOTO 100, 200
30 PRINT "FALLTHROUGH"
40 END
100 PRINT "ONE"
200 PRINT "TWO"
`, console, nil)

	if got := console.out.String(); got != "FALLTHROUGH\n" {
		t.Errorf("output = %q, want %q", got, "FALLTHROUGH\n")
	}
}

func TestForNextWithNegativeStep(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 FOR I = 3 TO 1 STEP -1
20 PRINT I;
30 NEXT I
`, console, nil)

	if got := console.out.String(); got != "321" {
		t.Errorf("output = %q, want %q", got, "321")
	}
}

func TestNestedForLoops(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 FOR I = 1 TO 2
20 FOR J = 1 TO 2
30 PRINT I; J;
40 NEXT J
50 NEXT I
`, console, nil)

	if got := console.out.String(); got != "11122122" {
		t.Errorf("output = %q, want %q", got, "11122122")
	}
}

func TestForNextWithZeroStepRunsBodyOnce(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 FOR I = 1 TO 5 STEP 0
20 PRINT I;
30 NEXT I
40 PRINT "DONE"
`, console, nil)

	if got := console.out.String(); got != "1DONE\n" {
		t.Errorf("output = %q, want %q", got, "1DONE\n")
	}
}

func TestNamedNextDiscardsInnerLoops(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 FOR I = 1 TO 2
20 FOR J = 1 TO 2
30 PRINT J;
40 NEXT I
50 PRINT "DONE"
`, console, nil)

	if got := console.out.String(); got != "11DONE\n" {
		t.Errorf("output = %q, want %q", got, "11DONE\n")
	}
}
