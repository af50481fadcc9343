package interp

import "testing"

func TestOpenOutputAndPrintWritesToFile(t *testing.T) {
	fs := newFakeFS()
	runProgram(t, `
10 OPEN "OUT.TXT" FOR OUTPUT AS #1
20 PRINT #1, "HELLO"
30 CLOSE #1
`, &fakeConsole{}, fs)

	f := fs.files["OUT.TXT"]
	if f == nil {
		t.Fatalf("file OUT.TXT was never opened")
	}
	if got := f.wrote.String(); got != "HELLO\n" {
		t.Errorf("file contents = %q, want %q", got, "HELLO\n")
	}
	if !f.closed {
		t.Errorf("file was not closed")
	}
}

func TestPrintToChannelWithCommaWritesLiteralComma(t *testing.T) {
	fs := newFakeFS()
	runProgram(t, `
10 OPEN "OUT.TXT" FOR OUTPUT AS #1
20 PRINT #1, 1, 2; 3
30 CLOSE #1
`, &fakeConsole{}, fs)

	f := fs.files["OUT.TXT"]
	if f == nil {
		t.Fatalf("file OUT.TXT was never opened")
	}
	if got := f.wrote.String(); got != "1,23\n" {
		t.Errorf("file contents = %q, want %q", got, "1,23\n")
	}
}

func TestOpenInputAndInputHashReadsFields(t *testing.T) {
	fs := newFakeFS()
	fs.files["IN.TXT"] = &fakeFile{lines: []string{"1,2"}}
	console := &fakeConsole{}
	runProgram(t, `
10 OPEN "IN.TXT" FOR INPUT AS #1
20 INPUT #1, A, B
30 PRINT A; B
40 CLOSE #1
`, console, fs)

	if got := console.out.String(); got != "12\n" {
		t.Errorf("output = %q, want %q", got, "12\n")
	}
}

func TestInputHashEndOfFileErrors(t *testing.T) {
	fs := newFakeFS()
	fs.files["IN.TXT"] = &fakeFile{}
	p := mustCompileOne(t, `
10 OPEN "IN.TXT" FOR INPUT AS #1
20 INPUT #1, A
`)
	rt := New(&fakeConsole{}, fs)
	if err := rt.Run(p.cp, p.start); err == nil {
		t.Fatalf("expected an end-of-file error, got nil")
	}
}

func TestPrintToUnopenedChannelErrors(t *testing.T) {
	p := mustCompileOne(t, `10 PRINT #1, "X"`)
	rt := New(&fakeConsole{}, newFakeFS())
	if err := rt.Run(p.cp, p.start); err == nil {
		t.Fatalf("expected a channel-not-open error, got nil")
	}
}

func TestCloseWithNoArgumentsClosesEveryChannel(t *testing.T) {
	fs := newFakeFS()
	runProgram(t, `
10 OPEN "A.TXT" FOR OUTPUT AS #1
20 OPEN "B.TXT" FOR OUTPUT AS #2
30 CLOSE
`, &fakeConsole{}, fs)

	if !fs.files["A.TXT"].closed || !fs.files["B.TXT"].closed {
		t.Errorf("CLOSE with no arguments should close every open channel")
	}
}

func TestCloseUnknownChannelIsANoOp(t *testing.T) {
	console := &fakeConsole{}
	runProgram(t, `
10 CLOSE #5
20 PRINT "OK"
`, console, nil)

	if got := console.out.String(); got != "OK\n" {
		t.Errorf("output = %q, want %q", got, "OK\n")
	}
}

func TestReopeningAChannelClosesThePrevious(t *testing.T) {
	fs := newFakeFS()
	runProgram(t, `
10 OPEN "A.TXT" FOR OUTPUT AS #1
20 OPEN "B.TXT" FOR OUTPUT AS #1
30 PRINT #1, "HI"
40 CLOSE #1
`, &fakeConsole{}, fs)

	if !fs.files["A.TXT"].closed {
		t.Errorf("re-OPENing channel 1 should have closed A.TXT")
	}
	if got := fs.files["B.TXT"].wrote.String(); got != "HI\n" {
		t.Errorf("B.TXT contents = %q, want %q", got, "HI\n")
	}
}
