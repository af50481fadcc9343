package basic

import "io"

// EngineOption configures an Engine at construction time, the same
// functional-options shape the teacher uses for its lexer/parser
// configuration.
type EngineOption func(*Engine)

// WithConsole sets the Console an Engine's INPUT/PRINT statements talk
// to. Defaults to a StdConsole over os.Stdin/os.Stdout if never set.
func WithConsole(c Console) EngineOption {
	return func(e *Engine) { e.console = c }
}

// WithFS sets the FileSystem an Engine's OPEN statements open channels
// against. Defaults to OSFileSystem if never set.
func WithFS(fs FileSystem) EngineOption {
	return func(e *Engine) { e.fs = fs }
}

// WithTrace enables per-line execution tracing to w.
func WithTrace(w io.Writer) EngineOption {
	return func(e *Engine) { e.trace = w }
}
