package interp

import "github.com/ReleasedGroup/go-basic/internal/ast"

// Console is the abstract line-oriented terminal the executor reads INPUT
// from and writes PRINT to (spec.md section 6). A program never touches
// an os.File directly; the engine layer supplies the concrete adapter.
type Console interface {
	// ReadLine reads one line typed at the console, without its
	// terminator. err is io.EOF at end of input.
	ReadLine() (string, error)
	// ReadChar returns the next pending character of console input, for
	// GET(). An implementation may read a further line to refill its
	// pending characters; ok is false when no character can be supplied.
	ReadChar() (ch string, ok bool)
	// Write emits s with no trailing newline.
	Write(s string)
	// WriteLine emits s followed by a newline.
	WriteLine(s string)
}

// FileReader is a sequential, line-oriented read channel opened by OPEN
// ... FOR INPUT.
type FileReader interface {
	ReadLine() (string, error) // io.EOF at end of file
	Close() error
}

// FileWriter is a sequential write channel opened by OPEN ... FOR OUTPUT
// or FOR APPEND.
type FileWriter interface {
	WriteString(s string) error
	Close() error
}

// FileSystem opens the backing files for channel I/O. The engine layer
// supplies an OS-backed implementation; tests supply an in-memory one.
type FileSystem interface {
	OpenForRead(path string) (FileReader, error)
	OpenForWrite(path string, mode ast.OpenMode) (FileWriter, error)
}

// channelState is the runtime-side bookkeeping for one OPEN channel.
type channelState struct {
	mode          ast.OpenMode
	reader        FileReader
	writer        FileWriter
	pendingFields []string // buffered, not-yet-consumed INPUT# fields
}

func (c *channelState) close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	if c.writer != nil {
		return c.writer.Close()
	}
	return nil
}
