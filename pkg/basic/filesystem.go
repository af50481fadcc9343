package basic

import (
	"bufio"
	"io"
	"os"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	"github.com/ReleasedGroup/go-basic/internal/interp"
)

// OSFileSystem opens real files on disk for OPEN/CLOSE channel I/O, the
// adapter cmd/basic wires into the engine.
type OSFileSystem struct{}

type osFileReader struct {
	f *os.File
	s *bufio.Scanner
}

// FileReader and FileWriter re-export interp's channel-I/O interfaces so
// callers outside this module's internal tree can reference them.
type FileReader = interp.FileReader
type FileWriter = interp.FileWriter

func (r *osFileReader) ReadLine() (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *osFileReader) Close() error { return r.f.Close() }

type osFileWriter struct{ f *os.File }

func (w *osFileWriter) WriteString(s string) error {
	_, err := w.f.WriteString(s)
	return err
}

func (w *osFileWriter) Close() error { return w.f.Close() }

func (OSFileSystem) OpenForRead(path string) (FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osFileReader{f: f, s: bufio.NewScanner(f)}, nil
}

func (OSFileSystem) OpenForWrite(path string, mode ast.OpenMode) (FileWriter, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == ast.OpenAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, err
	}
	return &osFileWriter{f: f}, nil
}
