package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ReleasedGroup/go-basic/pkg/basic"
	"github.com/spf13/cobra"
)

var traceRun bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a BASIC program from a file",
	Long: `Execute a line-numbered BASIC program read from a .bas file.

Each non-blank line must start with a line number, the way a program
is listed at the interactive prompt:

  10 PRINT "HELLO"
  20 END
`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "trace execution line numbers to stderr")
}

func runFile(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	opts := []basic.EngineOption{
		basic.WithConsole(basic.NewStdConsole(os.Stdin, os.Stdout)),
		basic.WithFS(basic.OSFileSystem{}),
	}
	if traceRun {
		opts = append(opts, basic.WithTrace(os.Stderr))
	}
	engine := basic.New(opts...)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return fmt.Errorf("malformed program line (missing line number): %q", line)
		}
		n, err := parseLineNumber(line[:sp])
		if err != nil {
			return fmt.Errorf("malformed line number in %q: %w", line, err)
		}
		engine.SetLine(n, line[sp+1:])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := engine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "?%s\n", err.Error())
		return err
	}
	return nil
}

func parseLineNumber(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	if s == "" {
		return 0, fmt.Errorf("empty line number")
	}
	return n, nil
}
