package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ReleasedGroup/go-basic/pkg/basic"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive BASIC shell",
	Long: `Start an interactive shell: type a numbered line to store it, a bare
line number to delete it, or one of RUN, LIST, NEW, CLEAR, LOAD <path>,
SAVE [<path>], BYE/EXIT/QUIT.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	fmt.Println("go-basic interactive shell. Type BYE to exit.")
	engine := basic.New(
		basic.WithConsole(basic.NewStdConsole(os.Stdin, os.Stdout)),
		basic.WithFS(basic.OSFileSystem{}),
	)
	lastSavePath := ""

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("] ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case upper == "BYE" || upper == "EXIT" || upper == "QUIT":
			return nil
		case upper == "RUN":
			if err := engine.Run(); err != nil {
				fmt.Printf("?%s\n", err.Error())
			}
			continue
		case upper == "NEW":
			engine.New()
			continue
		case upper == "CLEAR":
			engine.Clear()
			continue
		case upper == "LIST":
			listProgram(engine)
			continue
		case strings.HasPrefix(upper, "LOAD "):
			path := strings.TrimSpace(line[5:])
			if err := loadFile(engine, path); err != nil {
				fmt.Printf("?%s\n", err.Error())
				continue
			}
			lastSavePath = path
			continue
		case upper == "SAVE" || strings.HasPrefix(upper, "SAVE "):
			path := lastSavePath
			if len(line) > 4 {
				path = strings.TrimSpace(line[4:])
			}
			if path == "" {
				fmt.Println("?SAVE requires a path")
				continue
			}
			if err := saveFile(engine, path); err != nil {
				fmt.Printf("?%s\n", err.Error())
				continue
			}
			lastSavePath = path
			continue
		}

		sp := strings.IndexByte(line, ' ')
		numEnd := len(line)
		if sp >= 0 {
			numEnd = sp
		}
		if n, err := strconv.Atoi(line[:numEnd]); err == nil {
			rest := ""
			if sp >= 0 {
				rest = line[sp+1:]
			}
			engine.SetLine(n, rest)
			continue
		}

		fmt.Printf("?Unknown command %q\n", line)
	}
}

func listProgram(engine *basic.Engine) {
	lines := engine.Lines()
	sort.Ints(lines)
	for _, n := range lines {
		src, _ := engine.Source(n)
		fmt.Printf("%d %s\n", n, src)
	}
}

func loadFile(engine *basic.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	engine.New()
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
			return err
		}
		engine.SetLine(n, line[sp+1:])
	}
	return scanner.Err()
}

func saveFile(engine *basic.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	lines := engine.Lines()
	sort.Ints(lines)
	for _, n := range lines {
		src, _ := engine.Source(n)
		fmt.Fprintf(w, "%d %s\n", n, src)
	}
	return w.Flush()
}
