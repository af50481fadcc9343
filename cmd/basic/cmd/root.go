package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "basic",
	Short: "A classic Microsoft BASIC interpreter",
	Long: `basic is a line-numbered BASIC interpreter: a tokenizer, a Pratt
expression parser, and a tree-walking executor over numeric and string
variables, arrays, FOR/NEXT and GOSUB/RETURN control flow, DATA/READ,
and sequential file channels.

Run a .bas file directly, or start the interactive shell to enter and
edit a program line by line.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
