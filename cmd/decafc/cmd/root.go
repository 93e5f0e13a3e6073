package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "decafc",
	Short: "decaf semantic analysis front end",
	Long: `decafc runs the Naming and Typing passes of the decaf semantic
analyzer over a fixture program and reports diagnostics.

decafc has no lexer or parser of its own: it drives the analysis
passes over a small built-in catalog of fixture programs (see
'decafc list') and over any program an embedding Go caller builds as
an ast.Program value.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))
}
