package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decafteam/decafc/internal/config"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/fixtures"
	"github.com/decafteam/decafc/internal/report"
	"github.com/decafteam/decafc/internal/semantic"
	"github.com/decafteam/decafc/internal/semantic/naming"
	"github.com/decafteam/decafc/internal/semantic/typing"
)

var (
	checkTarget     string
	checkJSON       bool
	checkConfigPath string
)

var checkCmd = &cobra.Command{
	Use:   "check [fixture]",
	Short: "run the Naming and Typing passes over a fixture program",
	Long: `Check runs the semantic analysis driver over a named fixture program
(see 'decafc list' for the catalog) and prints the resulting
diagnostics.

Examples:
  # Type-check the "hello" fixture
  decafc check hello

  # Stop after name resolution
  decafc check hello --target name-resolution

  # Emit a JSON diagnostic report instead of text
  decafc check undeclared-var --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkTarget, "target", "", "analysis target: name-resolution|type-check (default: config file or type-check)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit a JSON diagnostic report instead of text")
	checkCmd.Flags().StringVar(&checkConfigPath, "config", ".decafc.yaml", "path to the optional project config file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name := args[0]
	program, ok := fixtures.Get(name)
	if !ok {
		return fmt.Errorf("unknown fixture %q (see 'decafc list')", name)
	}

	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", checkConfigPath, err)
	}
	if cmd.Flags().Changed("target") {
		cfg.Target = checkTarget
	}
	if cmd.Flags().Changed("json") {
		if checkJSON {
			cfg.Format = config.FormatJSON
		} else {
			cfg.Format = config.FormatText
		}
	}

	target := semantic.TypeCheck
	if cfg.Target == "name-resolution" {
		target = semantic.NameResolution
	}

	sink := diag.NewSink()
	driver := semantic.NewDriver(naming.New(), typing.New())
	if err := driver.Run(program, target, sink); err != nil {
		return fmt.Errorf("internal error: %w", err)
	}

	if cfg.Format == config.FormatJSON {
		doc, err := report.Build(sink)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		fmt.Println(doc)
	} else {
		lines := sink.Render()
		if cfg.MaxDiagnostics > 0 && len(lines) > cfg.MaxDiagnostics {
			fmt.Fprintf(os.Stderr, "note: %d diagnostics truncated to %d by config\n", len(lines)-cfg.MaxDiagnostics, cfg.MaxDiagnostics)
			lines = lines[:cfg.MaxDiagnostics]
		}
		for _, line := range lines {
			fmt.Println(line)
		}
	}

	if sink.HasErrors() {
		return fmt.Errorf("check failed with %d diagnostic(s)", sink.Len())
	}
	return nil
}
