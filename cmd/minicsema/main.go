// minicsema runs the semantic analyzer core over a YAML-described fixture
// program and prints its diagnostics, the way a quick-and-dirty
// command-line driver for a parser is traditionally built, just over this
// repository's own external input contract (a decoded AST) instead of raw
// source text.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/susji/minic/check"
	"github.com/susji/minic/diag"
	"github.com/susji/minic/driver"
	"github.com/susji/minic/fixture"
	"github.com/susji/minic/symbol"
)

// version is set by the release process; left at "dev" for local builds.
var version = "dev"

func main() {
	// A .env file in the working directory can override defaults (e.g.
	// MINIC_NO_COLOR) without requiring a flag on every invocation; it is
	// not an error for one to be absent.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "minicsema",
		Short: "Run the minic semantic analyzer over a fixture program",
	}
	root.AddCommand(newCheckCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the analyzer's version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func newCheckCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "check <fixture.yaml>",
		Short: "Type-check a YAML-described fixture program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], noColor)
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	return cmd
}

func runCheck(path string, noColor bool) error {
	prog, err := fixture.Load(path)
	if err != nil {
		return err
	}

	builtins := symbol.NewBuiltins()
	builder := fixture.NewBuilder(builtins)
	module, err := builder.Build(prog)
	if err != nil {
		return fmt.Errorf("building fixture: %w", err)
	}

	sink := diag.New(path)
	ctx := check.NewContext(sink, builder.Types(), builtins)
	d := driver.New(ctx, sink)
	d.Walk(module)

	color := !noColor && os.Getenv("MINIC_NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())
	for _, dg := range sink.Diagnostics() {
		printDiagnostic(dg, path, color)
	}

	fmt.Printf("%d error(s), %d warning(s)\n", sink.Errors(), sink.Warnings())
	if sink.Errors() > 0 {
		os.Exit(1)
	}
	return nil
}

func printDiagnostic(d *diag.Diagnostic, path string, color bool) {
	line := d.Located(path)
	if !color {
		fmt.Println(line)
		return
	}
	const (
		red    = "\x1b[31m"
		yellow = "\x1b[33m"
		reset  = "\x1b[0m"
	)
	c := red
	if d.Severity == diag.SevWarning {
		c = yellow
	}
	fmt.Println(c + line + reset)
}
