package main

import (
	"github.com/spf13/cobra"

	"syntek/internal/diagfmt"
	"syntek/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.stk",
	Short: "Parse a syntek source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var scopesCmd = &cobra.Command{
	Use:   "scopes [flags] file.stk",
	Short: "Resolve scopes of a syntek source file and print the scope tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runScopes,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scopesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	fs, unit, err := runSingle(cmd, args[0], driver.Parse)
	if err != nil {
		return err
	}
	nodes := unit.Builder.Nodes
	if format == "json" {
		err = diagfmt.FormatASTJSON(cmd.OutOrStdout(), nodes, unit.Program)
	} else {
		err = diagfmt.FormatASTPretty(cmd.OutOrStdout(), nodes, unit.Program, fs)
	}
	if err != nil {
		return err
	}
	if unit.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func runScopes(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	fs, unit, err := runSingle(cmd, args[0], driver.Analyze)
	if err != nil {
		return err
	}
	// при синтаксических ошибках области не строятся
	if unit.Scopes == nil {
		return errDiagnostics
	}
	if format == "json" {
		err = diagfmt.FormatScopesJSON(cmd.OutOrStdout(), unit.Scopes)
	} else {
		err = diagfmt.FormatScopesPretty(cmd.OutOrStdout(), unit.Scopes, fs)
	}
	if err != nil {
		return err
	}
	if unit.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
