package main

import (
	"github.com/spf13/cobra"

	"syntek/internal/diagfmt"
	"syntek/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.stk",
	Short: "Tokenize a syntek source file",
	Long:  `Tokenize breaks a syntek source file into tokens, including the synthesized Newline, Indent and Outdent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	fs, unit, err := runSingle(cmd, args[0], driver.Tokenize)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, unit.Tokens, fs)
	} else {
		err = diagfmt.FormatTokensPretty(out, unit.Tokens, fs)
	}
	if err != nil {
		return err
	}
	if unit.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
