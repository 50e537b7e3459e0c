package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"syntek/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "syntek",
	Short:         "Syntek language front end",
	Long:          `Syntek tokenizes, parses and resolves scopes of Syntek source files and reports diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		stopProfiles, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanup, err := setupTracing(cmd)
		if err != nil {
			stopProfiles()
			return err
		}
		traceCleanup = func() {
			cleanup()
			stopProfiles()
		}
		return nil
	},
}

// traceCleanup сбрасывает трассировщик и останавливает профили после выполнения команды.
var traceCleanup = func() {}

// errDiagnostics signals that diagnostics with errors were printed; main
// exits with status 1 without printing anything else.
var errDiagnostics = errors.New("diagnostics reported errors")

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scopesCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	registerGlobalFlags(rootCmd.PersistentFlags())
}

// registerGlobalFlags объявляет флаги, общие для всех команд.
func registerGlobalFlags(flags *pflag.FlagSet) {
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file (0=unlimited)")
	flags.String("error-mode", "", "parser error handling (abort|collect); default from syntek.toml or abort")
	flags.Uint("max-errors", 0, "stop collecting syntax errors after this many (0=unlimited)")
	flags.Int("tab-width", 0, "columns per tab in indentation (0=from syntek.toml or 4)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace encoding (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.String("memprofile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")
}

func main() {
	// версия для автоматического флага --version
	rootCmd.Version = version.Version

	err := rootCmd.Execute()
	traceCleanup()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- дескриптор файла
}
