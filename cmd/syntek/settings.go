package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"syntek/internal/diagfmt"
	"syntek/internal/driver"
	"syntek/internal/observ"
	"syntek/internal/parser"
	"syntek/internal/project"
)

// loadManifest ищет syntek.toml над target; отсутствие манифеста не ошибка.
func loadManifest(target string) (*project.Manifest, error) {
	dir := target
	if dir == "" {
		dir = "."
	}
	if st, err := os.Stat(dir); err == nil && !st.IsDir() {
		dir = filepath.Dir(dir)
	}
	m, err := project.Load(dir)
	if errors.Is(err, project.ErrNoManifest) {
		return nil, nil
	}
	return m, err
}

// driverOptions merges manifest settings with command-line flags. Flags that
// were set explicitly win over the manifest.
func driverOptions(cmd *cobra.Command, m *project.Manifest) (driver.Options, error) {
	flags := cmd.Root().PersistentFlags()
	var opts driver.Options

	modeStr := ""
	if m != nil {
		b := m.Config.Build
		modeStr = b.ErrorMode
		if b.MaxErrors > 0 {
			opts.MaxErrors = uint(b.MaxErrors)
		}
		opts.TabWidth = b.TabWidth
		opts.Jobs = b.Jobs
	}

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics

	if flags.Changed("error-mode") {
		if modeStr, err = flags.GetString("error-mode"); err != nil {
			return opts, fmt.Errorf("failed to get error-mode flag: %w", err)
		}
	}
	mode, ok := parser.ParseErrorMode(modeStr)
	if !ok {
		return opts, fmt.Errorf("invalid error mode %q (expected abort|collect)", modeStr)
	}
	opts.Mode = mode

	if flags.Changed("max-errors") {
		if opts.MaxErrors, err = flags.GetUint("max-errors"); err != nil {
			return opts, fmt.Errorf("failed to get max-errors flag: %w", err)
		}
	}
	if flags.Changed("tab-width") {
		if opts.TabWidth, err = flags.GetInt("tab-width"); err != nil {
			return opts, fmt.Errorf("failed to get tab-width flag: %w", err)
		}
	}

	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		opts.Timer = observ.NewTimer()
	}
	return opts, nil
}

// colorEnabled resolves --color for output written to f.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	return isTerminal(f)
}

func prettyOpts(cmd *cobra.Command, f *os.File, withNotes bool) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     colorEnabled(cmd, f),
		Context:   1,
		ShowNotes: withNotes,
	}
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
