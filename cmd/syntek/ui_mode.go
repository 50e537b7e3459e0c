package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects the progress view of `syntek diag` over directories.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

func (m uiMode) String() string {
	switch m {
	case uiModeOn:
		return "on"
	case uiModeOff:
		return "off"
	}
	return "auto"
}

func readUIMode(value string) (uiMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	}
	return uiModeAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI решает, показывать ли прогресс: --quiet и одиночный файл
// всегда без него, auto - только если stderr терминал.
func shouldUseTUI(mode uiMode, quiet bool, files int) bool {
	if quiet || files < 2 {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return isTerminal(os.Stderr)
}
