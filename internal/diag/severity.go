package diag

// Severity orders Syntek diagnostics. The lexer and parser only emit
// SevError; SevInfo carries driver notices such as "stopped after N
// syntax errors", and SevWarning is reserved for recoverable lexical issues.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the upper-case label used by the pretty, short and JSON
// outputs.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Tally считает ошибки и предупреждения; SevInfo не учитывается.
func Tally(items []Diagnostic) (errs, warns int) {
	for i := range items {
		switch items[i].Severity {
		case SevError:
			errs++
		case SevWarning:
			warns++
		}
	}
	return errs, warns
}
