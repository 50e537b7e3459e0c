package diag

import (
	"fmt"
	"sort"
	"strings"

	"syntek/internal/source"
)

// FormatShortDiagnostics renders diagnostics one per line as
// "path:line:col: SEVERITY CODE message", sorted by path and position.
// Used by golden tests and the CLI short output.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	type row struct {
		path      string
		line, col uint32
		text      string
	}
	rows := make([]row, 0, len(diags))
	for _, d := range diags {
		path := fmt.Sprintf("<file %d>", d.Primary.File)
		if f := fs.Get(d.Primary.File); f != nil {
			path = f.Path
		}
		start, _ := fs.Resolve(d.Primary)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s %s", path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(&sb, "\n  note %d:%d: %s", ns.Line, ns.Col, n.Msg)
			}
		}
		rows = append(rows, row{path: path, line: start.Line, col: start.Col, text: sb.String()})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].path != rows[j].path {
			return rows[i].path < rows[j].path
		}
		if rows[i].line != rows[j].line {
			return rows[i].line < rows[j].line
		}
		return rows[i].col < rows[j].col
	})

	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.text
	}
	return strings.Join(out, "\n")
}
