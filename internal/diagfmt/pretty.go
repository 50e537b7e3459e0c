package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"syntek/internal/diag"
	"syntek/internal/source"
)

const tabStop = "    "

type palette struct {
	err, warn, info *color.Color
	gutter, caret   *color.Color
	code, note      *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		code:   color.New(color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.caret, p.code, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty prints every diagnostic of the bag with a source excerpt and a caret
// line under the primary span. Columns are measured in display cells.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostics not shown\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity)
	fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)

	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "  --> %s:%d:%d\n", displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col)

	f := fs.Get(d.Primary.File)
	if f != nil && start.Line > 0 {
		excerpt(w, f, start, end, opts.Context, pal)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("= note:"),
			displayPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col, n.Msg)
	}
}

func excerpt(w io.Writer, f *source.File, start, end source.LineCol, context int8, pal palette) {
	first, last := start.Line, start.Line
	if context > 0 {
		c := uint32(context)
		first = 1
		if start.Line > c {
			first = start.Line - c
		}
		last += c
	}
	if total, err := safecast.Conv[uint32](len(f.LineIdx) + 1); err == nil && last > total {
		last = total
	}
	digits := len(fmt.Sprint(last))
	blank := strings.Repeat(" ", digits)

	fmt.Fprintf(w, " %s %s\n", blank, pal.gutter.Sprint("|"))
	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, " %s %s %s\n", pal.gutter.Sprintf("%*d", digits, ln), pal.gutter.Sprint("|"), expandTabs(text))
		if ln != start.Line {
			continue
		}
		pad, width := caretColumns(text, start, end)
		fmt.Fprintf(w, " %s %s %s%s\n", blank, pal.gutter.Sprint("|"),
			strings.Repeat(" ", pad), pal.caret.Sprint(strings.Repeat("^", width)))
	}
}

// caretColumns returns the display offset of the span start on its line and
// the caret width. A span running past the line is clipped to the line end.
func caretColumns(line string, start, end source.LineCol) (pad, width int) {
	from := clampCol(line, start.Col)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(line, end.Col)
	}
	pad = runewidth.StringWidth(expandTabs(line[:from]))
	if to > from {
		width = runewidth.StringWidth(expandTabs(line[from:to]))
	}
	return pad, max(width, 1)
}

func clampCol(line string, col uint32) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", tabStop)
}
