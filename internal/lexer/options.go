package lexer

import (
	"fortio.org/safecast"

	"syntek/internal/diag"
	"syntek/internal/source"
)

// DefaultTabWidth is the column stop used for '\t' in indentation.
const DefaultTabWidth = 4

// maxTabWidth ограничивает ширину таба, чтобы ширина отступа не переполняла uint32.
const maxTabWidth = 64

type Options struct {
	// Reporter может быть nil: ошибки тогда только превращаются в Invalid токены.
	Reporter diag.Reporter
	// TabWidth; 0 означает DefaultTabWidth.
	TabWidth int
}

func (o Options) tabWidth() uint32 {
	if o.TabWidth <= 0 {
		return DefaultTabWidth
	}
	w := min(o.TabWidth, maxTabWidth)
	tw, err := safecast.Conv[uint32](w)
	if err != nil {
		return DefaultTabWidth
	}
	return tw
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
