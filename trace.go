package ttm

import (
	"fmt"
	"strings"

	"github.com/ttm-lang/ttm/ascii"
)

// traceColorize gates ANSI coloring of trace/debug output; cmd/ttm turns
// it on only when tracing is requested and stderr is a terminal
// (golang.org/x/term's IsTerminal), the way the teacher's ASM/AST printers only colorize when
// asked to (HighlightPrettyString vs PrettyString).
var traceColorize = false

// SetTraceColorize gates ANSI coloring of trace/debug output. Collaborators
// (cmd/ttm) call this once at startup after checking golang.org/x/term's
// IsTerminal, since the core itself never probes file descriptors.
func SetTraceColorize(on bool) { traceColorize = on }

// traceBegin emits "[dd] begin: #<name;arg;...>" on call entry (§6).
func (t *TTM) traceBegin(f *Frame) {
	line := fmt.Sprintf("[dd] begin: %s", renderCall(f))
	t.emitTrace(line, ascii.DefaultTheme.Accent)
}

// traceEnd emits "[dd] end: #<name;...> => \"result\"" on call exit (§6).
func (t *TTM) traceEnd(f *Frame) {
	result := ""
	if f.result != nil {
		result = escapeTraceText(f.result.String())
	}
	line := fmt.Sprintf("[dd] end: %s => %q", renderCall(f), result)
	t.emitTrace(line, ascii.DefaultTheme.Muted)
}

func (t *TTM) emitTrace(line, color string) {
	if traceColorize {
		line = ascii.Color(color, "%s", line)
	}
	fmt.Fprintln(t.Stderr, line)
}

func renderCall(f *Frame) string {
	var b strings.Builder
	if f.active {
		b.WriteString("#<")
	} else {
		b.WriteString("##<")
	}
	for i, a := range f.args {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(escapeTraceText(a))
	}
	b.WriteByte('>')
	return b.String()
}

// escapeTraceText renders control code points and in-band sentinels for
// the debug/trace format (§6): \n \r \t \b \f for the common controls,
// numeric escapes for anything else, ^NN for segment marks (NN a 2-digit
// decimal of the mark index) and ^00 for creation marks.
func escapeTraceText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if idx, ok := isSegMark(r); ok {
			fmt.Fprintf(&b, "^%02d", idx)
			continue
		}
		switch {
		case isCreateMark(r):
			b.WriteString("^00")
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%d", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
