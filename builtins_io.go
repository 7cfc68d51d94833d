package ttm

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// registerIOBuiltins installs the I/O and introspection primitives of
// §4.10: ps, rs, psr, pf, cm, names, classes, ndf, time, xtime, ctime,
// tf, tn, lf, uf, include, argv, argc, exit, ttm.
func registerIOBuiltins(t *TTM) {
	define(t, "ps", 1, 2, true, builtinPS)
	define(t, "rs", 0, 0, false, builtinRS)
	define(t, "psr", 1, 2, false, builtinPSR)
	define(t, "pf", 0, 0, true, builtinPF)
	define(t, "cm", 1, 1, true, builtinCM)
	define(t, "names", 0, 1, false, builtinNames)
	define(t, "classes", 0, 0, false, builtinClasses)
	define(t, "ndf", 3, 3, false, builtinNDF)
	define(t, "time", 0, 0, false, builtinTime)
	define(t, "xtime", 0, 0, false, builtinXTime)
	define(t, "ctime", 1, 1, false, builtinCTime)
	define(t, "tf", 0, -1, true, builtinTF)
	define(t, "tn", 0, -1, true, builtinTN)
	define(t, "lf", 1, -1, true, builtinLF)
	define(t, "uf", 1, -1, true, builtinUF)
	define(t, "include", 1, 1, true, builtinInclude)
	define(t, "argv", 1, 1, false, builtinArgv)
	define(t, "argc", 0, 0, false, builtinArgc)
	define(t, "exit", 0, 1, true, builtinExit)
	define(t, "ttm", 1, -1, true, builtinTTMCmd)
}

// escapeForPrint renders control code points printably the way the §6
// trace format does, so `ps` output survives a terminal (§4.10).
func escapeForPrint(s string) string {
	return escapeTraceText(s)
}

func builtinPS(t *TTM, f *Frame, result *StringBuffer) error {
	s := escapeForPrint(f.arg(1))
	w := t.Stdout
	if f.argc() > 2 && f.arg(2) == "stderr" {
		w = t.Stderr
	}
	fmt.Fprint(w, s)
	return nil
}

func (t *TTM) stdinReader() *bufio.Reader {
	if t.stdin == nil {
		t.stdin = bufio.NewReader(t.Stdin)
	}
	return t.stdin
}

// builtinRS implements `rs`: read from stdin until metac or EOF (§4.10).
func builtinRS(t *TTM, f *Frame, result *StringBuffer) error {
	r := t.stdinReader()
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return nil // EOF: return whatever was accumulated
		}
		if c == t.Meta.Meta {
			return nil
		}
		result.put(c)
	}
}

func builtinPSR(t *TTM, f *Frame, result *StringBuffer) error {
	if err := builtinPS(t, f, nil); err != nil {
		return err
	}
	return builtinRS(t, f, result)
}

func builtinPF(t *TTM, f *Frame, result *StringBuffer) error {
	if flusher, ok := t.Stdout.(interface{ Sync() error }); ok {
		_ = flusher.Sync()
	}
	return nil
}

// builtinCM implements `cm`: change the I/O meta-character. Requires a
// single ASCII code point (§4.10, §7 EASCII).
func builtinCM(t *TTM, f *Frame, result *StringBuffer) error {
	s := f.arg(1)
	if !isASCIIString(s) {
		return newError(EASCII, "`cm` requires an ASCII character, got `%s`", s)
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return newError(EASCII, "`cm` requires exactly one character, got `%s`", s)
	}
	t.Meta.Meta = runes[0]
	return nil
}

func builtinNames(t *TTM, f *Frame, result *StringBuffer) error {
	all := f.argc() > 1
	result.putString(strings.Join(t.dict.sortedNames(all), ","))
	return nil
}

func builtinClasses(t *TTM, f *Frame, result *StringBuffer) error {
	result.putString(strings.Join(t.dict.sortedClassNames(), ","))
	return nil
}

func builtinNDF(t *TTM, f *Frame, result *StringBuffer) error {
	name, tval, fval := f.arg(1), f.arg(2), f.arg(3)
	if _, ok := t.dict.lookup(name); ok {
		result.putString(tval)
	} else {
		result.putString(fval)
	}
	return nil
}

// hundredthsSince reports elapsed time, in hundredths of a second, since
// epoch.
func hundredthsSince(epoch time.Time) int64 {
	return time.Since(epoch).Nanoseconds() / 1e7
}

// builtinTime implements `time`: wall-clock hundredths of a second since
// the Unix epoch (§4.10, §9 "time... hundredths-of-a-second since a
// stable epoch (wall for time)").
func builtinTime(t *TTM, f *Frame, result *StringBuffer) error {
	result.putString(strconv.FormatInt(time.Now().UnixNano()/1e7, 10))
	return nil
}

// builtinXTime implements `xtime`: hundredths of a second of process
// runtime (§9 "xtime... CPU time"). The Go standard library exposes no
// portable process-CPU-time call without cgo/os-specific syscalls, so
// this uses wall time elapsed since the interpreter was constructed as
// the stand-in, matching the source's intent ("time elapsed doing work")
// without platform-specific code.
func builtinXTime(t *TTM, f *Frame, result *StringBuffer) error {
	result.putString(strconv.FormatInt(hundredthsSince(t.startedAt), 10))
	return nil
}

// builtinCTime implements `ctime`: decode a hundredths-of-a-second
// timestamp into a printable string (§4.10).
func builtinCTime(t *TTM, f *Frame, result *StringBuffer) error {
	hundredths, err := parseDecimal(f.arg(1))
	if err != nil {
		return err
	}
	ts := time.Unix(0, int64(hundredths)*1e7).UTC()
	result.putString(ts.Format("2006-01-02 15:04:05.00"))
	return nil
}

func setTraceFlag(t *TTM, names []string, on bool) {
	if len(names) == 0 {
		t.traceAll = on
		return
	}
	for _, name := range names {
		if n, ok := t.dict.lookup(name); ok {
			n.trace = on
		}
	}
}

func builtinTF(t *TTM, f *Frame, result *StringBuffer) error {
	setTraceFlag(t, f.args[1:], false)
	return nil
}

func builtinTN(t *TTM, f *Frame, result *StringBuffer) error {
	setTraceFlag(t, f.args[1:], true)
	return nil
}

func builtinLF(t *TTM, f *Frame, result *StringBuffer) error {
	for _, name := range f.args[1:] {
		if n, ok := t.dict.lookup(name); ok {
			n.locked = true
		}
	}
	return nil
}

func builtinUF(t *TTM, f *Frame, result *StringBuffer) error {
	for _, name := range f.args[1:] {
		if n, ok := t.dict.lookup(name); ok {
			n.locked = false
		}
	}
	return nil
}

// builtinInclude implements `include`: read path's contents and insert
// them at the active buffer's cursor, so they are scanned next (§4.10).
func builtinInclude(t *TTM, f *Frame, result *StringBuffer) error {
	path := f.arg(1)
	data, err := os.ReadFile(path)
	if err != nil {
		return newError(EInclude, "can't read `%s`: %s", path, err.Error())
	}
	runes := []rune(string(data))
	t.active.insert(runes, 0, len(runes))
	return nil
}

func builtinArgv(t *TTM, f *Frame, result *StringBuffer) error {
	i, err := parseDecimal(f.arg(1))
	if err != nil {
		return err
	}
	if i < 0 || i >= len(t.argv) {
		return newError(ERange, "argv index %d out of range [0,%d)", i, len(t.argv))
	}
	result.putString(t.argv[i])
	return nil
}

func builtinArgc(t *TTM, f *Frame, result *StringBuffer) error {
	result.putString(strconv.Itoa(len(t.argv)))
	return nil
}

// builtinExit implements `exit`: set the EXIT flag and exit code, so the
// evaluator and scanner unwind (§4.10, §5 "Cancellation").
func builtinExit(t *TTM, f *Frame, result *StringBuffer) error {
	code := 0
	if f.argc() > 1 {
		n, err := parseDecimal(f.arg(1))
		if err != nil {
			return err
		}
		if n < 0 {
			n = -n
		}
		code = n
	}
	t.setExit(code)
	return nil
}

// builtinTTMCmd implements the `ttm` meta-command (§4.10): `ttm;meta;XXXXX`
// reassigns the five metacharacters (exactly 5 code points); `ttm;info;...`
// dumps diagnostic info for names or classes.
func builtinTTMCmd(t *TTM, f *Frame, result *StringBuffer) error {
	switch f.arg(1) {
	case "meta":
		chars := []rune(f.arg(2))
		if len(chars) != 5 {
			return newError(ETTMCmd, "ttm;meta requires exactly 5 characters, got %d", len(chars))
		}
		t.Meta.Sharp, t.Meta.Open, t.Meta.Close, t.Meta.Semi, t.Meta.Escape = chars[0], chars[1], chars[2], chars[3], chars[4]
		return nil

	case "info":
		if f.argc() < 3 {
			return newError(ETTMCmd, "ttm;info requires a subcommand")
		}
		switch f.arg(2) {
		case "name":
			dumpNameInfo(t, f.args[3:], result)
			return nil
		case "class":
			dumpClassInfo(t, f.args[3:], result)
			return nil
		default:
			return newError(ETTMCmd, "unknown ttm;info subcommand `%s`", f.arg(2))
		}

	default:
		return newError(ETTMCmd, "unknown ttm subcommand `%s`", f.arg(1))
	}
}

func dumpNameInfo(t *TTM, names []string, result *StringBuffer) {
	sort.Strings(names)
	for _, name := range names {
		n, ok := t.dict.lookup(name)
		if !ok {
			fmt.Fprintf(result, "%s: undefined\n", name)
			continue
		}
		fmt.Fprintf(result, "%s: builtin=%t locked=%t trace=%t minargs=%d maxargs=%d residual=%d body=%q\n",
			name, n.builtin, n.locked, n.trace, n.minargs, n.maxargs, n.residual, n.bodyString())
	}
}

func dumpClassInfo(t *TTM, names []string, result *StringBuffer) {
	sort.Strings(names)
	for _, name := range names {
		c, ok := t.dict.lookupClass(name)
		if !ok {
			fmt.Fprintf(result, "%s: undefined\n", name)
			continue
		}
		fmt.Fprintf(result, "%s: negative=%t characters=%q\n", name, c.negative, c.characters)
	}
}
