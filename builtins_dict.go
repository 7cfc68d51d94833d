package ttm

import "strconv"

// registerBuiltins installs every primitive of §4.5-§4.10 into t's
// dictionary, grouped the way the built-in library's ~50 primitives are
// grouped in §6: dictionary ops, scanning, string utilities, character
// classes, arithmetic, I/O & introspection.
func registerBuiltins(t *TTM) {
	registerDictBuiltins(t)
	registerScanBuiltins(t)
	registerStringBuiltins(t)
	registerCharclassBuiltins(t)
	registerArithBuiltins(t)
	registerIOBuiltins(t)
}

func define(t *TTM, name string, minargs, maxargs int, sideeffect bool, fn BuiltinFunc) {
	t.dict.define(newBuiltin(name, minargs, maxargs, sideeffect, fn))
}

// registerDictBuiltins installs ds, ap, cf, es, cr, ss, sc (§4.5).
func registerDictBuiltins(t *TTM) {
	define(t, "ds", 1, 2, true, builtinDS)
	define(t, "ap", 2, 2, true, builtinAP)
	define(t, "cf", 2, 2, true, builtinCF)
	define(t, "es", 1, -1, true, builtinES)
	define(t, "cr", 2, 2, true, builtinCR)
	define(t, "ss", 2, -1, true, builtinSS)
	define(t, "sc", 2, -1, false, builtinSC)
}

func builtinDS(t *TTM, f *Frame, result *StringBuffer) error {
	name := f.arg(1)
	body := f.arg(2)
	n, ok := t.dict.lookup(name)
	if ok && n.locked {
		return nil
	}
	if !ok {
		n = &Name{name: name}
		t.dict.define(n)
	}
	n.setBody(body)
	return nil
}

func builtinAP(t *TTM, f *Frame, result *StringBuffer) error {
	name := f.arg(1)
	n, ok := t.dict.lookup(name)
	if !ok {
		return newError(ENoName, "unknown name `%s`", name)
	}
	if n.builtin {
		return newError(ENoPrim, "`%s` is a builtin, cannot append to its body", name)
	}
	if n.locked {
		return nil
	}
	n.body = append(n.body, []rune(f.arg(2))...)
	n.residual = len(n.body)
	return nil
}

func builtinCF(t *TTM, f *Frame, result *StringBuffer) error {
	newName, oldName := f.arg(1), f.arg(2)
	old, ok := t.dict.lookup(oldName)
	if !ok {
		return newError(ENoName, "unknown name `%s`", oldName)
	}
	if existing, ok := t.dict.lookup(newName); ok && existing.locked {
		return nil
	}
	t.dict.define(old.clone(newName))
	return nil
}

func builtinES(t *TTM, f *Frame, result *StringBuffer) error {
	for _, name := range f.args[1:] {
		t.dict.erase(name)
	}
	return nil
}

// builtinCR implements `cr`: scan body from residual to end, replacing
// each non-overlapping, left-to-right occurrence of s with a single
// CREATE sentinel (§4.5).
func builtinCR(t *TTM, f *Frame, result *StringBuffer) error {
	name, s := f.arg(1), f.arg(2)
	n, ok := t.dict.lookup(name)
	if !ok {
		return newError(ENoName, "unknown name `%s`", name)
	}
	if n.builtin {
		return newError(ENoPrim, "`%s` is a builtin", name)
	}
	if n.locked || s == "" {
		return nil
	}
	needle := []rune(s)
	head := n.body[:n.residual]
	tail := n.body[n.residual:]
	out := append([]rune(nil), head...)
	for i := 0; i < len(tail); {
		if matchesAt(tail, i, needle) {
			out = append(out, createMark)
			i += len(needle)
		} else {
			out = append(out, tail[i])
			i++
		}
	}
	n.body = out
	return nil
}

// builtinSS implements `ss`: segment-mark substitution across s2..sN,
// accumulating replacements across every s_i into the same body (§4.5,
// §9 "ss with multiple replacement strings" — the source's known bug of
// reinitializing newbody per iteration is intentionally NOT reproduced).
func builtinSS(t *TTM, f *Frame, result *StringBuffer) error {
	_, err := doSegmentSubstitution(t, f)
	return err
}

// builtinSC is `ss` plus emitting the total replacement count made.
func builtinSC(t *TTM, f *Frame, result *StringBuffer) error {
	count, err := doSegmentSubstitution(t, f)
	if err != nil {
		return err
	}
	result.putString(strconv.Itoa(count))
	return nil
}

func doSegmentSubstitution(t *TTM, f *Frame) (int, error) {
	name := f.arg(1)
	n, ok := t.dict.lookup(name)
	if !ok {
		return 0, newError(ENoName, "unknown name `%s`", name)
	}
	if n.builtin {
		return 0, newError(ENoPrim, "`%s` is a builtin", name)
	}
	if n.locked {
		return 0, nil
	}

	head := n.body[:n.residual]
	body := append([]rune(nil), n.body[n.residual:]...)
	total := 0

	for i := 2; i < f.argc(); i++ {
		s := f.arg(i)
		if s == "" || n.maxsegmark >= MaxSegMarks {
			continue
		}
		n.maxsegmark++
		mark := segMark(n.maxsegmark)
		needle := []rune(s)
		out := make([]rune, 0, len(body))
		for j := 0; j < len(body); {
			if matchesAt(body, j, needle) {
				out = append(out, mark)
				j += len(needle)
				total++
			} else {
				out = append(out, body[j])
				j++
			}
		}
		body = out
	}

	n.body = append(append([]rune(nil), head...), body...)
	return total, nil
}

func matchesAt(haystack []rune, i int, needle []rune) bool {
	if i+len(needle) > len(haystack) {
		return false
	}
	for k, r := range needle {
		if haystack[i+k] != r {
			return false
		}
	}
	return true
}
