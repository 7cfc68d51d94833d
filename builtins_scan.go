package ttm

// registerScanBuiltins installs cc, cn, sn, cp, cs, scn, isc, rrp, eos
// (§4.6). All read and/or advance the target Name's residual cursor.
func registerScanBuiltins(t *TTM) {
	define(t, "cc", 1, 1, false, builtinCC)
	define(t, "cn", 2, 2, false, builtinCN)
	define(t, "sn", 2, 2, true, builtinSN)
	define(t, "cp", 1, 1, false, builtinCP)
	define(t, "cs", 1, 1, false, builtinCS)
	define(t, "scn", 3, 3, false, builtinSCN)
	define(t, "isc", 4, 4, false, builtinISC)
	define(t, "rrp", 1, 1, true, builtinRRP)
	define(t, "eos", 3, 3, false, builtinEOS)
}

func lookupUserName(t *TTM, name string) (*Name, error) {
	n, ok := t.dict.lookup(name)
	if !ok {
		return nil, newError(ENoName, "unknown name `%s`", name)
	}
	if n.builtin {
		return nil, newError(ENoPrim, "`%s` is a builtin", name)
	}
	return n, nil
}

func builtinCC(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := lookupUserName(t, f.arg(1))
	if err != nil {
		return err
	}
	if n.residual < len(n.body) {
		result.put(n.body[n.residual])
		n.residual++
	}
	return nil
}

func builtinCN(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := lookupUserName(t, f.arg(2))
	if err != nil {
		return err
	}
	count, derr := parseDecimal(f.arg(1))
	if derr != nil {
		return derr
	}
	if cerr := clampNonNeg(count); cerr != nil {
		return cerr
	}
	remaining := len(n.body) - n.residual
	take := minInt(count, remaining)
	result.putString(string(n.body[n.residual : n.residual+take]))
	n.residual += take
	return nil
}

func builtinSN(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := lookupUserName(t, f.arg(2))
	if err != nil {
		return err
	}
	count, derr := parseDecimal(f.arg(1))
	if derr != nil {
		return derr
	}
	n.residual = maxInt(0, minInt(len(n.body), n.residual+count))
	return nil
}

// builtinCP implements `cp`: return characters from residual up to (not
// including) the next unnested top-level semic, advancing past it if
// present; parenthesis nesting tracks openc/closec (§4.6).
func builtinCP(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := lookupUserName(t, f.arg(1))
	if err != nil {
		return err
	}
	depth := 0
	i := n.residual
	for i < len(n.body) {
		switch n.body[i] {
		case t.Meta.Open:
			depth++
		case t.Meta.Close:
			if depth > 0 {
				depth--
			}
		case t.Meta.Semi:
			if depth == 0 {
				result.putString(string(n.body[n.residual:i]))
				n.residual = i + 1
				return nil
			}
		}
		i++
	}
	result.putString(string(n.body[n.residual:]))
	n.residual = len(n.body)
	return nil
}

// builtinCS implements `cs`: return characters from residual to the next
// segment mark or creation mark, advancing past the mark (§4.6).
func builtinCS(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := lookupUserName(t, f.arg(1))
	if err != nil {
		return err
	}
	i := n.residual
	for i < len(n.body) && !isSentinel(n.body[i]) {
		i++
	}
	result.putString(string(n.body[n.residual:i]))
	if i < len(n.body) {
		n.residual = i + 1
	} else {
		n.residual = i
	}
	return nil
}

// builtinSCN implements `scn`: search for s at or after residual (§4.6).
func builtinSCN(t *TTM, f *Frame, result *StringBuffer) error {
	s, name, fallback := f.arg(1), f.arg(2), f.arg(3)
	n, err := lookupUserName(t, name)
	if err != nil {
		return err
	}
	if s == "" {
		result.putString(fallback)
		return nil
	}
	needle := []rune(s)
	for i := n.residual; i+len(needle) <= len(n.body); i++ {
		if matchesAt(n.body, i, needle) {
			if i == n.residual {
				n.residual = i + len(needle)
				return nil
			}
			result.putString(string(n.body[n.residual:i]))
			return nil
		}
	}
	result.putString(fallback)
	return nil
}

// builtinISC implements `isc`: if body starts with s at residual, advance
// past it and return t, else return f (§4.6).
func builtinISC(t *TTM, f *Frame, result *StringBuffer) error {
	s, name, tval, fval := f.arg(1), f.arg(2), f.arg(3), f.arg(4)
	n, err := lookupUserName(t, name)
	if err != nil {
		return err
	}
	needle := []rune(s)
	if matchesAt(n.body, n.residual, needle) {
		n.residual += len(needle)
		result.putString(tval)
	} else {
		result.putString(fval)
	}
	return nil
}

func builtinRRP(t *TTM, f *Frame, result *StringBuffer) error {
	n, err := lookupUserName(t, f.arg(1))
	if err != nil {
		return err
	}
	n.residual = 0
	return nil
}

func builtinEOS(t *TTM, f *Frame, result *StringBuffer) error {
	name, tval, fval := f.arg(1), f.arg(2), f.arg(3)
	n, err := lookupUserName(t, name)
	if err != nil {
		return err
	}
	if n.residual >= len(n.body) {
		result.putString(tval)
	} else {
		result.putString(fval)
	}
	return nil
}
