package ttm

// registerCharclassBuiltins installs dcl, dncl, ecl, ccl, scl, tcl (§4.8).
func registerCharclassBuiltins(t *TTM) {
	define(t, "dcl", 1, 2, true, builtinDCL)
	define(t, "dncl", 1, 2, true, builtinDNCL)
	define(t, "ecl", 1, -1, true, builtinECL)
	define(t, "ccl", 2, 2, false, builtinCCL)
	define(t, "scl", 2, 2, true, builtinSCL)
	define(t, "tcl", 3, 4, false, builtinTCL)
}

func builtinDCL(t *TTM, f *Frame, result *StringBuffer) error {
	t.dict.defineClass(newCharclass(f.arg(1), f.arg(2), false))
	return nil
}

func builtinDNCL(t *TTM, f *Frame, result *StringBuffer) error {
	t.dict.defineClass(newCharclass(f.arg(1), f.arg(2), true))
	return nil
}

func builtinECL(t *TTM, f *Frame, result *StringBuffer) error {
	for _, name := range f.args[1:] {
		t.dict.eraseClass(name)
	}
	return nil
}

func lookupClass(t *TTM, name string) (*Charclass, error) {
	c, ok := t.dict.lookupClass(name)
	if !ok {
		return nil, newError(ENoName, "unknown class `%s`", name)
	}
	return c, nil
}

// residualNameForClass is shared by ccl/scl/tcl: the target Name must be
// user-defined per §4.8's framing of `residual`; a builtin target is
// ENOPRIM (§9 "tcl... builtin target → ENOPRIM is the intended contract",
// applied uniformly to the other residual-cursor class primitives too).
func residualNameForClass(t *TTM, name string) (*Name, error) {
	n, ok := t.dict.lookup(name)
	if !ok {
		return nil, newError(ENoName, "unknown name `%s`", name)
	}
	if n.builtin {
		return nil, newError(ENoPrim, "`%s` is a builtin", name)
	}
	return n, nil
}

// builtinCCL implements `ccl`: consume the maximal prefix of characters
// at residual that are members of class, returning it (§4.8).
func builtinCCL(t *TTM, f *Frame, result *StringBuffer) error {
	class, err := lookupClass(t, f.arg(1))
	if err != nil {
		return err
	}
	n, err := residualNameForClass(t, f.arg(2))
	if err != nil {
		return err
	}
	i := n.residual
	for i < len(n.body) && class.member(n.body[i]) {
		i++
	}
	result.putString(string(n.body[n.residual:i]))
	n.residual = i
	return nil
}

// builtinSCL is like ccl but discards the prefix, only advancing
// residual (§4.8).
func builtinSCL(t *TTM, f *Frame, result *StringBuffer) error {
	class, err := lookupClass(t, f.arg(1))
	if err != nil {
		return err
	}
	n, err := residualNameForClass(t, f.arg(2))
	if err != nil {
		return err
	}
	i := n.residual
	for i < len(n.body) && class.member(n.body[i]) {
		i++
	}
	n.residual = i
	return nil
}

// builtinTCL implements `tcl`: return t if the character at residual is a
// class member, else f (and f at end of body) (§4.8).
func builtinTCL(t *TTM, f *Frame, result *StringBuffer) error {
	class, err := lookupClass(t, f.arg(1))
	if err != nil {
		return err
	}
	n, err := residualNameForClass(t, f.arg(2))
	if err != nil {
		return err
	}
	tval := f.arg(3)
	fval := f.arg(4)
	if n.residual >= len(n.body) {
		result.putString(fval)
		return nil
	}
	if class.member(n.body[n.residual]) {
		result.putString(tval)
	} else {
		result.putString(fval)
	}
	return nil
}
