package ttm

// BuiltinFunc is the signature every built-in primitive implements. It
// receives the interpreter, the call's frame (argv, whether the call is
// active), and the result buffer it should fill unless the Name is
// sideeffect (§4.3 step 6).
type BuiltinFunc func(t *TTM, f *Frame, result *StringBuffer) error

// Name is one dictionary entry: either a builtin vtable entry, or a
// user-defined stored body with a residual read cursor (§3).
//
// Invariants: 0 <= residual <= len(body); if builtin, body is empty and
// fcn is non-nil; otherwise fcn is nil.
type Name struct {
	name    string
	trace   bool
	locked  bool
	builtin bool

	// sideeffect marks a builtin whose result is not collected into the
	// caller's buffer (e.g. ps, tn, exit) — §3 "Frame" field note.
	sideeffect bool

	minargs int
	maxargs int // -1 means unbounded (variadic)

	// residual is the read cursor into body, consumed by the §4.6 scan
	// primitives (cc, cn, cp, cs, scn, isc, rrp, eos) and the §4.8
	// charclass primitives (ccl, scl, tcl).
	residual int

	// maxsegmark is the highest segment-mark index currently used in
	// body; 0 if none.
	maxsegmark int

	fcn  BuiltinFunc
	body []rune
}

func newBuiltin(name string, minargs, maxargs int, sideeffect bool, fcn BuiltinFunc) *Name {
	return &Name{
		name:       name,
		builtin:    true,
		sideeffect: sideeffect,
		minargs:    minargs,
		maxargs:    maxargs,
		fcn:        fcn,
	}
}

func newUserName(name, body string) *Name {
	n := &Name{name: name, minargs: 0, maxargs: -1}
	n.setBody(body)
	return n
}

// setBody replaces the stored body verbatim (no sentinels), resetting
// residual and maxsegmark, and clearing the builtin vtable — the shape
// `ds` needs (§4.5).
func (n *Name) setBody(body string) {
	n.builtin = false
	n.fcn = nil
	n.body = []rune(body)
	n.residual = 0
	n.maxsegmark = 0
}

// clone copies every field except name, for `cf` (§4.5).
func (n *Name) clone(newName string) *Name {
	cp := *n
	cp.name = newName
	cp.body = append([]rune(nil), n.body...)
	return &cp
}

func (n *Name) bodyString() string { return string(n.body) }
