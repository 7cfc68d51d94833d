package ttm

// eval implements §4.3 end to end for a call recognized directly in the
// active buffer's top-level scan: it executes the call (execute) and then
// routes the result — insert at the active cursor for rescanning (active
// call) or append to the passive buffer (passive call).
func (t *TTM) eval(active bool) *Error {
	f, result, err := t.execute(active)
	if err != nil {
		return err
	}
	if f.result == nil {
		// sideeffect builtin: nothing to route.
		return nil
	}
	if active {
		t.active.insert(result.runes[:result.used], 0, result.used)
	} else {
		t.passive.append(result.runes[:result.used], 0, result.used)
	}
	return nil
}

// execute runs one call's full evaluator cycle (§4.3 steps 1-9, minus
// result routing) and returns its frame and the result buffer it
// populated (nil if the builtin is sideeffect-only).
//
// Used both by eval (top-level calls, which then route the result) and by
// the call parser for recursive inner calls, whose result always feeds
// directly into the enclosing argument buffer regardless of whether the
// inner call was spelled `#<...>` or `##<...>` (§4.2: "invoke the
// evaluator with argument buffer as that call's passive target").
func (t *TTM) execute(active bool) (*Frame, *StringBuffer, *Error) {
	t.execcount--
	if t.execcount <= 0 {
		return nil, nil, newError(EExecCount, "execution budget exhausted")
	}

	// Push the frame before parsing its arguments, so inner calls in those
	// arguments nest on the stack above it and stacksize bounds the
	// nesting depth (§4.3 steps 2-3).
	f := newFrame(active)
	if err := t.stack.push(f); err != nil {
		return nil, nil, err.(*Error)
	}
	defer t.stack.pop()

	parsed, perr := t.parseCall(active)
	if perr != nil {
		return nil, nil, perr
	}
	f.args = parsed.args

	if f.argc() == 0 {
		return nil, nil, newError(EFewParms, "call with no function name")
	}
	name := f.args[0]
	n, ok := t.dict.lookup(name)
	if !ok {
		return nil, nil, newError(ENoName, "unknown name `%s`", name)
	}
	if f.argc()-1 < n.minargs {
		return nil, nil, newError(EFewParms, "`%s` requires at least %d argument(s), got %d", name, n.minargs, f.argc()-1)
	}
	if n.maxargs >= 0 && f.argc()-1 > n.maxargs {
		return nil, nil, newError(EManyParms, "`%s` accepts at most %d argument(s), got %d", name, n.maxargs, f.argc()-1)
	}

	if !n.sideeffect {
		f.result = NewStringBuffer(32)
	}

	if t.traceAll || n.trace {
		t.traceBegin(f)
	}

	var runErr error
	if n.builtin {
		runErr = n.fcn(t, f, f.result)
	} else {
		t.expandBody(n, f, f.result)
	}

	if t.traceAll || n.trace {
		t.traceEnd(f)
	}

	if runErr != nil {
		if e, ok := runErr.(*Error); ok {
			return nil, nil, e
		}
		return nil, nil, newError(EIO, "%s", runErr.Error())
	}

	return f, f.result, nil
}
