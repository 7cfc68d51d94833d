package ttm

import "strconv"

// expandBody walks a user-defined Name's stored body and writes the
// expansion into result (§4.4). Plain code points are copied verbatim;
// SEGMARK|n is replaced by args[n] when n < argc (args[0] is the function
// name, per TTM convention) and otherwise skipped; every CREATE sentinel
// in one expansion resolves to the same freshly-minted 4-digit decimal
// string, minted on the first one encountered (§9 "Single creation
// counter").
func (t *TTM) expandBody(n *Name, f *Frame, result *StringBuffer) {
	var createValue string
	mintedCreate := false

	for _, r := range n.body {
		if idx, ok := isSegMark(r); ok {
			if idx < f.argc() {
				result.putString(f.arg(idx))
			}
			continue
		}
		if isCreateMark(r) {
			if !mintedCreate {
				t.crcounter++
				createValue = formatCreationMark(t.crcounter)
				mintedCreate = true
			}
			result.putString(createValue)
			continue
		}
		result.put(r)
	}
}

func formatCreationMark(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
