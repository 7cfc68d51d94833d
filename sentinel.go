package ttm

// Stored Name bodies carry two kinds of in-band sentinel rune alongside
// plain text: a segment mark (tags a parameter slot) and a creation mark
// (tags a spot to be replaced with a fresh counter value on expansion).
// Both live in the Unicode private-use area, well outside any code point a
// real active/passive buffer would ever contain, so a single high-nibble
// mask distinguishes "plain text" from "sentinel" in O(1).
const (
	sentinelMask = 0xF000
	segmarkTag   = 0xE000
	createTag    = 0xF000

	// MaxSegMarks is the highest segment-mark index a body may use (§4.5,
	// "MAXMARKS=62"). Marks are numbered 0..62 inclusive.
	MaxSegMarks = 62

	// MaxArgs bounds argc per call (§4.2, EMANYPARMS).
	MaxArgs = 63
)

// isSentinel reports whether r is a SEGMARK or CREATE sentinel rather than
// plain text, via the high-nibble mask from the spec.
func isSentinel(r rune) bool {
	return r&sentinelMask == segmarkTag || r&sentinelMask == createTag
}

// segMark encodes the n-th parameter slot (0 <= n <= MaxSegMarks) as an
// in-band sentinel rune.
func segMark(n int) rune {
	return rune(segmarkTag | n)
}

// isSegMark reports whether r is a segment mark, and if so which index.
func isSegMark(r rune) (int, bool) {
	if r&sentinelMask == segmarkTag {
		return int(r &^ sentinelMask), true
	}
	return 0, false
}

// createMark is the single sentinel rune standing for "insert the current
// creation-counter value here". Unlike segment marks it carries no index:
// every CREATE in one body expansion resolves to the same counter value
// (§4.4, §9 "Single creation counter").
const createMark = rune(createTag)

func isCreateMark(r rune) bool {
	return r == createMark
}
