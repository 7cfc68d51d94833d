package ttm

import (
	"fmt"
	"sort"
)

// Location is a human-facing position within the active buffer: a 0-based
// cursor alongside the 1-based line/column it falls on.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LineIndex converts cursor offsets into the active buffer into Location
// values, for error messages.
//
// It stores the start cursor of each line (0-based). Given a cursor, it
// finds the line by binary searching line starts (O(log lines)).
type LineIndex struct {
	runes     []rune
	lineStart []int
}

func NewLineIndex(runes []rune) *LineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, r := range runes {
		if r == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{runes: runes, lineStart: lineStart}
}

func (li *LineIndex) LocationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(li.runes) {
		cursor = len(li.runes)
	}

	lineIdx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	lineStart := li.lineStart[lineIdx]
	return Location{
		Line:   lineIdx + 1,
		Column: cursor - lineStart + 1,
		Cursor: cursor,
	}
}
