package ttm

// Settings carries the handful of budget overrides and debug flags the CLI
// surface (§6) can set before an interpreter starts: `-X` tag=value pairs
// (BufferSize, StackSize, ExecCount) and `-d` letter flags (Trace, Bare,
// MergeStderr). Unlike the teacher's dotted-path Config, TTM only ever
// carries these six knobs, so they are plain fields rather than a
// generic string-keyed store.
type Settings struct {
	BufferSize int
	StackSize  int
	ExecCount  int

	Trace       bool
	Bare        bool
	MergeStderr bool
}

// NewSettings returns Settings primed with TTM's documented defaults (§3
// "Global interpreter state").
func NewSettings() *Settings {
	return &Settings{
		BufferSize: 4096,
		StackSize:  128,
		ExecCount:  1_000_000,
	}
}
