package ttm

// StartupProgram is the two-line bootstrap program run before any
// `-e`/`-p` input, unless `-b`/bare mode is requested (§6). It defines
// `comment` (a no-op sink for `##<comment;...>`) and `def` (a tiny
// `ds`+`ss` helper for defining named macros with segment-marked
// parameters in one call).
const StartupProgram = `#<ds;comment;>` +
	`#<ds;def;<##<ds;name;<text>>##<ss;name;subs>>>#<ss;def;name;subs;text>`

// RunStartup executes StartupProgram and then locks every name it
// defined, per §6 ("All names defined before -e/-p execution are
// locked").
func (t *TTM) RunStartup() error {
	if _, err := t.Run(StartupProgram); err != nil {
		return err
	}
	t.dict.lockAll()
	return nil
}
