// Command ttm is the CLI collaborator for the TTM interpreter core: it
// parses the options of spec.md §6, assembles the program text from
// -e/-p, wires stdin/stdout redirection, and feeds the result to
// ttm.TTM. The interpreter core itself knows nothing about flags, files,
// or terminals (§1 "Out of scope: external collaborators").
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ttm-lang/ttm"
)

// version is canonicalized and validated through golang.org/x/mod/semver
// before being printed by -V, rather than trusted as a literal.
const version = "0.1.0"

// stringList accumulates a flag that may be repeated, the way -e and -X
// can each appear more than once (§6).
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type cliArgs struct {
	inline  stringList
	program *string
	stdin   *string
	stdout  *string

	interactive *bool
	quiet       *bool
	showVersion *bool

	debugFlags *string
	limits     stringList

	rest      []string
	stdinData string
}

func readArgs() *cliArgs {
	a := &cliArgs{
		program:     flag.String("p", "", "main program file"),
		stdin:       flag.String("f", "", "stdin redirect for rs"),
		stdout:      flag.String("o", "", "stdout redirect"),
		interactive: flag.Bool("i", false, "interactive"),
		quiet:       flag.Bool("q", false, "suppress final output"),
		showVersion: flag.Bool("V", false, "version"),
		debugFlags:  flag.String("d", "", "debug flags: t=trace, b=bare, T=merge stderr into stdout"),
	}
	flag.Var(&a.inline, "e", "prepend inline program fragment (repeatable)")
	flag.Var(&a.limits, "X", "tag=value budget override, e.g. x=100k (repeatable)")
	flag.Parse()
	a.rest = flag.Args()
	return a
}

func main() {
	os.Exit(run())
}

func run() int {
	a := readArgs()

	if *a.showVersion {
		printVersion()
		return 0
	}

	settings := ttm.NewSettings()
	applyDebugFlags(settings, *a.debugFlags)
	for _, kv := range a.limits {
		if err := applyLimit(settings, kv); err != nil {
			log.Printf("ttm: %s", err)
			return 1
		}
	}

	interp := ttm.New(settings)

	if *a.stdout != "" {
		f, err := os.Create(*a.stdout)
		if err != nil {
			log.Printf("ttm: can't open %s: %s", *a.stdout, err)
			return 1
		}
		defer f.Close()
		interp.Stdout = f
	}

	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	ttm.SetTraceColorize(isTTY && strings.Contains(*a.debugFlags, "t"))
	if strings.Contains(*a.debugFlags, "T") {
		interp.Stderr = interp.Stdout
	}

	programText, err := loadProgram(a)
	if err != nil {
		log.Printf("ttm: %s", err)
		return 1
	}
	if *a.stdin != "" {
		interp.Stdin = strings.NewReader(a.stdinData)
	}

	interp.SetArgv(a.rest)

	if !strings.Contains(*a.debugFlags, "b") {
		if err := interp.RunStartup(); err != nil {
			log.Printf("ttm: %s", err)
			return 1
		}
	}

	output, runErr := interp.Run(programText)
	if !*a.quiet {
		fmt.Fprint(interp.Stdout, output)
	}
	if runErr != nil {
		return 1
	}

	if *a.interactive {
		runInteractive(interp, output)
	}

	return interp.ExitCode()
}

// loadProgram assembles the program text from -e fragments followed by
// -p's file content, and keeps -f's file content in a.stdinData (run then
// points interp's Stdin at it).
// When both -p and -f name real files, they are read concurrently with
// an errgroup — independent I/O at the CLI layer only; the interpreter
// core remains single-threaded (§5).
func loadProgram(a *cliArgs) (string, error) {
	var programFile, stdinFile []byte
	var progErr, stdinErr error

	g, _ := errgroup.WithContext(context.Background())
	if *a.program != "" {
		g.Go(func() error {
			programFile, progErr = os.ReadFile(*a.program)
			return progErr
		})
	}
	if *a.stdin != "" {
		g.Go(func() error {
			stdinFile, stdinErr = os.ReadFile(*a.stdin)
			return stdinErr
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, frag := range a.inline {
		b.WriteString(frag)
	}
	b.Write(programFile)

	if *a.stdin != "" {
		a.stdinData = string(stdinFile)
	}
	return b.String(), nil
}

// runInteractive is a minimal REPL: each line read from the real stdin is
// run as its own program against the shared dictionary, with its output
// printed immediately. The interactive loop itself is explicitly out of
// scope for the interpreter core (§1); this is the thin collaborator the
// core expects to be fed by.
func runInteractive(interp *ttm.TTM, printed string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		// Run returns the whole passive buffer, which carries over from
		// earlier runs; print only what this line added.
		out, err := interp.Run(scanner.Text())
		fmt.Fprint(interp.Stdout, strings.TrimPrefix(out, printed))
		printed = out
		if err != nil {
			fmt.Fprintln(interp.Stderr, err)
		}
		if interp.Exited() {
			return
		}
	}
}

func printVersion() {
	v := "v" + version
	if !semver.IsValid(v) {
		fmt.Println(version)
		return
	}
	fmt.Println(semver.Canonical(v))
}

// applyDebugFlags maps -d's single-letter flags onto Settings (§6).
func applyDebugFlags(s *ttm.Settings, flags string) {
	s.Trace = strings.Contains(flags, "t")
	s.Bare = strings.Contains(flags, "b")
	s.MergeStderr = strings.Contains(flags, "T")
}

// applyLimit parses one -X tag=value pair (b=buffersize, s=stacksize,
// x=execcount), with k/m suffix scaling by 2^10/2^20 (§6).
func applyLimit(s *ttm.Settings, kv string) error {
	parts := strings.SplitN(kv, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed -X value %q, expected tag=value", kv)
	}
	tag, raw := parts[0], parts[1]

	scale := 1
	switch {
	case strings.HasSuffix(raw, "k"):
		scale = 1 << 10
		raw = strings.TrimSuffix(raw, "k")
	case strings.HasSuffix(raw, "m"):
		scale = 1 << 20
		raw = strings.TrimSuffix(raw, "m")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("malformed -X value %q: %w", kv, err)
	}
	n *= scale

	switch tag {
	case "b":
		s.BufferSize = n
	case "s":
		s.StackSize = n
	case "x":
		s.ExecCount = n
	default:
		return fmt.Errorf("unknown -X tag %q", tag)
	}
	return nil
}
