package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/dendron/program"
	"github.com/npillmayer/dendron/runtime"
	"github.com/npillmayer/dendron/tree"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() either runs a Dendron source file or starts an interactive CLI
// ("D.REPL"), where users may enter Dendron statements.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	mode := flag.String("mode", "", "Run mode for files [interpret|compile|both]")
	initf := flag.String("init", "", "Initial load")
	conff := flag.String("config", "", "YAML configuration file")
	flag.Parse()
	//
	// collect configuration: defaults < config file < flags
	conf := defaultConfig()
	if *conff != "" {
		if err := loadConfig(*conff, &conf); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			conf.Trace = *tlevel
		case "mode":
			conf.Mode = *mode
		case "init":
			conf.Init = *initf
		}
	})
	if err := conf.validate(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	setTraceLevel(conf.Trace)
	tracer().Infof("Trace level is %s", conf.Trace)
	//
	// run a file, if given
	if flag.NArg() > 0 {
		os.Exit(runFile(flag.Arg(0), conf.Mode, os.Stdout, ptermReporter{}))
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to D.REPL") // colored welcome message
	repl, err := readline.New(conf.Prompt)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(os.Stdout, ptermReporter{})
	intp.repl = repl
	//
	// load an init file and start receiving commands / statements
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(conf.Init)
	intp.REPL()
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// runFile parses a Dendron source file and runs it according to mode.
// Returns an exit code: 0 for success, 1 for runtime errors, 2 for unreadable
// or malformed programs and for failing output.
func runFile(filename string, mode string, out io.Writer, rep program.Reporter) int {
	source, err := ioutil.ReadFile(filename)
	if err != nil {
		rep.Report(err)
		return 2
	}
	prog, err := program.ParseSource(string(source))
	if err != nil {
		rep.Report(fmt.Errorf("%s: %w", filename, err))
		return 2
	}
	pterm.DefaultSection.Println("The program, with expressions in infix notation")
	if err := prog.Display(out); err != nil {
		rep.Report(err)
		return 2
	}
	exitcode := 0
	if mode == ModeInterpret || mode == ModeBoth {
		pterm.DefaultSection.Println("Interpreting the parse tree")
		if _, err := prog.Interpret(out, rep); err != nil {
			exitcode = 1
		}
	}
	if mode == ModeCompile || mode == ModeBoth {
		code := prog.Compile()
		pterm.DefaultSection.Println("Compiled code")
		if err := code.Listing(out); err != nil {
			rep.Report(err)
			return 2
		}
		pterm.DefaultSection.Println("Executing compiled code")
		if _, err := program.Execute(code, out, rep); err != nil {
			exitcode = 1
		}
	}
	return exitcode
}

// Intp is our interpreter object. It keeps a session program, made up of all the
// statements entered so far, and a session runtime holding their variables.
type Intp struct {
	repl    *readline.Instance
	session *program.Program
	rt      *runtime.Runtime
	rep     program.Reporter
	out     io.Writer
}

// NewIntp creates an interpreter for an empty session.
func NewIntp(out io.Writer, rep program.Reporter) *Intp {
	intp := &Intp{out: out, rep: rep}
	intp.reset()
	return intp
}

func (intp *Intp) reset() {
	intp.session = &program.Program{}
	intp.rt = runtime.NewRuntimeEnvironment(intp.out)
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: %v", lineno, err)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either a command (starting with ':',
// but not ':=') or a sequence of Dendron statements.
//
// Statements are run on a copy of the session variables. Only if all of them
// succeed, the copy replaces the session variables and the statements are added
// to the session program. A failing line leaves the session untouched, apart from
// values already printed.
//
func (intp *Intp) Eval(line string) (bool, error) {
	if isCommand(line) {
		return intp.Execute(strings.Fields(line))
	}
	prog, err := program.ParseSource(line)
	if err != nil {
		intp.rep.Report(err)
		return false, err
	}
	scratch := runtime.NewRuntimeEnvironment(intp.out)
	scratch.Vars = intp.rt.Vars.Clone()
	if err = prog.InterpretWith(scratch); err != nil {
		intp.rep.Report(err)
		return false, err
	}
	intp.rt = scratch
	intp.session.Append(prog)
	return false, nil
}

func isCommand(line string) bool {
	return strings.HasPrefix(line, ":") && !strings.HasPrefix(line, ":=")
}

// Execute runs a REPL command.
func (intp *Intp) Execute(args []string) (bool, error) {
	cmd := args[0]
	tracer().Debugf("command %s", cmd)
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help":
		intp.help()
	case ":infix":
		err = intp.session.Display(intp.out)
	case ":run":
		_, err = intp.session.Interpret(intp.out, intp.rep)
	case ":code":
		err = intp.session.Compile().Listing(intp.out)
	case ":exec":
		_, err = program.Execute(intp.session.Compile(), intp.out, intp.rep)
	case ":tree":
		intp.showTree()
	case ":vars":
		intp.rep.Dump(intp.rt.Vars)
	case ":reset":
		intp.reset()
		pterm.Info.Println("Session cleared")
	default:
		err = fmt.Errorf("unknown command %s", cmd)
		pterm.Error.Println(err.Error())
	}
	return false, err
}

func (intp *Intp) help() {
	pterm.Println(`Enter Dendron statements, or one of the commands
    :infix   show the session program in infix notation
    :run     interpret the session program with fresh variables
    :code    show the compiled session program
    :exec    compile and execute the session program with fresh variables
    :tree    show the parse trees of the session program
    :vars    show the session variables
    :reset   clear the session
    :quit    leave D.REPL`)
}

// showTree displays the session program as a tree on a terminal.
func (intp *Intp) showTree() {
	ll := sessionOutline(intp.session)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func sessionOutline(prog *program.Program) pterm.LeveledList {
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: "program"}}
	for _, stmt := range prog.Statements() {
		for _, item := range tree.Outline(stmt) {
			ll = append(ll, pterm.LeveledListItem{Level: item.Level + 1, Text: item.Text})
		}
	}
	return ll
}
