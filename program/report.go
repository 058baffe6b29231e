package program

import (
	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/runtime"
)

// Reporter receives failures and results of program runs. Presentation is up to
// the implementation.
type Reporter interface {
	Report(err error)               // a categorized failure, see dendron.KindOf
	StackSize(n int)                // values left on the machine's stack after a run
	Dump(vars *runtime.SymbolTable) // final variables, to be shown sorted by name
}

// TraceReporter is a Reporter writing to the tracer of this package.
type TraceReporter struct{}

var _ Reporter = TraceReporter{}

// Report traces an error together with its category.
func (TraceReporter) Report(err error) {
	tracer().Errorf("[%s] %v", dendron.KindOf(err), err)
}

// StackSize traces the stack size.
func (TraceReporter) StackSize(n int) {
	tracer().Infof("Machine: execution ended with %d items left on the stack", n)
}

// Dump traces the variables, one per line.
func (TraceReporter) Dump(vars *runtime.SymbolTable) {
	tracer().Infof("Symbol table:")
	for _, line := range vars.Dump() {
		tracer().Infof("    %s", line)
	}
}

func reporterOrDefault(rep Reporter) Reporter {
	if rep == nil {
		return TraceReporter{}
	}
	return rep
}
