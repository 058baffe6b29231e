package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/program"
	"github.com/npillmayer/dendron/runtime"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// ptermReporter presents errors and run results on the terminal.
type ptermReporter struct{}

var _ program.Reporter = ptermReporter{}

func (ptermReporter) Report(err error) {
	tracer().Debugf("reporting error of kind %d", dendron.KindOf(err))
	pterm.Error.Println(err.Error())
}

func (ptermReporter) StackSize(n int) {
	msg := fmt.Sprintf("Machine: execution ended with %d items left on the stack.", n)
	if n == 0 {
		pterm.Info.Println(msg)
		return
	}
	pterm.Warning.Println(msg)
}

func (ptermReporter) Dump(vars *runtime.SymbolTable) {
	if vars.Size() == 0 {
		pterm.Info.Println("Symbol table is empty")
		return
	}
	data := pterm.TableData{{"Variable", "Value"}}
	vars.EachSorted(func(name string, tag *runtime.Tag) {
		data = append(data, []string{name, strconv.Itoa(int(tag.Value))})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
