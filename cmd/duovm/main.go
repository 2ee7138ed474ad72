// Command duovm runs a DuoVM hex program against an interactive
// bubbletea-backed terminal (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brotheringbullshit/duonessy/duovm"
)

var burstSize = flag.Int("burst", duovm.DefaultBurstSize, "instructions executed per driver burst")

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: duovm program.hex")
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		glog.Errorf("duovm: %v", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	mem := duovm.NewMemory()
	if err := duovm.LoadHex(mem, f); err != nil {
		return errors.Wrap(err, "loading hex program")
	}

	model := newTerminalModel(mem, *burstSize)
	p := tea.NewProgram(model)
	model.program = p
	_, err = p.Run()
	return errors.Wrap(err, "running terminal")
}
