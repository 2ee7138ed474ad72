// Command nesmon prints a static disassembly listing starting at a ROM's
// reset vector — a read-only convenience over nes.Disassemble, not an
// interactive debugger (spec.md §1 excludes the latter).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/brotheringbullshit/duonessy/nes"
)

var count = flag.Int("count", 32, "number of instructions to disassemble")

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nesmon rom.nes")
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		glog.Errorf("nesmon: %v", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	console, err := nes.NewConsole(f)
	if err != nil {
		return errors.Wrap(err, "loading ROM")
	}

	addr := console.CPU.PC
	for i := 0; i < *count; i++ {
		line := nes.Disassemble(console.Bus, addr)
		fmt.Println(line)
		addr += nes.InstructionLength(console.Bus, addr)
	}

	return nil
}
