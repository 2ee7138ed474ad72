// Command nessy runs an iNES ROM for a fixed number of frames and writes
// each frame as a numbered PPM image (spec.md §6).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/brotheringbullshit/duonessy/nes"
)

func main() {
	defer glog.Flush()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <rom.nes> [frames]\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], frameCount(os.Args)); err != nil {
		glog.Errorf("nessy: %v", err)
		os.Exit(1)
	}
}

func frameCount(args []string) int {
	if len(args) < 3 {
		return 1
	}
	n, err := strconv.Atoi(args[2])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func run(path string, frames int) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	console, err := nes.NewConsole(f)
	if err != nil {
		return errors.Wrap(err, "loading ROM")
	}

	for i := 0; i < frames; i++ {
		console.RunOneFrame()
		if err := console.PPU.WriteFrame(nes.FramePath(i)); err != nil {
			return errors.Wrapf(err, "writing frame %d", i)
		}
	}

	return nil
}
