package nes

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

const (
	FrameWidth  = 256
	FrameHeight = 240
)

// WriteFrame writes the PPU's framebuffer as a raw P6 PPM, each gray byte
// replicated across R/G/B channels (spec.md §6, grounded on the original
// render_frame routine).
func (p *PPU) WriteFrame(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", FrameWidth, FrameHeight); err != nil {
		return errors.Wrap(err, "writing PPM header")
	}

	rgb := make([]byte, 0, len(p.Frame)*3)
	for _, shade := range p.Frame {
		rgb = append(rgb, shade, shade, shade)
	}
	if _, err := w.Write(rgb); err != nil {
		return errors.Wrap(err, "writing PPM body")
	}

	return errors.Wrap(w.Flush(), "flushing PPM file")
}

// FramePath formats the frame_%03d.ppm naming convention (spec.md §6).
func FramePath(index int) string {
	return fmt.Sprintf("frame_%03d.ppm", index)
}
