package duovm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverRunBurstReadsInputExactlyOnce(t *testing.T) {
	cpu, _, input := newCPU()
	input.queue = []Button{ButtonUp}
	// The only input opcode in the program; the burst returns right after it.
	cpu.Mem.LoadAt(0, []byte{0xA0})
	cpu.A = 0xE000

	d := NewDriver(cpu)
	d.BurstSize = 5

	d.RunBurst()

	assert.Equal(t, byte(ButtonUp), cpu.Mem.Read(0xE000))
}

func TestDriverDefaultBurstSize(t *testing.T) {
	cpu, _, _ := newCPU()
	d := NewDriver(cpu)
	assert.Equal(t, DefaultBurstSize, d.BurstSize)
}
