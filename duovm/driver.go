package duovm

// DefaultBurstSize is the number of instructions executed per burst
// before the driver yields, matching the original fixed literal
// (spec.md §4.1). Design note §9 asks that this be configuration rather
// than a literal; Driver.BurstSize is that configuration point.
const DefaultBurstSize = 20000

// Driver repeatedly executes CPU bursts. Suspension only happens inside
// the blocking input opcode (spec.md §5); the driver has no other
// cooperative scheduling.
type Driver struct {
	CPU       *CPU
	BurstSize int
}

// NewDriver returns a driver with the default burst size.
func NewDriver(cpu *CPU) *Driver {
	return &Driver{CPU: cpu, BurstSize: DefaultBurstSize}
}

// RunForever executes bursts indefinitely. The blocking input opcode
// blocks the calling goroutine inline (spec.md §5: "purely blocking"),
// and the burst then ends early so this loop starts the next one.
func (d *Driver) RunForever() {
	for {
		d.RunBurst()
	}
}

// RunBurst executes up to BurstSize instructions, returning early right
// after an instruction that performed a blocking input read (opcode 0xA0).
func (d *Driver) RunBurst() {
	size := d.BurstSize
	if size <= 0 {
		size = DefaultBurstSize
	}
	for i := 0; i < size; i++ {
		blocking := d.CPU.Mem.Read(d.CPU.PC) == 0xA0
		d.CPU.Step()
		if blocking {
			return
		}
	}
}
