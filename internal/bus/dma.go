package bus

// dmaEngine is the OAM DMA state machine from spec.md §4.1. It is
// stepped one CPU slot at a time by the frame driver rather than
// running as an inline copy loop, so that DMA progress is visible to
// debuggers and the driver's cycle accounting stays exact (513-514
// CPU cycles, matching real hardware instead of a single synchronous
// memmove).
type dmaEngine struct {
	page           uint8
	addr           uint8
	data           uint8
	active         bool
	waitingForSync bool
}

// start latches the source page and arms the engine. The engine then
// waits for synchronisation until the first odd slot, which costs one
// slot if the first slot after start is odd and two if it is even.
func (d *dmaEngine) start(page uint8) {
	d.page = page
	d.addr = 0
	d.active = true
	d.waitingForSync = true
}

// step advances the engine by one CPU-rate slot. slotParity is the
// frame driver's running i%2: even slots read, odd slots write.
func (d *dmaEngine) step(b *Bus, slotParity int) {
	if !d.active {
		return
	}
	if d.waitingForSync {
		if slotParity == 1 {
			d.waitingForSync = false
		}
		return
	}

	if slotParity == 0 {
		d.data = b.Read(uint16(d.page)<<8 | uint16(d.addr))
		return
	}

	b.PPU.DMAWrite(d.addr, d.data)
	d.addr++
	if d.addr == 0 {
		d.active = false
		d.waitingForSync = true
	}
}
