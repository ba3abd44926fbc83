package bus

// Controller is one NES joypad's bus-visible state: the live input
// byte set by the host before each frame (external) and the serial
// shift register the CPU actually reads from (shift). Button layout,
// high to low: A, B, Select, Start, Up, Down, Left, Right.
//
// This module's shift-out order is MSB-first (spec.md §6), unlike the
// LSB-first approach in the source this was distilled from.
type Controller struct {
	external uint8
	shift    uint8
}

// SetState latches the host's current button byte. The host calls
// this once per controller before each frame; it does not affect the
// CPU-visible shift register until the game writes a strobe.
func (c *Controller) SetState(buttons uint8) {
	c.external = buttons
}

// Latch copies external into shift. Real hardware does this
// continuously while the strobe bit is held high; since games always
// write 1 then 0 to start a read, copying once per write is
// observationally equivalent and matches spec.md §4.1's write rule.
func (c *Controller) Latch(uint8) {
	c.shift = c.external
}

// Read returns the MSB of shift, then shifts it left by one so the
// next read exposes the next button in order.
func (c *Controller) Read() uint8 {
	bit := c.shift >> 7 & 1
	c.shift <<= 1
	return bit
}
