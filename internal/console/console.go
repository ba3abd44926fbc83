// Package console wires a CPU, a PPU and a Bus into a runnable NES and
// owns the frame driver that interleaves them at the real 3:1 PPU:CPU
// tick ratio.
package console

import (
	"fmt"

	"github.com/kestrelnes/nescore/internal/bus"
	"github.com/kestrelnes/nescore/internal/cartridge"
	"github.com/kestrelnes/nescore/internal/cpu"
	"github.com/kestrelnes/nescore/internal/ppu"
	"github.com/kestrelnes/nescore/internal/rom"
)

// CyclesPerFrame is (341/3) * (262+1) = 113 * 263 = 29719 outer ticks.
// Each outer tick advances the PPU by one dot, so one StepFrame covers
// 29719 dots, about a third of the 341 * 262 dots of a full PPU frame.
const CyclesPerFrame = (341 / 3) * (262 + 1)

// Nes is the whole emulated machine: CPU, PPU, Bus and cartridge held
// together, none of them owning a reference back to Nes itself. Every
// CPU operation takes the memory it needs as an explicit cpu.Memory
// parameter; the PPU and Bus are handed their cartridge (and the Bus its
// PPU) once, at construction. Nes's only job is to hold them and drive
// the frame loop.
type Nes struct {
	CPU  cpu.CPU
	PPU  *ppu.PPU
	Bus  *bus.Bus
	Cart *cartridge.NROM
}

// New builds a console from a parsed ROM image and resets it.
func New(img *rom.Image) *Nes {
	cart := cartridge.New(img)
	p := ppu.New(cart, cart.Mirroring())
	b := bus.New(p, cart)

	n := &Nes{PPU: p, Bus: b, Cart: cart}
	n.Reset()
	return n
}

// Reset restores CPU and PPU to their power-up state.
func (n *Nes) Reset() {
	n.CPU.Reset(n.Bus)
	n.PPU.Reset()
}

// SetControllerState latches controller i's (0 or 1) button byte for
// the frame about to run. Bit layout high to low: A, B, Select, Start,
// Up, Down, Left, Right.
func (n *Nes) SetControllerState(i int, buttons uint8) {
	n.Bus.Controllers[i&1].SetState(buttons)
}

// Framebuffer returns the PPU's 256x240 RGB output for the frame just
// completed.
func (n *Nes) Framebuffer() *[256 * 240 * 3]uint8 {
	return &n.PPU.Framebuffer
}

// StepFrame runs exactly CyclesPerFrame outer cycles, per spec.md §4.4:
// tick the PPU every outer cycle, step either the OAM DMA engine or the
// CPU every third cycle, and deliver any NMI the PPU raised before the
// next outer cycle begins.
//
// A BusMapError surfaces here as a panic from deep inside CPU execution
// (mirroring the teacher's own "should never happen" panic on an
// unmapped bus address); StepFrame recovers any panic value that is an
// error and returns it as an ordinary error, since it is a fatal,
// deterministic bug rather than a condition worth a stack trace dump.
func (n *Nes) StepFrame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	for i := 0; i < CyclesPerFrame; i++ {
		n.PPU.Tick()

		if i%3 == 0 {
			if n.Bus.DMAActive() {
				n.Bus.StepDMA(i % 2)
			} else if cerr := n.CPU.Tick(n.Bus); cerr != nil {
				return cerr
			}
		}

		if n.PPU.NMIPending() {
			n.PPU.AckNMI()
			n.CPU.NMI(n.Bus)
		}
	}
	return nil
}

// State is an in-memory save state: a snapshot of the CPU registers,
// the PPU's State, RAM and controller latches. It does not hold the OAM
// DMA engine's progress or the cartridge's PRG/CHR contents. There is
// no on-disk format; persistence is the host's problem if it wants
// one (spec.md's Non-goals exclude battery-backed save states).
type State struct {
	CPU         cpu.CPU
	PPU         ppu.State
	RAM         [2048]uint8
	Controllers [2]bus.Controller
}

// Snapshot captures the console's full state.
func (n *Nes) Snapshot() State {
	return State{
		CPU:         n.CPU,
		PPU:         n.PPU.Snapshot(),
		RAM:         n.Bus.RAM,
		Controllers: n.Bus.Controllers,
	}
}

// Restore puts the console back into a previously captured state.
func (n *Nes) Restore(s State) {
	n.CPU = s.CPU
	n.PPU.Restore(s.PPU)
	n.Bus.RAM = s.RAM
	n.Bus.Controllers = s.Controllers
}

// String renders a one-line status report, useful from the debug REPL.
func (n *Nes) String() string {
	return fmt.Sprintf("cpu: %s", n.CPU.String())
}
