// Package bus wires the CPU's view of memory together: 2 KiB of
// internal RAM, the PPU's register window, the two controller shift
// registers, the OAM DMA engine and the cartridge. Nothing here is
// aware of ebiten or any other host concern; Bus only implements
// cpu.Memory.
package bus

import (
	"github.com/kestrelnes/nescore/internal/neserr"
	"github.com/kestrelnes/nescore/internal/ppu"
)

// Cartridge is the subset of cartridge.NROM the bus needs for PRG
// access. PPU-side CHR access goes straight from ppu.PPU to the
// cartridge; the bus never touches CHR.
type Cartridge interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
}

const (
	ramMirrorMask uint16 = 0x07FF
	regPPUFirst   uint16 = 0x2000
	regPPULast    uint16 = 0x3FFF
	ioFirst       uint16 = 0x4000
	ioLast        uint16 = 0x401F
	oamDMA        uint16 = 0x4014
	ctrlPort1     uint16 = 0x4016
	ctrlPort2     uint16 = 0x4017
	prgFirst      uint16 = 0x8000
)

// Bus is the CPU's address space. The top-level console object holds
// it by pointer alongside the CPU and PPU it connects; the Bus in turn
// holds a pointer to the PPU for register access and OAM DMA, and
// nothing in it refers back to the console.
type Bus struct {
	PPU  *ppu.PPU
	Cart Cartridge
	RAM  [2048]uint8

	Controllers [2]Controller

	dma dmaEngine

	// Debug, when set, turns an otherwise-fatal unmapped read into a
	// side-effect-free zero instead of a neserr.BusMapError. Only a
	// debugger should ever set this.
	Debug bool
}

// New builds a Bus wired to the given PPU and cartridge. The PPU and
// cartridge must already exist; Bus never constructs them.
func New(p *ppu.PPU, cart Cartridge) *Bus {
	return &Bus{PPU: p, Cart: cart}
}

// Read implements the CPU's view of the address space (cpu.Memory).
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return b.RAM[addr&ramMirrorMask]
	case addr >= regPPUFirst && addr <= regPPULast:
		return b.PPU.ReadRegister(regPPUFirst + addr&7)
	case addr == ctrlPort1 || addr == ctrlPort2:
		return b.Controllers[addr&1].Read()
	case addr >= ioFirst && addr <= ioLast:
		return 0 // APU stub
	case addr >= prgFirst:
		return b.Cart.PrgRead(addr)
	default:
		if b.Debug {
			return 0
		}
		panic(&neserr.BusMapError{Addr: addr})
	}
}

// Write implements the CPU's view of the address space (cpu.Memory).
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= 0x1FFF:
		b.RAM[addr&ramMirrorMask] = val
	case addr >= regPPUFirst && addr <= regPPULast:
		b.PPU.WriteRegister(regPPUFirst+addr&7, val)
	case addr == oamDMA:
		b.dma.start(val)
	case addr == ctrlPort1 || addr == ctrlPort2:
		b.Controllers[addr&1].Latch(val)
	case addr >= ioFirst && addr <= ioLast:
		// APU stub: accepted, has no effect.
	case addr >= prgFirst:
		b.Cart.PrgWrite(addr, val)
	default:
		if !b.Debug {
			panic(&neserr.BusMapError{Addr: addr})
		}
	}
}

// DMAActive reports whether the OAM DMA engine currently owns the CPU
// slot. The frame driver checks this before deciding whether to step
// the CPU or the DMA engine on a given CPU-rate tick.
func (b *Bus) DMAActive() bool { return b.dma.active }

// StepDMA advances the OAM DMA engine by one CPU-rate slot. slotParity
// is the frame driver's running `i mod 2`, which picks the read phase
// (even) from the write phase (odd), matching spec.md §4.1/§4.4.
func (b *Bus) StepDMA(slotParity int) {
	b.dma.step(b, slotParity)
}
