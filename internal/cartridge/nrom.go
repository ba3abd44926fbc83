// Package cartridge implements mapper 0 (NROM), the only mapper this
// module supports (spec.md scopes every other mapper out).
package cartridge

import (
	"github.com/kestrelnes/nescore/internal/ppu"
	"github.com/kestrelnes/nescore/internal/rom"
)

// NROM is the simplest NES cartridge: 16 or 32 KiB of PRG-ROM mapped
// straight into $8000-$FFFF (16 KiB images mirror across both halves),
// and 8 KiB of CHR-ROM or CHR-RAM.
type NROM struct {
	prg      []uint8
	chr      []uint8
	mirror   ppu.Mirroring
	chrIsRAM bool
}

// New builds an NROM cartridge from a parsed ROM image.
func New(img *rom.Image) *NROM {
	chr := img.CHR
	chrIsRAM := len(chr) == 0
	if chrIsRAM {
		chr = make([]uint8, 8192)
	}

	return &NROM{
		prg:      img.PRG,
		chr:      chr,
		mirror:   translateMirroring(img.Mirroring),
		chrIsRAM: chrIsRAM,
	}
}

func translateMirroring(m rom.Mirroring) ppu.Mirroring {
	switch m {
	case rom.MirrorVertical:
		return ppu.MirrorVertical
	case rom.MirrorFourScreen:
		return ppu.MirrorFourScreen
	default:
		return ppu.MirrorHorizontal
	}
}

// Mirroring reports the nametable mirroring declared by the cartridge.
func (n *NROM) Mirroring() ppu.Mirroring { return n.mirror }

// PrgRead maps CPU addresses $8000-$FFFF onto the PRG bank(s),
// mirroring a single 16 KiB bank across both halves of the window.
func (n *NROM) PrgRead(addr uint16) uint8 {
	offset := int(addr-0x8000) % len(n.prg)
	return n.prg[offset]
}

// PrgWrite accepts writes to ROM space silently rather than discarding
// them or panicking (DESIGN.md Open Question 4): PRG is backed by an
// ordinary mutable slice, so a write simply lands in it. Real NROM
// boards have no bus conflict logic to emulate here.
func (n *NROM) PrgWrite(addr uint16, val uint8) {
	offset := int(addr-0x8000) % len(n.prg)
	n.prg[offset] = val
}

// ChrRead satisfies ppu.Cartridge.
func (n *NROM) ChrRead(addr uint16) uint8 {
	return n.chr[addr%uint16(len(n.chr))]
}

// ChrWrite satisfies ppu.Cartridge. CHR-ROM boards accept the write
// (and it is simply never read back differently, since nothing remaps
// CHR banks on NROM); CHR-RAM boards rely on it.
func (n *NROM) ChrWrite(addr uint16, val uint8) {
	n.chr[addr%uint16(len(n.chr))] = val
}
