// Package rom parses iNES ROM images into the raw PRG/CHR banks and
// header metadata internal/cartridge needs to build a mapper. ROM file
// parsing sits outside the emulator core proper (spec.md §1's scope
// line), but the core cannot run without it.
package rom

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kestrelnes/nescore/internal/neserr"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
	trainerSize = 512
	headerSize  = 16
)

var magic = []byte{'N', 'E', 'S', 0x1A}

// Mirroring is the nametable mirroring mode declared in the iNES
// header. It is translated to ppu.Mirroring by internal/cartridge,
// keeping this package free of a ppu import.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

// Image is a fully parsed iNES ROM: the raw PRG/CHR banks and the
// metadata a mapper needs to interpret them.
type Image struct {
	Mapper    uint16
	Mirroring Mirroring
	HasSRAM   bool
	PRG       []uint8
	CHR       []uint8 // empty when the cartridge uses CHR RAM instead
}

// Load reads and parses an iNES file from disk.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rom: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one iNES image from r. Only mapper 0 (NROM) is supported;
// anything else is reported as neserr.ErrRomFormat, matching this
// module's cartridge scope.
func Parse(r io.Reader) (*Image, error) {
	header := make([]uint8, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("rom: reading header: %w: %w", neserr.ErrRomFormat, err)
	}
	if !bytes.Equal(header[:4], magic) {
		return nil, fmt.Errorf("rom: bad magic %x: %w", header[:4], neserr.ErrRomFormat)
	}

	prgBanks := int(header[4])
	chrBanks := int(header[5])
	flags6 := header[6]
	flags7 := header[7]

	mapperNum := uint16(flags6>>4) | uint16(flags7&0xF0)
	if mapperNum != 0 {
		return nil, fmt.Errorf("rom: mapper %d unsupported (NROM only): %w", mapperNum, neserr.ErrRomFormat)
	}

	if flags6&0x04 != 0 {
		trainer := make([]uint8, trainerSize)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, fmt.Errorf("rom: reading trainer: %w: %w", neserr.ErrRomFormat, err)
		}
	}

	mirroring := MirrorHorizontal
	switch {
	case flags6&0x08 != 0:
		mirroring = MirrorFourScreen
	case flags6&0x01 != 0:
		mirroring = MirrorVertical
	}

	prg := make([]uint8, prgBanks*prgBankSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("rom: reading %d PRG bank(s): %w: %w", prgBanks, neserr.ErrRomFormat, err)
	}

	var chr []uint8
	if chrBanks > 0 {
		chr = make([]uint8, chrBanks*chrBankSize)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("rom: reading %d CHR bank(s): %w: %w", chrBanks, neserr.ErrRomFormat, err)
		}
	}

	return &Image{
		Mapper:    mapperNum,
		Mirroring: mirroring,
		HasSRAM:   flags6&0x02 != 0,
		PRG:       prg,
		CHR:       chr,
	}, nil
}
