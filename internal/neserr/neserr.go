// Package neserr holds the error taxonomy shared by cpu, ppu, bus, rom
// and console. Every fatal condition in the emulator core is one of
// these; there is no retry path, so callers are expected to propagate
// them straight to the top rather than recover and continue.
package neserr

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

var (
	// ErrRomFormat indicates an unrecognised magic, unsupported
	// mapper, or truncated file at load time.
	ErrRomFormat = errors.New("rom format error")

	// ErrBusMap indicates a CPU access to an address the bus cannot
	// decode outside of debugger-annotated reads.
	ErrBusMap = errors.New("bus map error")

	// ErrPpuMap indicates an internal PPU access to an address the
	// PPU's own address space switch does not cover. Always a core
	// bug; there is no such thing as an unmapped PPU address once
	// masked to 14 bits.
	ErrPpuMap = errors.New("ppu map error")

	// ErrDecodeAnomaly indicates execution reached an opcode slot
	// marked unreachable ("???") in the decode table.
	ErrDecodeAnomaly = errors.New("decode anomaly")
)

// RegisterSnapshot is the subset of CPU state worth reporting when
// execution halts. It intentionally mirrors the fields named in
// spec.md's DATA MODEL rather than embedding the live cpu.CPU type, so
// that neserr never needs to import cpu (which would create a cycle:
// cpu returns HaltError, so neserr can't depend on cpu).
type RegisterSnapshot struct {
	PC     uint16
	SP     uint8
	A, X, Y uint8
	Flags  uint8
	Cycles int32
}

// HaltError is returned by cpu.CPU.Tick when a BRK instruction executes.
// Per spec.md §7, this emulator variant treats BRK as "stop and report"
// rather than vectoring through 0xFFFE.
type HaltError struct {
	Registers RegisterSnapshot
}

func (h *HaltError) Error() string {
	return fmt.Sprintf("halted on BRK: %s", spew.Sdump(h.Registers))
}

// DecodeError wraps ErrDecodeAnomaly with the offending opcode and
// address, so a caller printing the error sees exactly what went wrong
// without needing to inspect CPU state separately.
type DecodeError struct {
	PC     uint16
	Opcode uint8
}

func (d *DecodeError) Error() string {
	return fmt.Sprintf("%s: pc=0x%04x opcode=0x%02x", ErrDecodeAnomaly, d.PC, d.Opcode)
}

func (d *DecodeError) Unwrap() error {
	return ErrDecodeAnomaly
}

// BusMapError wraps ErrBusMap with the offending address.
type BusMapError struct {
	Addr uint16
}

func (b *BusMapError) Error() string {
	return fmt.Sprintf("%s: addr=0x%04x", ErrBusMap, b.Addr)
}

func (b *BusMapError) Unwrap() error {
	return ErrBusMap
}

// PpuMapError wraps ErrPpuMap with the offending address.
type PpuMapError struct {
	Addr uint16
}

func (p *PpuMapError) Error() string {
	return fmt.Sprintf("%s: addr=0x%04x", ErrPpuMap, p.Addr)
}

func (p *PpuMapError) Unwrap() error {
	return ErrPpuMap
}
