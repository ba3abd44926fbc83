// Package cpu implements the 6502-family interpreter used by the NES's
// 2A03 (decimal mode is decoded but never honored in arithmetic, exactly
// as on real hardware).
package cpu

import (
	"fmt"
	"strings"

	"github.com/kestrelnes/nescore/internal/neserr"
)

// Memory is the subset of bus.Bus the interpreter needs. Addressing
// modes and instruction bodies see only this interface, never the
// concrete bus type, so the interpreter can be driven in isolation by a
// test double.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Processor status flags. https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagIntDisable uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// Interrupt vectors. https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	VectorNMI   uint16 = 0xFFFA
	VectorReset uint16 = 0xFFFC
	VectorIRQ   uint16 = 0xFFFE // unused: no IRQ source exists in this module
)

const StackPage uint16 = 0x0100

// ResetFlags is the power-up/reset value of the status register:
// IntDisable, Break and Unused set.
const ResetFlags = FlagIntDisable | FlagBreak | FlagUnused

// CPU is the full register state of one 6502. It is held by value
// inside the top-level console object; every method that needs to touch
// memory takes a Memory parameter rather than owning one, so CPU, PPU
// and Bus never form a reference cycle.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	Flags   uint8

	// Cycles is the countdown of cycles still owed by the
	// instruction currently executing. The frame driver calls Tick
	// once per CPU slot; while Cycles > 0 it only decrements.
	Cycles int32
}

// Reset seeds PC from the reset vector and restores the power-up
// register state. Matches end-to-end scenario 1 of spec.md §8.
func (c *CPU) Reset(mem Memory) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Flags = ResetFlags
	c.PC = readWord(mem, VectorReset)
	c.Cycles = 7
}

// Tick advances the CPU by one CPU-rate sub-cycle. It either burns one
// cycle owed by an in-flight instruction, or, once the debt reaches
// zero, decodes and executes the next instruction (refilling Cycles).
func (c *CPU) Tick(mem Memory) error {
	if c.Cycles > 0 {
		c.Cycles--
		return nil
	}
	return c.execute(mem)
}

// NMI services a non-maskable interrupt between instructions. It is
// never inhibited by FlagIntDisable, which gates IRQ only (and IRQ is
// not emulated in this module).
func (c *CPU) NMI(mem Memory) {
	pushWord(mem, &c.SP, c.PC)
	pushByte(mem, &c.SP, (c.Flags&^FlagBreak)|FlagUnused)
	c.Flags |= FlagIntDisable
	c.PC = readWord(mem, VectorNMI)
	c.Cycles = 8
}

func (c *CPU) execute(mem Memory) error {
	opcodeByte := mem.Read(c.PC)
	inst := decodeTable[opcodeByte]
	if inst.Exec == nil {
		return &neserr.DecodeError{PC: c.PC, Opcode: opcodeByte}
	}

	c.PC++
	startPC := c.PC
	operand := c.resolveOperand(mem, inst.Mode)

	extra, err := inst.Exec(c, mem, inst.Mode, operand)
	if err != nil {
		return err
	}

	cost := int32(inst.Cycles) + int32(extra)
	if inst.PageBonus && operand.PageCrossed {
		cost++
	}

	if c.PC == startPC {
		c.PC += uint16(inst.Bytes) - 1
	}

	// The tick that decoded and ran this instruction counts as the
	// first of its cost; the remainder is paid off on later ticks.
	c.Cycles = cost - 1
	return nil
}

func (c *CPU) setFlag(mask uint8, cond bool) {
	if cond {
		c.Flags |= mask
	} else {
		c.Flags &^= mask
	}
}

func (c *CPU) setZN(v uint8) {
	if v == 0 {
		c.Flags |= FlagZero
	} else {
		c.Flags &^= FlagZero
	}
	if v&0x80 != 0 {
		c.Flags |= FlagNegative
	} else {
		c.Flags &^= FlagNegative
	}
}

func (c *CPU) stackAddr() uint16 {
	return StackPage + uint16(c.SP)
}

func pushByte(mem Memory, sp *uint8, val uint8) {
	mem.Write(StackPage+uint16(*sp), val)
	*sp--
}

func popByte(mem Memory, sp *uint8) uint8 {
	*sp++
	return mem.Read(StackPage + uint16(*sp))
}

func pushWord(mem Memory, sp *uint8, val uint16) {
	pushByte(mem, sp, uint8(val>>8))
	pushByte(mem, sp, uint8(val&0xFF))
}

func popWord(mem Memory, sp *uint8) uint16 {
	lo := uint16(popByte(mem, sp))
	hi := uint16(popByte(mem, sp))
	return hi<<8 | lo
}

func (c *CPU) push(mem Memory, val uint8)  { pushByte(mem, &c.SP, val) }
func (c *CPU) pop(mem Memory) uint8        { return popByte(mem, &c.SP) }
func (c *CPU) pushW(mem Memory, val uint16) { pushWord(mem, &c.SP, val) }
func (c *CPU) popW(mem Memory) uint16       { return popWord(mem, &c.SP) }

// readWord reads a little-endian 16-bit value using ordinary 16-bit
// address wrapping.
func readWord(mem Memory, addr uint16) uint16 {
	lo := uint16(mem.Read(addr))
	hi := uint16(mem.Read(addr + 1))
	return hi<<8 | lo
}

// readWordZeroPage reads a little-endian 16-bit value where both bytes
// are fetched with 8-bit arithmetic, so the high-byte fetch wraps
// within the zero page. Used by the indexed-indirect addressing modes.
func readWordZeroPage(mem Memory, addr8 uint8) uint16 {
	lo := uint16(mem.Read(uint16(addr8)))
	hi := uint16(mem.Read(uint16(addr8 + 1)))
	return hi<<8 | lo
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

var flagGlyph = map[uint8]byte{
	FlagNegative:   'N',
	FlagOverflow:   'V',
	FlagUnused:     '-',
	FlagBreak:      'B',
	FlagDecimal:    'D',
	FlagIntDisable: 'I',
	FlagZero:       'Z',
	FlagCarry:      'C',
}

func (c *CPU) statusString() string {
	var sb strings.Builder
	for _, f := range []uint8{FlagNegative, FlagOverflow, FlagUnused, FlagBreak, FlagDecimal, FlagIntDisable, FlagZero, FlagCarry} {
		if c.Flags&f != 0 {
			sb.WriteByte(flagGlyph[f])
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func (c *CPU) String() string {
	return fmt.Sprintf("A,X,Y: %3d,%3d,%3d PC: 0x%04x SP: 0x%02x P: %s cycles: %d",
		c.A, c.X, c.Y, c.PC, c.SP, c.statusString(), c.Cycles)
}
