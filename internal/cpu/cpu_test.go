package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelnes/nescore/internal/neserr"
)

// flatMemory is a 64KiB byte array satisfying Memory, used to drive the
// interpreter in isolation from bus.Bus.
type flatMemory [65536]uint8

func (m *flatMemory) Read(addr uint16) uint8      { return m[addr] }
func (m *flatMemory) Write(addr uint16, val uint8) { m[addr] = val }

func (m *flatMemory) loadAt(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m[int(addr)+i] = b
	}
}

func TestResetVector(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(VectorReset, 0x34, 0x12)

	var c CPU
	c.Reset(mem)

	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.Equal(t, uint8(0x34), c.Flags)
	assert.Equal(t, int32(7), c.Cycles)
}

func TestLDAImmediateTiming(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(0x8000, 0xA9, 0x42, 0x00)

	c := CPU{PC: 0x8000, SP: 0xFD}

	// First tick decodes and executes LDA #$42; Cycles then owes one
	// more tick before the next instruction may start.
	require.NoError(t, c.Tick(mem))
	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.False(t, c.Flags&FlagZero != 0)
	assert.False(t, c.Flags&FlagNegative != 0)
	assert.Equal(t, int32(1), c.Cycles)

	require.NoError(t, c.Tick(mem))
	assert.Equal(t, int32(0), c.Cycles)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(0x8000, 0x6C, 0xFF, 0x02)
	mem[0x02FF] = 0x34
	mem[0x0200] = 0x12
	mem[0x0300] = 0xAA

	c := CPU{PC: 0x8000, SP: 0xFD}
	require.NoError(t, c.Tick(mem))

	assert.Equal(t, uint16(0x1234), c.PC, "high byte must be fetched from 0x0200, not 0x0300")
}

func TestNMIEntrySequence(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(VectorNMI, 0x00, 0x90)

	c := CPU{PC: 0x8123, SP: 0xFD, Flags: FlagCarry | FlagZero}
	priorFlags := c.Flags

	c.NMI(mem)

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.Flags&FlagIntDisable != 0)

	// Stack grows down; top of stack holds, in push order, PC-high,
	// PC-low, then status with B clear and U set.
	sp := c.SP
	status := mem.Read(StackPage + uint16(sp) + 1)
	pcLo := mem.Read(StackPage + uint16(sp) + 2)
	pcHi := mem.Read(StackPage + uint16(sp) + 3)

	assert.Equal(t, uint8(0x23), pcLo)
	assert.Equal(t, uint8(0x81), pcHi)
	assert.Equal(t, (priorFlags&^FlagBreak)|FlagUnused, status)
}

func TestPushPopRoundTrip(t *testing.T) {
	mem := &flatMemory{}
	c := CPU{SP: 0xFD}

	c.push(mem, 0x77)
	got := c.pop(mem)

	assert.Equal(t, uint8(0x77), got)
	assert.Equal(t, uint8(0xFD), c.SP)
}

func TestPHPPLPPreservesFlagsExceptBAndU(t *testing.T) {
	mem := &flatMemory{}
	c := CPU{SP: 0xFD, Flags: FlagCarry | FlagNegative}

	_, err := opPHP(&c, mem, Implied, Operand{})
	require.NoError(t, err)

	c.Flags = 0 // perturb before restoring
	_, err = opPLP(&c, mem, Implied, Operand{})
	require.NoError(t, err)

	assert.True(t, c.Flags&FlagCarry != 0)
	assert.True(t, c.Flags&FlagNegative != 0)
	assert.True(t, c.Flags&FlagUnused != 0)
	assert.False(t, c.Flags&FlagBreak != 0)
}

func TestASLThenLSRRestoresLow7Bits(t *testing.T) {
	mem := &flatMemory{}
	mem[0x10] = 0xAB // 1010_1011

	c := CPU{}
	op := Operand{Addr: 0x10}

	_, err := opASL(&c, mem, ZeroPage, op)
	require.NoError(t, err)
	carryAfterASL := c.Flags & FlagCarry

	_, err = opLSR(&c, mem, ZeroPage, op)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xAB&0x7F), mem[0x10])
	assert.Equal(t, uint8(FlagCarry), carryAfterASL, "original bit 7 was set")
}

func TestSBCIsAdcOfOnesComplement(t *testing.T) {
	for b := 0; b < 256; b++ {
		v := uint8(b)
		assert.Equal(t, v, v^0xFF^0xFF)
	}
}

func TestUnreachableOpcodeIsDecodeAnomaly(t *testing.T) {
	mem := &flatMemory{}
	mem.loadAt(0x8000, 0x02) // a hardware "kill" opcode

	c := CPU{PC: 0x8000}
	err := c.Tick(mem)

	require.Error(t, err)
	assert.ErrorIs(t, err, neserr.ErrDecodeAnomaly)
}

func TestUnofficialLAXLoadsBothAAndX(t *testing.T) {
	mem := &flatMemory{}
	mem[0x10] = 0x99

	c := CPU{}
	_, err := opLAX(&c, mem, ZeroPage, Operand{Addr: 0x10})
	require.NoError(t, err)

	assert.Equal(t, uint8(0x99), c.A)
	assert.Equal(t, uint8(0x99), c.X)
	assert.True(t, c.Flags&FlagNegative != 0)
}

func TestBranchTakenAcrossPageCostsTwoExtraCycles(t *testing.T) {
	mem := &flatMemory{}
	// BEQ -128 from 0x8000: next-instruction pc would be 0x8002, target
	// is 0x8002-128 = 0x7F82, crossing from page 0x80 into page 0x7F.
	mem.loadAt(0x8000, 0xF0, 0x80)

	c := CPU{PC: 0x8000, Flags: FlagZero}
	require.NoError(t, c.Tick(mem))

	// base cost 2 + taken(1) + page-cross(1) = 4 total ticks, first one
	// already spent decoding/executing.
	assert.Equal(t, int32(3), c.Cycles)
}
