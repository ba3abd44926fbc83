package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelnes/nescore/internal/ppu"
)

type fakeCartridge struct {
	prg [32768]uint8
}

func (f *fakeCartridge) PrgRead(addr uint16) uint8      { return f.prg[addr-0x8000] }
func (f *fakeCartridge) PrgWrite(addr uint16, val uint8) { f.prg[addr-0x8000] = val }

type fakeChr struct {
	chr [8192]uint8
}

func (f *fakeChr) ChrRead(addr uint16) uint8      { return f.chr[addr%8192] }
func (f *fakeChr) ChrWrite(addr uint16, val uint8) { f.chr[addr%8192] = val }

func newTestBus() *Bus {
	p := ppu.New(&fakeChr{}, ppu.MirrorVertical)
	return New(p, &fakeCartridge{})
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x0000, 0x42)

	assert.Equal(t, uint8(0x42), b.Read(0x0800))
	assert.Equal(t, uint8(0x42), b.Read(0x1000))
	assert.Equal(t, uint8(0x42), b.Read(0x1800))
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x2000, ppu.CtrlGenerateNMI)

	// PPUCTRL is write-only from the CPU side, so observe it via Snapshot.
	assert.Equal(t, ppu.CtrlGenerateNMI, b.PPU.Snapshot().Ctrl)
	// 0x2008 mirrors 0x2000; writing there hits PPUCTRL again.
	b.Write(0x2008, 0)
	assert.Equal(t, uint8(0), b.PPU.Snapshot().Ctrl)
}

func TestControllerShiftsOutMSBFirst(t *testing.T) {
	b := newTestBus()
	b.Controllers[0].SetState(0b1011_0001)

	b.Write(0x4016, 1)
	b.Write(0x4016, 0)

	var got uint8
	for i := 0; i < 8; i++ {
		got = got<<1 | b.Read(0x4016)
	}
	assert.Equal(t, uint8(0b1011_0001), got)
}

func TestOAMDMAEndToEnd(t *testing.T) {
	b := newTestBus()
	for i := 0; i < 256; i++ {
		b.RAM[0x0700+i] = uint8(i)
	}

	b.Write(0x4014, 0x07)
	require.True(t, b.DMAActive())

	slot := 0
	for i := 0; i < 520 && b.DMAActive(); i++ {
		b.StepDMA(slot)
		slot = 1 - slot
	}

	require.False(t, b.DMAActive())
	for i := 0; i < 256; i++ {
		assert.Equal(t, uint8(i), b.PPU.Snapshot().OAM[i])
	}
}

func TestOAMDMAIgnoresOAMADDR(t *testing.T) {
	b := newTestBus()
	for i := 0; i < 256; i++ {
		b.RAM[0x0700+i] = uint8(i)
	}
	b.PPU.WriteRegister(0x2003, 0x40) // OAMADDR left non-zero by the game

	b.Write(0x4014, 0x07)
	slot := 0
	for i := 0; i < 520 && b.DMAActive(); i++ {
		b.StepDMA(slot)
		slot = 1 - slot
	}

	snap := b.PPU.Snapshot()
	for i := 0; i < 256; i++ {
		assert.Equal(t, uint8(i), snap.OAM[i], "DMA always fills the whole page starting at 0, regardless of OAMADDR")
	}
}

func TestPrgWriteReachesCartridgeThroughBus(t *testing.T) {
	b := newTestBus()
	b.Write(0x8000, 0x99)
	assert.Equal(t, uint8(0x99), b.Read(0x8000))
}
