package console

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelnes/nescore/internal/rom"
)

// buildNROM constructs a minimal 16 KiB-PRG, CHR-RAM NROM image whose
// PRG bank starts with prg, zero-padded to 16 KiB. The bank is mirrored
// across both 0x8000-0xBFFF and 0xC000-0xFFFF, so callers set the reset
// vector at offset 0x3FFC themselves.
func buildNROM(prg []uint8) *rom.Image {
	full := make([]uint8, 16384)
	copy(full, prg)
	return &rom.Image{PRG: full, Mirroring: rom.MirrorHorizontal}
}

func TestResetVectorScenario(t *testing.T) {
	prg := make([]uint8, 16384)
	prg[0x3FFC] = 0x00 // 0xBFFC within the 16 KiB bank -> reset vector low
	prg[0x3FFD] = 0x80
	img := buildNROM(prg)

	n := New(img)

	assert.Equal(t, uint16(0x8000), n.CPU.PC)
	assert.Equal(t, uint8(0xFD), n.CPU.SP)
	assert.Equal(t, int32(7), n.CPU.Cycles)
}

func TestLDAImmediateTimingScenario(t *testing.T) {
	prg := make([]uint8, 16384)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80 // reset vector -> 0x8000
	prg[0] = 0xA9                         // LDA #$42
	prg[1] = 0x42
	prg[2] = 0x00
	img := buildNROM(prg)

	n := New(img)

	// Reset leaves 7 cycles owed; pay them off before the first opcode fetch.
	for n.CPU.Cycles > 0 {
		require.NoError(t, n.CPU.Tick(n.Bus))
	}

	require.NoError(t, n.CPU.Tick(n.Bus))
	require.NoError(t, n.CPU.Tick(n.Bus))

	assert.Equal(t, uint8(0x42), n.CPU.A)
	assert.Equal(t, uint16(0x8002), n.CPU.PC)
}

func TestOAMDMAEndToEndScenario(t *testing.T) {
	prg := make([]uint8, 16384)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	img := buildNROM(prg)
	n := New(img)

	for i := 0; i < 256; i++ {
		n.Bus.RAM[0x0700+i] = uint8(i)
	}
	n.Bus.Write(0x4014, 0x07)
	require.True(t, n.Bus.DMAActive())

	for i := 0; i < 520 && n.Bus.DMAActive(); i++ {
		n.Bus.StepDMA(i % 2)
	}

	require.False(t, n.Bus.DMAActive())
	snap := n.PPU.Snapshot()
	for i := 0; i < 256; i++ {
		assert.Equal(t, uint8(i), snap.OAM[i])
	}
}

func TestNMIDeliveryScenario(t *testing.T) {
	prg := make([]uint8, 16384)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	prg[0x3FFA], prg[0x3FFB] = 0x34, 0x12 // NMI vector -> 0x1234
	img := buildNROM(prg)
	n := New(img)

	n.PPU.WriteRegister(0x2000, 0x80) // CtrlGenerateNMI

	// One full PPU frame of dots (341 x 262) always passes scanline 241.
	for i := 0; i < 341*262 && !n.PPU.NMIPending(); i++ {
		n.PPU.Tick()
	}
	require.True(t, n.PPU.NMIPending())

	n.PPU.AckNMI()
	n.CPU.NMI(n.Bus)

	assert.Equal(t, uint16(0x1234), n.CPU.PC)
	assert.False(t, n.PPU.NMIPending(), "AckNMI must clear the flag before delivery")
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	prg := make([]uint8, 16384)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	img := buildNROM(prg)
	n := New(img)

	n.Bus.RAM[0x10] = 0x99
	n.CPU.A = 0x55

	snap := n.Snapshot()

	n.Bus.RAM[0x10] = 0x00
	n.CPU.A = 0x00

	n.Restore(snap)

	assert.Equal(t, uint8(0x99), n.Bus.RAM[0x10])
	assert.Equal(t, uint8(0x55), n.CPU.A)
	if diff := deep.Equal(snap, n.Snapshot()); diff != nil {
		t.Errorf("snapshot mismatch after restore: %v", diff)
	}
}
