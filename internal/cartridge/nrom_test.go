package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelnes/nescore/internal/ppu"
	"github.com/kestrelnes/nescore/internal/rom"
)

func TestPrgMirroringFor16KiBImage(t *testing.T) {
	img := &rom.Image{PRG: make([]uint8, 16384), Mirroring: rom.MirrorVertical}
	img.PRG[0] = 0x42

	n := New(img)

	assert.Equal(t, uint8(0x42), n.PrgRead(0x8000))
	assert.Equal(t, uint8(0x42), n.PrgRead(0xC000), "a 16 KiB image mirrors into the upper half of the window")
}

func TestChrRAMFallbackWhenImageHasNoCHR(t *testing.T) {
	img := &rom.Image{PRG: make([]uint8, 16384)}
	n := New(img)

	n.ChrWrite(0x0010, 0x99)
	assert.Equal(t, uint8(0x99), n.ChrRead(0x0010))
}

func TestMirroringTranslation(t *testing.T) {
	img := &rom.Image{PRG: make([]uint8, 16384), Mirroring: rom.MirrorFourScreen}
	n := New(img)
	assert.Equal(t, ppu.MirrorFourScreen, n.Mirroring())
}
