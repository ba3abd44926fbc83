package rom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelnes/nescore/internal/neserr"
)

func buildImage(prgBanks, chrBanks int, flags6, flags7 uint8, prgFill uint8) []byte {
	var buf bytes.Buffer
	buf.Write(magic)
	buf.WriteByte(uint8(prgBanks))
	buf.WriteByte(uint8(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // reserved
	prg := bytes.Repeat([]byte{prgFill}, prgBanks*prgBankSize)
	buf.Write(prg)
	buf.Write(bytes.Repeat([]byte{0xCC}, chrBanks*chrBankSize))
	return buf.Bytes()
}

func TestParseNROMVertical(t *testing.T) {
	raw := buildImage(2, 1, 0x01, 0x00, 0x55)

	img, err := Parse(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, uint16(0), img.Mapper)
	assert.Equal(t, MirrorVertical, img.Mirroring)
	assert.Len(t, img.PRG, 2*prgBankSize)
	assert.Len(t, img.CHR, chrBankSize)
	assert.Equal(t, uint8(0x55), img.PRG[0])
}

func TestParseRejectsUnsupportedMapper(t *testing.T) {
	raw := buildImage(1, 1, 0x10, 0x00, 0x00) // mapper nibble in flags6 = 1

	_, err := Parse(bytes.NewReader(raw))

	require.Error(t, err)
	assert.True(t, errors.Is(err, neserr.ErrRomFormat))
}

func TestParseRejectsBadMagic(t *testing.T) {
	raw := buildImage(1, 1, 0x00, 0x00, 0x00)
	raw[0] = 'X'

	_, err := Parse(bytes.NewReader(raw))

	require.Error(t, err)
	assert.True(t, errors.Is(err, neserr.ErrRomFormat))
}

func TestParseSkipsTrainer(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic)
	buf.WriteByte(1)
	buf.WriteByte(0)
	buf.WriteByte(0x04) // trainer present
	buf.WriteByte(0x00)
	buf.Write(make([]byte, 8))
	buf.Write(bytes.Repeat([]byte{0xEE}, trainerSize))
	buf.Write(bytes.Repeat([]byte{0x99}, prgBankSize))

	img, err := Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, uint8(0x99), img.PRG[0])
}
