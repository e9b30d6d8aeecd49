package runtime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerEndiannessInvolution(t *testing.T) {
	w := NewStreamForWriting()
	require.NoError(t, w.WriteU2be(0x1234))
	require.NoError(t, w.WriteU2le(0x1234))
	require.NoError(t, w.WriteS2be(-2))
	require.NoError(t, w.WriteS2le(-2))
	require.NoError(t, w.WriteU4be(0xDEADBEEF))
	require.NoError(t, w.WriteU4le(0xDEADBEEF))
	require.NoError(t, w.WriteS4be(-100000))
	require.NoError(t, w.WriteS4le(-100000))
	require.NoError(t, w.WriteU8be(0x0102030405060708))
	require.NoError(t, w.WriteU8le(0x0102030405060708))
	require.NoError(t, w.WriteS8be(-1))
	require.NoError(t, w.WriteS8le(-1))
	require.NoError(t, w.WriteU1(0xAB))
	require.NoError(t, w.WriteS1(-5))

	r := NewStreamFromBytes(w.ToByteArray())

	u2be, err := r.ReadU2be()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u2be)

	u2le, err := r.ReadU2le()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u2le)

	s2be, err := r.ReadS2be()
	require.NoError(t, err)
	require.Equal(t, int16(-2), s2be)

	s2le, err := r.ReadS2le()
	require.NoError(t, err)
	require.Equal(t, int16(-2), s2le)

	u4be, err := r.ReadU4be()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u4be)

	u4le, err := r.ReadU4le()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u4le)

	s4be, err := r.ReadS4be()
	require.NoError(t, err)
	require.Equal(t, int32(-100000), s4be)

	s4le, err := r.ReadS4le()
	require.NoError(t, err)
	require.Equal(t, int32(-100000), s4le)

	u8be, err := r.ReadU8be()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u8be)

	u8le, err := r.ReadU8le()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u8le)

	s8be, err := r.ReadS8be()
	require.NoError(t, err)
	require.Equal(t, int64(-1), s8be)

	s8le, err := r.ReadS8le()
	require.NoError(t, err)
	require.Equal(t, int64(-1), s8le)

	u1, err := r.ReadU1()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u1)

	s1, err := r.ReadS1()
	require.NoError(t, err)
	require.Equal(t, int8(-5), s1)

	require.True(t, r.IsEof())
}

func TestFloatEndiannessInvolution(t *testing.T) {
	w := NewStreamForWriting()
	require.NoError(t, w.WriteF4be(3.14))
	require.NoError(t, w.WriteF4le(3.14))
	require.NoError(t, w.WriteF8be(math.Pi))
	require.NoError(t, w.WriteF8le(math.Pi))

	r := NewStreamFromBytes(w.ToByteArray())

	f4be, err := r.ReadF4be()
	require.NoError(t, err)
	require.Equal(t, float32(3.14), f4be)

	f4le, err := r.ReadF4le()
	require.NoError(t, err)
	require.Equal(t, float32(3.14), f4le)

	f8be, err := r.ReadF8be()
	require.NoError(t, err)
	require.Equal(t, math.Pi, f8be)

	f8le, err := r.ReadF8le()
	require.NoError(t, err)
	require.Equal(t, math.Pi, f8le)
}

func TestReadUnexpectedEOF(t *testing.T) {
	r := NewStreamFromBytes([]byte{0x01})
	_, err := r.ReadU4be()
	require.Error(t, err)
	var eof *UnexpectedEOFError
	require.ErrorAs(t, err, &eof)
}

func TestPrimitivesByteAlignFirst(t *testing.T) {
	w := NewStreamForWriting()
	require.NoError(t, w.WriteBitsBe(3, 0b111))
	require.NoError(t, w.WriteU1(0xAA)) // should align, flushing the incomplete byte as 0b11100000
	bytes := w.ToByteArray()
	require.Equal(t, []byte{0b11100000, 0xAA}, bytes)

	r := NewStreamFromBytes(bytes)
	_, err := r.ReadBitsBe(3)
	require.NoError(t, err)
	v, err := r.ReadU1() // should align, skipping the remaining 5 residual bits
	require.NoError(t, err)
	require.Equal(t, uint8(0xAA), v)
}
