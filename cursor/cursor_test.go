package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracekit/fdr/endian"
	"github.com/tracekit/fdr/errs"
)

func TestCursor_FixedWidthReads(t *testing.T) {
	data := []byte{
		0xAB,                   // u8
		0x34, 0x12,             // u16
		0x78, 0x56, 0x34, 0x12, // u32
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01, // u64
		0xFF, 0xFF, 0xFF, 0xFF, // i32 = -1
	}
	cur := New(data)

	b, err := cur.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), b)
	require.Equal(t, 1, cur.Offset())

	v16, err := cur.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v16)
	require.Equal(t, 3, cur.Offset())

	v32, err := cur.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), v32)
	require.Equal(t, 7, cur.Offset())

	v64, err := cur.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123456789ABCDEF), v64)
	require.Equal(t, 15, cur.Offset())

	i32, err := cur.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), i32)
	require.Equal(t, 19, cur.Offset())
	require.Equal(t, 0, cur.Remaining())
}

func TestCursor_TruncationLeavesOffsetUnchanged(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		cur := New(nil)

		_, err := cur.Uint8()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
		require.Equal(t, 0, cur.Offset())
	})

	t.Run("short read mid-buffer", func(t *testing.T) {
		cur := New([]byte{0x01, 0x02, 0x03})

		v, err := cur.Uint16()
		require.NoError(t, err)
		require.Equal(t, uint16(0x0201), v)

		// Only one byte remains; a u32 must fail without advancing.
		_, err = cur.Uint32()
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
		require.Equal(t, 2, cur.Offset())

		// The remaining byte is still readable afterwards.
		b, err := cur.Uint8()
		require.NoError(t, err)
		require.Equal(t, uint8(0x03), b)
	})

	t.Run("bytes and skip", func(t *testing.T) {
		cur := New([]byte{0x01, 0x02})

		_, err := cur.Bytes(3)
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
		require.Equal(t, 0, cur.Offset())

		err = cur.Skip(3)
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
		require.Equal(t, 0, cur.Offset())

		require.NoError(t, cur.Skip(2))
		require.Equal(t, 0, cur.Remaining())
	})
}

func TestCursor_BytesDoesNotAliasBuffer(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	cur := New(data)

	buf, err := cur.Bytes(4)
	require.NoError(t, err)
	require.Equal(t, data, buf)

	buf[0] = 0xFF
	require.Equal(t, uint8(0x01), data[0])
}

func TestCursor_BigEndianEngine(t *testing.T) {
	cur := NewWithEngine([]byte{0x12, 0x34}, endian.GetBigEndianEngine())

	v, err := cur.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)
}

func TestCursor_NegativeCounts(t *testing.T) {
	cur := New([]byte{0x01})

	_, err := cur.Bytes(-1)
	require.ErrorIs(t, err, errs.ErrInternalInvariant)

	err = cur.Skip(-1)
	require.ErrorIs(t, err, errs.ErrInternalInvariant)
	require.Equal(t, 0, cur.Offset())
}
