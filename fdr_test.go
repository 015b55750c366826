package fdr

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracekit/fdr/compress"
	"github.com/tracekit/fdr/errs"
	"github.com/tracekit/fdr/format"
	"github.com/tracekit/fdr/record"
)

// logBuilder assembles synthetic trace logs for tests.
type logBuilder struct {
	buf []byte
}

func newLog(version format.Version) *logBuilder {
	b := &logBuilder{}
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(version))
	b.buf = binary.LittleEndian.AppendUint16(b.buf, 1)          // type
	b.buf = binary.LittleEndian.AppendUint32(b.buf, 0x03)       // constant + nonstop tsc
	b.buf = binary.LittleEndian.AppendUint64(b.buf, 2600000000) // cycle frequency
	b.buf = append(b.buf, make([]byte, 16)...)                  // free form data

	return b
}

func (b *logBuilder) metadata(kind format.RecordKind, fields []byte) *logBuilder {
	body := make([]byte, record.MetadataBodySize)
	copy(body, fields)
	b.buf = append(b.buf, byte(kind)<<1|0x01)
	b.buf = append(b.buf, body...)

	return b
}

func (b *logBuilder) function(typ format.FunctionType, funcID int32, delta uint32) *logBuilder {
	word := uint32(typ)<<1 | uint32(funcID)<<4
	b.buf = binary.LittleEndian.AppendUint32(b.buf, word)
	b.buf = binary.LittleEndian.AppendUint32(b.buf, delta)

	return b
}

func (b *logBuilder) bytes() []byte {
	return b.buf
}

// sampleLog builds a version 3 log with one buffer of records.
func sampleLog() []byte {
	return newLog(3).
		metadata(format.KindNewBuffer, binary.LittleEndian.AppendUint32(nil, 1)).
		metadata(format.KindBufferExtents, binary.LittleEndian.AppendUint64(nil, 48)).
		metadata(format.KindNewCPUID, append(binary.LittleEndian.AppendUint16(nil, 2),
			binary.LittleEndian.AppendUint64(nil, 1000)...)).
		function(format.FunctionEnter, 7, 5).
		function(format.FunctionExit, 7, 9).
		bytes()
}

func TestParseFileHeader(t *testing.T) {
	reader, err := NewLogReader(sampleLog())
	require.NoError(t, err)

	h := reader.Header()
	require.Equal(t, format.Version(3), h.Version)
	require.Equal(t, uint16(1), h.Type)
	require.True(t, h.ConstantTSC)
	require.True(t, h.NonstopTSC)
	require.Equal(t, uint64(2600000000), h.CycleFrequency)
	require.Equal(t, [16]byte{}, h.FreeFormData)
}

func TestNewLogReader_ShortHeader(t *testing.T) {
	_, err := NewLogReader(make([]byte, HeaderSize-1))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestNewLogReader_UnsupportedVersion(t *testing.T) {
	for _, v := range []format.Version{0, 6, 100} {
		_, err := NewLogReader(newLog(v).bytes())
		require.Error(t, err, "version %d", v)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	}
}

func TestLogReader_ReadsAllRecords(t *testing.T) {
	reader, err := NewLogReader(sampleLog())
	require.NoError(t, err)

	var kinds []format.RecordKind
	for reader.More() {
		rec, err := reader.Read()
		require.NoError(t, err)
		kinds = append(kinds, rec.Kind())
	}

	require.Equal(t, []format.RecordKind{
		format.KindNewBuffer,
		format.KindBufferExtents,
		format.KindNewCPUID,
		format.KindFunction,
		format.KindFunction,
	}, kinds)
	require.NoError(t, reader.Err())
	require.Equal(t, 5, reader.Count())
	require.False(t, reader.More())
}

func TestLogReader_StickyError(t *testing.T) {
	// Truncate the log inside the last record.
	data := sampleLog()
	reader, err := NewLogReader(data[:len(data)-3])
	require.NoError(t, err)

	recs, err := reader.Records()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Len(t, recs, 4)

	require.False(t, reader.More())
	_, again := reader.Read()
	require.Equal(t, err, again)
	require.Equal(t, err, reader.Err())
}

func TestLoad_RawLog(t *testing.T) {
	reader, err := Load(sampleLog())
	require.NoError(t, err)

	recs, err := reader.Records()
	require.NoError(t, err)
	require.Len(t, recs, 5)
}

func TestLoad_ZstdArchive(t *testing.T) {
	raw := sampleLog()

	archived, err := compress.NewZstdCompressor().Compress(raw)
	require.NoError(t, err)

	reader, err := Load(archived)
	require.NoError(t, err)
	require.Equal(t, format.Version(3), reader.Header().Version)

	recs, err := reader.Records()
	require.NoError(t, err)
	require.Len(t, recs, 5)
}

func TestLoadCompressed_BlockCodecs(t *testing.T) {
	raw := sampleLog()

	for _, ct := range []format.CompressionType{format.CompressionLZ4, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)

			archived, err := codec.Compress(raw)
			require.NoError(t, err)

			reader, err := LoadCompressed(archived, ct)
			require.NoError(t, err)

			recs, err := reader.Records()
			require.NoError(t, err)
			require.Len(t, recs, 5)
		})
	}
}

func TestLoadCompressed_UnknownType(t *testing.T) {
	_, err := LoadCompressed(sampleLog(), format.CompressionType(0xEE))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestLoadCompressed_CorruptArchive(t *testing.T) {
	_, err := LoadCompressed([]byte{0x28, 0xB5, 0x2F, 0xFD, 0xFF, 0xFF}, format.CompressionZstd)
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a := sampleLog()
	b := newLog(3).metadata(format.KindPID, binary.LittleEndian.AppendUint32(nil, 1)).bytes()

	require.Equal(t, Fingerprint(a), Fingerprint(a))
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestLogReader_LegacyEndOfBuffer(t *testing.T) {
	data := newLog(1).
		metadata(format.KindNewBuffer, binary.LittleEndian.AppendUint32(nil, 1)).
		function(format.FunctionEnter, 3, 1).
		metadata(format.KindEndOfBuffer, nil).
		bytes()

	reader, err := NewLogReader(data)
	require.NoError(t, err)

	recs, err := reader.Records()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, format.KindEndOfBuffer, recs[2].Kind())
}

func TestLogReader_EndOfBufferRejectedInModernLog(t *testing.T) {
	data := newLog(3).
		metadata(format.KindEndOfBuffer, nil).
		bytes()

	reader, err := NewLogReader(data)
	require.NoError(t, err)

	_, err = reader.Read()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedInVersion)
}
