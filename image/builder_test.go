package image

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-ihex/ihex"
)

func decode(t *testing.T, builder *Builder, stream string) []ihex.Status {
	t.Helper()

	reader := ihex.New(builder.Callback())
	statuses := make([]ihex.Status, 0, len(stream))
	for i := 0; i < len(stream); i++ {
		statuses = append(statuses, reader.Feed(stream[i]))
	}
	return statuses
}

func TestBuilderSetGet(t *testing.T) {
	builder := NewBuilder()

	require.NoError(t, builder.Set(0x0030, 0x02))
	require.NoError(t, builder.Set(0x0031, 0x33))

	value, ok := builder.Get(0x0030)
	assert.True(t, ok)
	assert.Equal(t, byte(0x02), value)

	_, ok = builder.Get(0x0032)
	assert.False(t, ok)

	assert.Equal(t, 2, builder.Len())
}

func TestBuilderLastWriteWins(t *testing.T) {
	builder := NewBuilder()

	require.NoError(t, builder.Set(0x1000, 0xAA))
	require.NoError(t, builder.Set(0x1000, 0xBB))

	value, ok := builder.Get(0x1000)
	assert.True(t, ok)
	assert.Equal(t, byte(0xBB), value)
	assert.Equal(t, 1, builder.Len())
}

func TestBuilderAddressRange(t *testing.T) {
	builder := NewBuilder(WithAddressRange(0x1000, 0x1FFF))

	assert.NoError(t, builder.Set(0x1000, 0x01))
	assert.NoError(t, builder.Set(0x1FFF, 0x02))

	err := builder.Set(0x0FFF, 0x03)
	require.Error(t, err)

	var rangeErr *AddressRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, uint32(0x0FFF), rangeErr.Addr)
	assert.Equal(t, uint32(0x1000), rangeErr.Lo)
	assert.Equal(t, uint32(0x1FFF), rangeErr.Hi)

	assert.Error(t, builder.Set(0x2000, 0x04))
	assert.Equal(t, 2, builder.Len())
}

func TestBuilderExtent(t *testing.T) {
	builder := NewBuilder()

	_, _, ok := builder.Extent()
	assert.False(t, ok)

	require.NoError(t, builder.Set(0x2000, 0x01))
	require.NoError(t, builder.Set(0x1000, 0x02))
	require.NoError(t, builder.Set(0x1800, 0x03))

	lo, hi, ok := builder.Extent()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1000), lo)
	assert.Equal(t, uint32(0x2000), hi)
}

func TestBuilderBytes(t *testing.T) {
	builder := NewBuilder()

	require.NoError(t, builder.Set(0x0100, 0xAA))
	require.NoError(t, builder.Set(0x0103, 0xBB))

	out, err := builder.Bytes(0xFF)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xFF, 0xFF, 0xBB}, out)
}

func TestBuilderBytesEmpty(t *testing.T) {
	builder := NewBuilder()

	_, err := builder.Bytes(0xFF)
	require.Error(t, err)

	var emptyErr *EmptyImageError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestBuilderBytesExtentTooLarge(t *testing.T) {
	builder := NewBuilder()

	// Bytes at both ends of the address space: hi-lo+1 wraps to zero in
	// uint32, which used to panic during rendering.
	require.NoError(t, builder.Set(0x00000000, 0x11))
	require.NoError(t, builder.Set(0xFFFFFFFF, 0x22))

	_, err := builder.Bytes(0xFF)
	require.Error(t, err)

	var extentErr *ExtentTooLargeError
	require.True(t, errors.As(err, &extentErr))
	assert.Equal(t, uint32(0x00000000), extentErr.Lo)
	assert.Equal(t, uint32(0xFFFFFFFF), extentErr.Hi)
	assert.Equal(t, uint64(1)<<32, extentErr.Span)
}

func TestBuilderBytesOverRenderLimit(t *testing.T) {
	builder := NewBuilder()

	require.NoError(t, builder.Set(0x00000000, 0x11))
	require.NoError(t, builder.Set(MaxRenderBytes, 0x22))

	_, err := builder.Bytes(0xFF)
	require.Error(t, err)

	var extentErr *ExtentTooLargeError
	require.True(t, errors.As(err, &extentErr))
	assert.Equal(t, uint64(MaxRenderBytes)+1, extentErr.Span)
}

func TestBuilderReset(t *testing.T) {
	builder := NewBuilder()
	require.NoError(t, builder.Set(0x0000, 0x01))

	builder.Reset()
	assert.Equal(t, 0, builder.Len())
}

func TestBuilderDecodesStream(t *testing.T) {
	builder := NewBuilder()

	statuses := decode(t, builder, ":0300300002337A1E\n:00000001FF\n")

	require.NotEmpty(t, statuses)
	for _, s := range statuses[:len(statuses)-2] {
		assert.Equal(t, ihex.StatusContinue, s)
	}
	assert.Equal(t, ihex.StatusEnd, statuses[len(statuses)-2])

	assert.Equal(t, 3, builder.Len())
	value, ok := builder.Get(0x0032)
	assert.True(t, ok)
	assert.Equal(t, byte(0x7A), value)
}

func TestBuilderDecodesExtendedAddressing(t *testing.T) {
	builder := NewBuilder()

	decode(t, builder, ":02000004FFFFFC\n:01001000AA45\n")

	value, ok := builder.Get(0xFFFF0010)
	assert.True(t, ok)
	assert.Equal(t, byte(0xAA), value)
}

func TestBuilderCallbackRejectsOutOfRange(t *testing.T) {
	builder := NewBuilder(WithAddressRange(0x0000, 0x0030))

	// Payload bytes land at 0x30, 0x31, 0x32; the last two are rejected
	// and must surface as verification errors on their own bytes.
	statuses := decode(t, builder, ":0300300002337A1E")

	var rejections int
	for _, s := range statuses {
		if s == ihex.StatusVerificationError {
			rejections++
		}
	}
	assert.Equal(t, 2, rejections)

	assert.Equal(t, 1, builder.Len())
	_, ok := builder.Get(0x0031)
	assert.False(t, ok)
}

type recordingLogger struct {
	errors int
	debugs int
	infos  int
}

func (l *recordingLogger) Debug(msg string, kv ...interface{}) { l.debugs++ }
func (l *recordingLogger) Info(msg string, kv ...interface{})  { l.infos++ }
func (l *recordingLogger) Error(msg string, kv ...interface{}) { l.errors++ }

func TestBuilderLogsRejections(t *testing.T) {
	logger := &recordingLogger{}
	builder := NewBuilder(
		WithAddressRange(0x0000, 0x0030),
		WithLogger(logger),
	)

	decode(t, builder, ":0300300002337A1E")

	assert.Equal(t, 2, logger.errors)
}

func TestAddressRangeErrorMessage(t *testing.T) {
	err := &AddressRangeError{Addr: 0x2000, Lo: 0x0000, Hi: 0x1FFF}
	assert.Contains(t, err.Error(), "0x00002000")
	assert.Contains(t, err.Error(), "0x00000000-0x00001FFF")
}
