package ihex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionSegment(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    uint32
	}{
		{
			name:    "segment 0x0010 scales to 0x100",
			payload: []byte{0x00, 0x10},
			want:    0x00000100,
		},
		{
			name:    "segment 0x1000 addresses 64K boundary",
			payload: []byte{0x10, 0x00},
			want:    0x00010000,
		},
		{
			name:    "maximum segment",
			payload: []byte{0xFF, 0xFF},
			want:    0x000FFFF0,
		},
		{
			name:    "high byte alone is unscaled",
			payload: []byte{0x12},
			want:    0x00001200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e extension
			e.beginSegment()
			for _, b := range tt.payload {
				e.put(b)
			}
			assert.Equal(t, tt.want, e.base)
		})
	}
}

func TestExtensionLinear(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    uint32
	}{
		{
			name:    "upper halfword 0xFFFF",
			payload: []byte{0xFF, 0xFF},
			want:    0xFFFF0000,
		},
		{
			name:    "upper halfword 0x0800",
			payload: []byte{0x08, 0x00},
			want:    0x08000000,
		},
		{
			name:    "high byte alone",
			payload: []byte{0x12},
			want:    0x12000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e extension
			e.beginLinear()
			for _, b := range tt.payload {
				e.put(b)
			}
			assert.Equal(t, tt.want, e.base)
		})
	}
}

func TestExtensionBeginDiscardsPreviousBase(t *testing.T) {
	var e extension
	e.beginLinear()
	e.put(0xFF)
	e.put(0xFF)
	assert.Equal(t, uint32(0xFFFF0000), e.base)

	e.beginSegment()
	assert.Equal(t, uint32(0), e.base)

	e.put(0x00)
	e.put(0x10)
	assert.Equal(t, uint32(0x00000100), e.base)
}

func TestExtensionExtraBytesIgnored(t *testing.T) {
	var e extension
	e.beginSegment()
	e.put(0x00)
	e.put(0x10)
	e.put(0xAB) // beyond the two bytes the format defines

	assert.Equal(t, uint32(0x00000100), e.base)
}

func TestExtensionReset(t *testing.T) {
	var e extension
	e.beginLinear()
	e.put(0x12)
	e.put(0x34)

	e.reset()
	assert.Equal(t, uint32(0), e.base)
}
