package ihex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertDigit(t *testing.T) {
	tests := []struct {
		name     string
		field    uint16
		nibble   byte
		digitPos int
		want     uint16
	}{
		{
			name:     "low nibble into empty field",
			field:    0x0000,
			nibble:   0xA,
			digitPos: 0,
			want:     0x000A,
		},
		{
			name:     "high nibble of 16-bit field",
			field:    0x0000,
			nibble:   0xF,
			digitPos: 3,
			want:     0xF000,
		},
		{
			name:     "other nibbles untouched",
			field:    0xF00A,
			nibble:   0x3,
			digitPos: 1,
			want:     0xF03A,
		},
		{
			name:     "overwrites existing nibble",
			field:    0x00FF,
			nibble:   0x1,
			digitPos: 1,
			want:     0x001F,
		},
		{
			name:     "msd-first assembly order",
			field:    insertDigit(0x0000, 0x3, 1),
			nibble:   0x9,
			digitPos: 0,
			want:     0x0039,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertDigit(tt.field, tt.nibble, tt.digitPos))
		})
	}
}

func TestHexValue(t *testing.T) {
	tests := []struct {
		name  string
		c     byte
		want  byte
		valid bool
	}{
		{name: "digit zero", c: '0', want: 0, valid: true},
		{name: "digit nine", c: '9', want: 9, valid: true},
		{name: "upper A", c: 'A', want: 10, valid: true},
		{name: "upper F", c: 'F', want: 15, valid: true},
		{name: "lower a", c: 'a', want: 10, valid: true},
		{name: "lower f", c: 'f', want: 15, valid: true},
		{name: "upper G", c: 'G', valid: false},
		{name: "lower g", c: 'g', valid: false},
		{name: "colon", c: ':', valid: false},
		{name: "space", c: ' ', valid: false},
		{name: "slash below zero", c: '/', valid: false},
		{name: "at sign below A", c: '@', valid: false},
		{name: "backtick below a", c: '`', valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hexValue(tt.c)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
