package image

import (
	"fmt"

	"github.com/moffa90/go-ihex/ihex"
)

// Builder assembles a sparse memory image from decoded (address, byte)
// pairs. The zero value is not usable; create builders with NewBuilder.
//
// Builder is not safe for concurrent use.
type Builder struct {
	config Config
	cells  map[uint32]byte
}

// NewBuilder creates an empty Builder with the given options.
//
// Example:
//
//	builder := image.NewBuilder(
//	    image.WithAddressRange(0x08000000, 0x0807FFFF),
//	    image.WithLogger(myLogger),
//	)
func NewBuilder(opts ...Option) *Builder {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		config: cfg,
		cells:  make(map[uint32]byte),
	}
}

// Callback adapts the builder to an ihex.Reader data callback. Decoded
// bytes inside the configured range (or any byte when no range is set)
// are stored and acknowledged with ihex.StatusContinue; bytes outside
// the range are dropped and reported as ihex.StatusVerificationError,
// which the decoder propagates to the byte that triggered it.
func (b *Builder) Callback() ihex.DataCallback {
	return func(address uint32, value byte) ihex.Status {
		if err := b.Set(address, value); err != nil {
			b.logError("decoded byte rejected",
				"address", fmt.Sprintf("0x%08X", address),
				"value", fmt.Sprintf("0x%02X", value),
			)
			return ihex.StatusVerificationError
		}

		return ihex.StatusContinue
	}
}

// Set stores one byte at the given absolute address. Duplicate addresses
// are last-write-wins. Returns *AddressRangeError when the address falls
// outside a configured range.
func (b *Builder) Set(address uint32, value byte) error {
	if b.config.HasRange && (address < b.config.RangeLo || address > b.config.RangeHi) {
		return &AddressRangeError{
			Addr: address,
			Lo:   b.config.RangeLo,
			Hi:   b.config.RangeHi,
		}
	}

	b.cells[address] = value
	return nil
}

// Get returns the byte stored at address.
func (b *Builder) Get(address uint32) (value byte, ok bool) {
	value, ok = b.cells[address]
	return value, ok
}

// Len returns the number of distinct addresses holding a decoded byte.
func (b *Builder) Len() int {
	return len(b.cells)
}

// Extent returns the lowest and highest populated addresses. ok is
// false for an empty image.
func (b *Builder) Extent() (lo, hi uint32, ok bool) {
	if len(b.cells) == 0 {
		return 0, 0, false
	}

	first := true
	for addr := range b.cells {
		if first {
			lo, hi = addr, addr
			first = false
			continue
		}
		if addr < lo {
			lo = addr
		}
		if addr > hi {
			hi = addr
		}
	}

	return lo, hi, true
}

// MaxRenderBytes is the largest flat image Bytes will allocate. Sparse
// images whose extent spans more than this return *ExtentTooLargeError;
// convert those per segment instead.
const MaxRenderBytes = 1 << 30

// Bytes renders the image as a flat binary spanning the populated
// extent, with unpopulated gaps set to fill. The allocation size is the
// full extent, so callers converting images with widely separated
// segments should render per segment instead; an extent wider than
// MaxRenderBytes returns *ExtentTooLargeError.
func (b *Builder) Bytes(fill byte) ([]byte, error) {
	lo, hi, ok := b.Extent()
	if !ok {
		return nil, &EmptyImageError{Operation: "render image"}
	}

	// The span is computed in uint64: an image touching both ends of
	// the address space has hi-lo+1 wrap to zero in uint32.
	span := uint64(hi) - uint64(lo) + 1
	if span > MaxRenderBytes {
		return nil, &ExtentTooLargeError{Lo: lo, Hi: hi, Span: span}
	}

	out := make([]byte, span)
	for i := range out {
		out[i] = fill
	}
	for addr, value := range b.cells {
		out[addr-lo] = value
	}

	b.logDebug("image rendered",
		"base", fmt.Sprintf("0x%08X", lo),
		"size", len(out),
	)

	return out, nil
}

// Reset discards all stored bytes, keeping the configuration.
func (b *Builder) Reset() {
	b.cells = make(map[uint32]byte)
}

// logDebug logs a debug message if a logger is configured.
func (b *Builder) logDebug(msg string, keysAndValues ...interface{}) {
	if b.config.Logger != nil {
		b.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (b *Builder) logError(msg string, keysAndValues ...interface{}) {
	if b.config.Logger != nil {
		b.config.Logger.Error(msg, keysAndValues...)
	}
}
