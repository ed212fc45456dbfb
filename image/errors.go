package image

import (
	"fmt"
)

// AddressRangeError indicates a write outside the builder's configured
// address range.
type AddressRangeError struct {
	Addr uint32
	Lo   uint32
	Hi   uint32
}

func (e *AddressRangeError) Error() string {
	return fmt.Sprintf("address 0x%08X is out of range: valid range is 0x%08X-0x%08X",
		e.Addr, e.Lo, e.Hi)
}

// ExtentTooLargeError indicates the populated extent spans more bytes
// than a flat rendering may allocate.
type ExtentTooLargeError struct {
	Lo   uint32
	Hi   uint32
	Span uint64
}

func (e *ExtentTooLargeError) Error() string {
	return fmt.Sprintf("extent 0x%08X-0x%08X spans %d bytes: flat rendering is limited to %d bytes",
		e.Lo, e.Hi, e.Span, MaxRenderBytes)
}

// EmptyImageError indicates an operation that needs at least one decoded
// byte was called on an empty builder.
type EmptyImageError struct {
	Operation string
}

func (e *EmptyImageError) Error() string {
	return fmt.Sprintf("%s: image is empty", e.Operation)
}
