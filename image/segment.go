package image

import (
	"sort"
)

// Segment is one contiguous run of decoded bytes.
type Segment struct {
	// Base is the absolute address of Data[0].
	Base uint32

	// Data is the run of bytes starting at Base.
	Data []byte
}

// End returns the address one past the last byte of the segment. The
// result is uint64 so a segment ending at 0xFFFFFFFF does not wrap.
func (s Segment) End() uint64 {
	return uint64(s.Base) + uint64(len(s.Data))
}

// Segments returns the image as address-ordered contiguous runs.
// Adjacent bytes merge into one segment; every gap starts a new one.
func (b *Builder) Segments() []Segment {
	if len(b.cells) == 0 {
		return nil
	}

	addrs := make([]uint32, 0, len(b.cells))
	for addr := range b.cells {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	var segments []Segment
	current := Segment{Base: addrs[0]}

	for _, addr := range addrs {
		if addr != current.Base+uint32(len(current.Data)) {
			segments = append(segments, current)
			current = Segment{Base: addr}
		}
		current.Data = append(current.Data, b.cells[addr])
	}

	return append(segments, current)
}
