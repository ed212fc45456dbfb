package ihex

// Byte-slot positions filled by the two addressing record types. Slot 0
// holds bits 0-7 of the assembled base, slot 3 holds bits 24-31.
const (
	segmentHighSlot = 1
	linearHighSlot  = 3
)

// extension accumulates the 32-bit address base carried by extended
// segment (type 02) and extended linear (type 04) records. The base is
// added to the load offset of every following data record until another
// addressing record overrides it.
//
// Payload bytes are staged into fixed byte slots indexed by a countdown
// position, then assembled into the 32-bit value. A segment record fills
// slots 1 and 0 and scales the assembled 16-bit segment number by 16
// once the low slot is in; a linear record fills slots 3 and 2, placing
// its payload directly in the upper 16 bits.
type extension struct {
	slots   [4]byte
	pos     int
	segment bool
	base    uint32
}

// beginSegment discards the current base and prepares to assemble a new
// one from an extended segment address record's payload.
func (e *extension) beginSegment() {
	*e = extension{pos: segmentHighSlot, segment: true}
}

// beginLinear discards the current base and prepares to assemble a new
// one from an extended linear address record's payload.
func (e *extension) beginLinear() {
	*e = extension{pos: linearHighSlot}
}

// reset clears the base. Called once per decoding session.
func (e *extension) reset() {
	*e = extension{}
}

// put stages one completed payload byte of an addressing record.
// Payload bytes beyond the two the format defines carry no addressing
// meaning and are ignored.
func (e *extension) put(b byte) {
	if e.pos < 0 {
		return
	}

	e.slots[e.pos] = b
	e.base = uint32(e.slots[3])<<24 | uint32(e.slots[2])<<16 |
		uint32(e.slots[1])<<8 | uint32(e.slots[0])

	if e.segment && e.pos == 0 {
		// The segment number addresses 16-byte paragraphs.
		e.base <<= 4
	}

	e.pos--
}
