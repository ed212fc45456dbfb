package ihex

// RecordType identifies the kind of record being decoded, parsed from
// the TT field of a record.
type RecordType byte

// Record types defined by the Intel HEX format.
const (
	RecordData                   RecordType = 0x00
	RecordEndOfFile              RecordType = 0x01
	RecordExtendedSegmentAddress RecordType = 0x02
	RecordStartSegmentAddress    RecordType = 0x03
	RecordExtendedLinearAddress  RecordType = 0x04
	RecordStartLinearAddress     RecordType = 0x05
)

// String returns a human-readable name for the record type.
func (t RecordType) String() string {
	switch t {
	case RecordData:
		return "data"
	case RecordEndOfFile:
		return "end of file"
	case RecordExtendedSegmentAddress:
		return "extended segment address"
	case RecordStartSegmentAddress:
		return "start segment address"
	case RecordExtendedLinearAddress:
		return "extended linear address"
	case RecordStartLinearAddress:
		return "start linear address"
	}
	return "unknown"
}

// record is the per-line scratch state. It is rebuilt from zero every
// time a record mark is seen, so no stale field survives into the next
// record.
type record struct {
	// length is the declared payload byte count, from the LL field.
	length byte

	// loadOffset is the 16-bit address field, relative to the current
	// extension base.
	loadOffset uint16

	// rtype is the record type code. Unrecognized values are parsed
	// structurally but trigger no dispatch.
	rtype RecordType

	// pending accumulates the payload byte currently being assembled
	// from its two hex digits.
	pending byte

	// targetChecksum is the record's trailing checksum field.
	targetChecksum byte
}
