package ihex

// parseState is the decoder's position within the fixed field order of a
// record.
type parseState uint8

const (
	awaitMark parseState = iota + 1
	awaitLength
	awaitAddress
	awaitType
	awaitPayload
	awaitChecksum
)

// Hex digit counts for the fixed-width record fields. The payload field
// width is length*2 and is set when the type field completes.
const (
	lengthDigits   = 2
	addressDigits  = 4
	typeDigits     = 2
	checksumDigits = 2
)
