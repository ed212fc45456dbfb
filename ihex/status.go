package ihex

// Status is the per-byte result reported by Reader.Feed.
//
// The decoder itself only produces StatusContinue, StatusEnd,
// StatusInvalidInput and StatusChecksumError. Any status returned by a
// DataCallback is passed through Feed unchanged, so a collaborator (such
// as a flash writer) can surface its own failure on the exact byte that
// triggered it. StatusVerificationError is reserved for that purpose and
// is never produced by the decoder.
type Status uint8

const (
	// StatusContinue indicates the byte was consumed and more input is expected.
	StatusContinue Status = iota

	// StatusEnd indicates an end-of-file record (type 01) completed.
	// The stream is finished; the Reader still accepts further input.
	StatusEnd

	// StatusInvalidInput indicates a character that is not a hex digit
	// (and not CR/LF) arrived where a hex digit was required. The byte is
	// discarded without consuming a digit slot; decoding resumes with the
	// next byte.
	StatusInvalidInput

	// StatusChecksumError indicates a completed record whose computed
	// two's-complement checksum does not match its trailing checksum
	// field. The Reader has already advanced past the record and is
	// ready for the next one.
	StatusChecksumError

	// StatusVerificationError is reserved for data callbacks that verify
	// decoded bytes against a target (for example a flash readback). The
	// decoder never produces it.
	StatusVerificationError
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusEnd:
		return "end"
	case StatusInvalidInput:
		return "invalid input"
	case StatusChecksumError:
		return "checksum error"
	case StatusVerificationError:
		return "verification error"
	}
	return "unknown"
}

// DataCallback receives one decoded payload byte of a data record (type
// 00) together with its absolute address. It is invoked synchronously
// from Reader.Feed, exactly once per payload byte, in ascending address
// order within a record.
//
// The returned status becomes the result of the Feed call that completed
// the byte. Return StatusContinue to keep decoding; any other value is
// propagated verbatim to the caller.
type DataCallback func(address uint32, value byte) Status
