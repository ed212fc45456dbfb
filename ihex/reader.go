package ihex

// Reader is the streaming decoder. It owns the state of exactly one
// input stream and delivers decoded data bytes to a user-supplied
// callback.
//
// A Reader is not safe for concurrent use; use one Reader per stream.
type Reader struct {
	callback DataCallback

	state     parseState
	remaining int // hex digits still required by the current field
	rec       record
	sum       checksum8
	ext       extension
	byteIndex uint16 // 0-based payload byte index within the active record

	validateEOFChecksum bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithEOFChecksumValidation makes the Reader validate the checksum of
// end-of-file records like any other record, reporting
// StatusChecksumError for a corrupt one instead of StatusEnd.
//
// By default the checksum of an end-of-file record is not compared and
// the record always reports StatusEnd.
func WithEOFChecksumValidation() Option {
	return func(r *Reader) {
		r.validateEOFChecksum = true
	}
}

// New creates a Reader that delivers decoded data bytes to callback.
// A nil callback is allowed; data bytes are then decoded and checksummed
// but discarded.
//
// The Reader is ready to decode immediately. Call Begin to reuse it for
// another stream.
func New(callback DataCallback, opts ...Option) *Reader {
	r := &Reader{callback: callback}
	for _, opt := range opts {
		opt(r)
	}

	r.Begin()
	return r
}

// Begin resets the Reader for a new logical stream: the state machine
// returns to waiting for a record mark and the address extension base is
// cleared. Call once per stream (for example per file).
func (r *Reader) Begin() {
	r.state = awaitMark
	r.ext.reset()
}

// Feed consumes one byte of the input stream and returns the status for
// that byte. It performs bounded, in-place work: it never blocks, never
// panics, and never aborts its own state on error.
//
// Carriage returns and line feeds are ignored in any state. While
// waiting for a record mark, every byte other than ':' is ignored, which
// permits arbitrary separator noise between records.
func (r *Reader) Feed(b byte) Status {
	if b == '\r' || b == '\n' {
		return StatusContinue
	}

	switch r.state {
	case awaitMark:
		if b != ':' {
			return StatusContinue
		}

		r.rec = record{}
		r.sum.reset()
		r.byteIndex = 0
		r.next(awaitLength, lengthDigits)

	case awaitLength:
		nibble, ok := hexValue(b)
		if !ok {
			return StatusInvalidInput
		}

		r.remaining--
		r.rec.length = byte(insertDigit(uint16(r.rec.length), nibble, r.remaining))

		if r.remaining == 0 {
			r.sum.add(r.rec.length)
			r.next(awaitAddress, addressDigits)
		}

	case awaitAddress:
		nibble, ok := hexValue(b)
		if !ok {
			return StatusInvalidInput
		}

		r.remaining--
		r.rec.loadOffset = insertDigit(r.rec.loadOffset, nibble, r.remaining)

		if r.remaining == 0 {
			r.sum.add(byte(r.rec.loadOffset >> 8))
			r.sum.add(byte(r.rec.loadOffset))
			r.next(awaitType, typeDigits)
		}

	case awaitType:
		nibble, ok := hexValue(b)
		if !ok {
			return StatusInvalidInput
		}

		r.remaining--
		r.rec.rtype = RecordType(insertDigit(uint16(r.rec.rtype), nibble, r.remaining))

		if r.remaining == 0 {
			r.sum.add(byte(r.rec.rtype))

			switch r.rec.rtype {
			case RecordExtendedSegmentAddress:
				r.ext.beginSegment()
			case RecordExtendedLinearAddress:
				r.ext.beginLinear()
			}

			if r.rec.length > 0 {
				r.next(awaitPayload, int(r.rec.length)*2)
			} else {
				r.next(awaitChecksum, checksumDigits)
			}
		}

	case awaitPayload:
		nibble, ok := hexValue(b)
		if !ok {
			return StatusInvalidInput
		}

		r.remaining--
		digitPos := r.remaining % 2
		r.rec.pending = byte(insertDigit(uint16(r.rec.pending), nibble, digitPos))

		status := StatusContinue
		if digitPos == 0 {
			status = r.dispatch(r.rec.pending)
			r.rec.pending = 0
		}

		if r.remaining == 0 {
			r.next(awaitChecksum, checksumDigits)
		}

		return status

	case awaitChecksum:
		nibble, ok := hexValue(b)
		if !ok {
			return StatusInvalidInput
		}

		r.remaining--
		r.rec.targetChecksum = byte(insertDigit(uint16(r.rec.targetChecksum), nibble, r.remaining))

		if r.remaining == 0 {
			r.state = awaitMark
			return r.complete()
		}
	}

	return StatusContinue
}

// next advances the state machine to the given field, expecting the
// given number of hex digits before the field completes.
func (r *Reader) next(state parseState, digits int) {
	r.state = state
	r.remaining = digits
}

// dispatch routes one completed payload byte according to the record
// type: data bytes go to the callback with their absolute address,
// addressing bytes feed the extension accumulator, anything else is
// discarded after checksum accounting.
func (r *Reader) dispatch(value byte) Status {
	r.sum.add(value)

	status := StatusContinue
	switch r.rec.rtype {
	case RecordData:
		if r.callback != nil {
			address := r.ext.base + uint32(r.rec.loadOffset) + uint32(r.byteIndex)
			status = r.callback(address, value)
		}
	case RecordExtendedSegmentAddress, RecordExtendedLinearAddress:
		r.ext.put(value)
	}

	r.byteIndex++
	return status
}

// complete finishes the record once its checksum field is in. End-of-file
// records report StatusEnd without checksum comparison unless
// WithEOFChecksumValidation was given.
func (r *Reader) complete() Status {
	if r.rec.rtype == RecordEndOfFile && !r.validateEOFChecksum {
		return StatusEnd
	}

	if r.sum.finalize() != r.rec.targetChecksum {
		return StatusChecksumError
	}

	if r.rec.rtype == RecordEndOfFile {
		return StatusEnd
	}

	return StatusContinue
}
