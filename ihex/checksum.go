package ihex

// checksum8 maintains the running 8-bit sum of every decoded field byte
// of the record in progress: length, both address bytes, type, and all
// payload bytes. The checksum field itself is not accumulated. Wrap is
// the natural unsigned overflow.
type checksum8 uint8

// add accumulates one decoded byte into the running sum.
func (c *checksum8) add(b byte) {
	*c += checksum8(b)
}

// finalize returns the two's complement of the running sum. A record is
// checksum-valid when this equals its trailing checksum field.
func (c checksum8) finalize() byte {
	return ^byte(c) + 1
}

// reset clears the running sum. Called when a new record mark is seen.
func (c *checksum8) reset() {
	*c = 0
}
