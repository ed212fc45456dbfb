package ihex

// insertDigit writes a 4-bit nibble into the digitPos-th nibble slot of
// field (0 = least significant), leaving the other nibbles untouched.
//
// The state machine supplies digit positions counting down from
// fieldWidth-1 to 0, so the first character received for a field lands
// in the most significant slot. Inputs are pre-validated nibble values;
// there is no error path.
func insertDigit(field uint16, nibble byte, digitPos int) uint16 {
	shift := uint(digitPos) * 4
	mask := uint16(0x000F) << shift
	return field&^mask | uint16(nibble)<<shift
}

// hexValue converts an ASCII hex digit to its 4-bit value. ok is false
// for any character outside [0-9A-Fa-f].
func hexValue(c byte) (value byte, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
