// Package ihex provides a streaming, byte-at-a-time decoder for the
// Intel HEX text encoding.
//
// # Intel HEX Format
//
// An Intel HEX file is ASCII text, one record per line:
//
//	:LLAAAATT DD...DD CC
//	  :    = record mark
//	  LL   = payload length (2 hex digits, 0-255 bytes)
//	  AAAA = 16-bit load offset (4 hex digits)
//	  TT   = record type (2 hex digits)
//	  DD   = payload bytes (2 hex digits each, LL of them)
//	  CC   = checksum (2 hex digits)
//
// The checksum is the two's complement of the 8-bit sum of every decoded
// byte of the record (length, both address bytes, type, and all payload
// bytes), so summing all record bytes including the checksum yields zero
// modulo 256.
//
// Record types:
//
//	00 = data
//	01 = end of file
//	02 = extended segment address (16-bit segment number, scaled by 16)
//	03 = start segment address
//	04 = extended linear address (upper 16 bits of the 32-bit base)
//	05 = start linear address
//
// Extended segment and extended linear records establish a 32-bit base
// offset that is added to the load offset of every following data record.
// The absolute address of a data byte is
//
//	base + loadOffset + byteIndex
//
// where byteIndex is the byte's 0-based position within its record.
//
// # Usage
//
// The decoder is fed one byte at a time and reports a Status per byte.
// Decoded data bytes are delivered through a DataCallback together with
// their absolute address:
//
//	reader := ihex.New(func(address uint32, value byte) ihex.Status {
//	    fmt.Printf("0x%08X = 0x%02X\n", address, value)
//	    return ihex.StatusContinue
//	})
//
//	for _, b := range []byte(":0300300002337A1E\n") {
//	    if status := reader.Feed(b); status != ihex.StatusContinue {
//	        // handle StatusEnd, StatusInvalidInput, StatusChecksumError,
//	        // or a status returned by the callback itself
//	    }
//	}
//
// Feed never blocks and never panics; all reporting is by return value.
// The decoder does not abort its own state on error, so the caller can
// resynchronize after a bad byte by simply continuing to feed input (any
// byte other than ':' is ignored between records).
//
// # Concurrency
//
// A Reader is not safe for concurrent use. Callers that decode multiple
// streams concurrently must use one Reader per stream. The data callback
// runs synchronously inside Feed and must not re-enter the same Reader.
package ihex
