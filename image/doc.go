// Package image reconstructs a sparse memory image from a stream of
// decoded (address, byte) pairs.
//
// # Overview
//
// A Builder collects the bytes an ihex.Reader delivers through its data
// callback and exposes the result as address-ordered contiguous
// segments or as a flat binary:
//
//	builder := image.NewBuilder()
//	reader := ihex.New(builder.Callback())
//
//	for _, b := range []byte(hexText) {
//	    if status := reader.Feed(b); status == ihex.StatusEnd {
//	        break
//	    }
//	}
//
//	for _, seg := range builder.Segments() {
//	    fmt.Printf("0x%08X: %d bytes\n", seg.Base, len(seg.Data))
//	}
//
// Duplicate addresses are last-write-wins; the builder performs no
// overlap validation.
//
// # Address Range Guard
//
// An optional address range rejects decoded bytes outside the device's
// flash window. Rejections surface through the decoder's status channel
// as ihex.StatusVerificationError, on the exact byte that was rejected:
//
//	builder := image.NewBuilder(image.WithAddressRange(0x0800_0000, 0x0807_FFFF))
//	reader := ihex.New(builder.Callback())
//
// # Logging
//
// Integrate with any logging framework by providing a Logger:
//
//	builder := image.NewBuilder(image.WithLogger(myLogger))
package image
