// Package cfifo provides fixed-capacity circular byte queues that can be
// cascaded into chains for multi-buffer storage.
//
// # Overview
//
// A Fifo stores single bytes in a fixed ring. Fifos can be linked into a
// chain; the chain operations walk the linked instances so a producer
// overflowing one buffer spills into the next:
//
//	front := cfifo.New(64)
//	back := cfifo.New(1024)
//	front.CascadeNext(back)
//
//	front.PushChain(0x3A) // lands in front, or in back once front fills
//
//	for {
//	    b, ok := front.PopChain()
//	    if !ok {
//	        break
//	    }
//	    reader.Feed(b)
//	}
//
// Bytes drain in push order across the chain because PushChain fills
// earlier instances first and PopChain drains them first.
//
// # Dummy-Byte Sources
//
// A Fifo without a backing store acts as a byte generator: pops succeed
// while usage remains, each yielding the configured dummy byte. This is
// useful for padding streams to a fixed length:
//
//	pad := cfifo.NewDummySource(16, 0xFF)
//
// # Concurrency
//
// Every operation locks the instances it touches, so a Fifo may be
// shared between one producer and one consumer goroutine. Operations do
// not block: a full push and an empty pop fail immediately.
package cfifo
