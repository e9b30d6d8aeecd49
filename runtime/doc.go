// Package runtime is the support library generated binary-format parsers
// and serializers call into: a bidirectional bit/byte Stream plus the
// read/write disciplines built on top of it (aligned integer/float codecs,
// unaligned bit codecs, terminator-bounded byte reads, XOR/rotate/zlib
// processors, and the deferred write-back protocol for child streams).
//
// This implementation targets semantic parity with other language runtimes
// of the same toolkit: bit-buffer direction, shift-masking at boundary
// widths, and eight-divisibility rules are all load-bearing, not
// incidental.
package runtime
