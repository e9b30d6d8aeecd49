package runtime

// Stream is the composite read/write handle generated parsers and
// serializers call into. It owns a ByteBackend plus the residual-bit state
// (BitBuffer) needed for unaligned bit-level I/O, and tracks the
// write-back/child-stream bookkeeping described in writeback.go.
type Stream struct {
	backend ByteBackend

	// bitsLeft is the number of residual bits held outside the backend,
	// always in [0, 7]. bits holds those bits in its low bitsLeft positions;
	// upper bits are zero once a public operation completes.
	bitsLeft uint8
	bits     uint64

	// bitsLe is the bit-packing direction: false = MSB-first (big-endian
	// bit order), true = LSB-first (little-endian bit order).
	bitsLe bool

	// bitsWriteMode selects between the read and write disciplines for the
	// residual-bit state machine.
	bitsWriteMode bool

	writeBack *writeBackHandler
	children  []*Stream

	ownsBackend bool
	closer      func() error
}

// NewStreamFromBytes creates a read-mode Stream over an existing byte slice.
func NewStreamFromBytes(data []byte) *Stream {
	return &Stream{backend: NewMemoryBackend(data)}
}

// NewStreamForWriting creates a write-mode Stream over a growable in-memory
// buffer, for building up serialized output from scratch.
func NewStreamForWriting() *Stream {
	return &Stream{backend: NewMemoryBackend(nil), bitsWriteMode: true}
}

// NewStreamOfSize creates a write-mode Stream over a zero-filled buffer of
// the given size, for structures whose final length is known up front.
func NewStreamOfSize(size int) *Stream {
	return &Stream{backend: NewZeroedMemoryBackend(size), bitsWriteMode: true}
}

// NewStreamFromBackend creates a Stream over a caller-supplied backend. The
// Stream does not take ownership of the backend; Dispose will not close it.
func NewStreamFromBackend(backend ByteBackend, writeMode bool) *Stream {
	return &Stream{backend: backend, bitsWriteMode: writeMode}
}

// NewStreamFromFile opens path and returns a Stream that owns the resulting
// file handle: Dispose closes it.
func NewStreamFromFile(path string, writeMode bool) (*Stream, error) {
	fb, err := OpenFileBackend(path)
	if err != nil {
		return nil, err
	}
	return &Stream{
		backend:       fb,
		bitsWriteMode: writeMode,
		ownsBackend:   true,
		closer:        fb.Close,
	}, nil
}

// Pos returns the stream's logical position. In write mode, a buffered
// partial byte is not yet committed to the backend but logically occupies
// one more byte of position, so generated code computing an anchor before a
// final align sees the right offset.
func (s *Stream) Pos() int64 {
	pos := s.backend.Position()
	if s.bitsWriteMode && s.bitsLeft > 0 {
		return pos + 1
	}
	return pos
}

// Size returns the total length of the underlying backend.
func (s *Stream) Size() int64 {
	return s.backend.Length()
}

// IsEof reports whether the stream has no more readable data: the backend
// cursor has reached the end, and either the stream is in write mode or
// there are no residual read bits.
func (s *Stream) IsEof() bool {
	if s.backend.Position() < s.backend.Length() {
		return false
	}
	return s.bitsWriteMode || s.bitsLeft == 0
}

// Seek moves the stream to an absolute byte offset. Per spec, any residual
// bits are flushed or discarded first: a write-align if in write mode, a
// read-align otherwise, so residual bits never straddle a seek.
func (s *Stream) Seek(pos int64) error {
	if s.bitsWriteMode {
		if err := s.WriteAlignToByte(); err != nil {
			return err
		}
	} else {
		s.AlignToByte()
	}
	s.backend.Seek(pos)
	return nil
}

// ToByteArray returns the full contents of the stream. When the backend
// exposes its buffer directly and that buffer's extent equals the stream's
// logical length, it is returned without copying; otherwise the stream's
// position is saved, the backend is read from offset 0 to its end, and the
// position is restored.
func (s *Stream) ToByteArray() []byte {
	if exposer, ok := s.backend.(bufferExposer); ok {
		buf := exposer.Buffer()
		if int64(len(buf)) == s.backend.Length() {
			return buf
		}
	}

	savedPos := s.backend.Position()
	s.backend.Seek(0)
	out, _ := s.backend.ReadExact(int(s.backend.Length()))
	s.backend.Seek(savedPos)
	return out
}

// Dispose flushes a pending partial byte (in write mode), then releases the
// backend if the Stream owns it (opened from a file path).
func (s *Stream) Dispose() error {
	if s.bitsWriteMode && s.bitsLeft > 0 {
		if err := s.WriteAlignToByte(); err != nil {
			return err
		}
	}
	if s.ownsBackend && s.closer != nil {
		return s.closer()
	}
	return nil
}
