package runtime

const maxInt32 = 1<<31 - 1

// ReadBytes reads exactly count bytes, byte-aligning first. count must be
// non-negative and no larger than the 31-bit signed maximum.
func (s *Stream) ReadBytes(count int) ([]byte, error) {
	if count < 0 || count > maxInt32 {
		return nil, &OutOfRangeError{Value: int64(count)}
	}
	s.AlignToByte()
	return s.backend.ReadExact(count)
}

// ReadBytesFull reads from the current position to the end of the stream.
func (s *Stream) ReadBytesFull() ([]byte, error) {
	s.AlignToByte()
	remaining := s.backend.Length() - s.backend.Position()
	return s.backend.ReadExact(int(remaining))
}

// ReadBytesTerm reads bytes one at a time until term is found. If
// includeTerm, the terminator is appended to the result. If !consumeTerm,
// the stream is rewound one byte after a match so the terminator can be
// read again by the caller. If the terminator is never found: eosError
// raises UnexpectedEOFError, otherwise the bytes read so far are returned.
func (s *Stream) ReadBytesTerm(term byte, includeTerm, consumeTerm, eosError bool) ([]byte, error) {
	s.AlignToByte()
	var out []byte
	for {
		b, err := s.backend.ReadExact(1)
		if err != nil {
			if eosError {
				return nil, err
			}
			return out, nil
		}
		if b[0] == term {
			if includeTerm {
				out = append(out, b[0])
			}
			if !consumeTerm {
				s.backend.Seek(s.backend.Position() - 1)
			}
			return out, nil
		}
		out = append(out, b[0])
	}
}

// EnsureFixedContents reads len(expected) bytes and fails with a
// ValidationError if they do not match expected exactly.
func (s *Stream) EnsureFixedContents(expected []byte) ([]byte, error) {
	actual, err := s.ReadBytes(len(expected))
	if err != nil {
		return nil, err
	}
	if ByteArrayCompare(actual, expected) != 0 {
		return actual, &ValidationError{
			Kind:     ValidationNotEqual,
			Expected: string(expected),
			Actual:   string(actual),
			Position: s.Pos(),
		}
	}
	return actual, nil
}

// BytesStripRight returns src with any trailing padByte bytes removed.
// An all-pad or empty src yields an empty (non-nil-length-0) result.
func BytesStripRight(src []byte, padByte byte) []byte {
	end := len(src)
	for end > 0 && src[end-1] == padByte {
		end--
	}
	return src[:end]
}

// BytesTerminate returns the prefix of src up to the first occurrence of
// term (inclusive, if includeTerm), or the whole slice if term is absent.
func BytesTerminate(src []byte, term byte, includeTerm bool) []byte {
	for i, b := range src {
		if b == term {
			if includeTerm {
				return src[:i+1]
			}
			return src[:i]
		}
	}
	return src
}

// WriteBytes write-aligns, then writes data as-is.
func (s *Stream) WriteBytes(data []byte) error {
	if err := s.WriteAlignToByte(); err != nil {
		return err
	}
	return s.backend.Write(data)
}

// WriteBytesLimit write-aligns, then writes data padded or bounded to an
// exact size. If len(data) < size, a single term byte is written followed
// by padByte bytes to fill the remainder. If len(data) > size, this is an
// InvalidArgumentError. If len(data) == size, data is written verbatim
// with no terminator.
func (s *Stream) WriteBytesLimit(data []byte, size int, term, padByte byte) error {
	if len(data) > size {
		return &InvalidArgumentError{Message: "write_bytes_limit: data longer than size"}
	}
	if err := s.WriteAlignToByte(); err != nil {
		return err
	}
	if err := s.backend.Write(data); err != nil {
		return err
	}
	if len(data) < size {
		if err := s.backend.Write([]byte{term}); err != nil {
			return err
		}
		padCount := size - len(data) - 1
		if padCount > 0 {
			pad := make([]byte, padCount)
			for i := range pad {
				pad[i] = padByte
			}
			if err := s.backend.Write(pad); err != nil {
				return err
			}
		}
	}
	return nil
}
