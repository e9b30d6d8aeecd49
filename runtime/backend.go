package runtime

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ByteBackend abstracts a seekable, random-access byte container. It has no
// notion of bits — every operation is byte-atomic. A Stream drives a
// ByteBackend and layers bit-level and primitive codec semantics on top.
type ByteBackend interface {
	// ReadExact reads exactly n bytes at the current position, advancing it.
	// Returns an *UnexpectedEOFError if fewer than n bytes remain.
	ReadExact(n int) ([]byte, error)

	// Write writes p at the current position, advancing it. Growing backends
	// extend their length as needed; fixed backends overwrite in place.
	Write(p []byte) error

	// Seek moves the cursor to an absolute byte offset.
	Seek(pos int64)

	// Position returns the current absolute byte offset.
	Position() int64

	// Length returns the total number of bytes the backend holds.
	Length() int64
}

// bufferExposer is an optional capability: a backend that can hand back its
// underlying buffer directly enables Stream.ToByteArray to avoid a copy.
// Backends that cannot expose a contiguous buffer (e.g. FileBackend) simply
// do not implement it.
type bufferExposer interface {
	Buffer() []byte
}

// MemoryBackend is a ByteBackend over an in-memory byte slice. Reads past the
// end of the slice fail; writes past the end grow the slice.
type MemoryBackend struct {
	buf []byte
	pos int64
}

// NewMemoryBackend wraps an existing byte slice for reading and writing.
// The slice is used directly, not copied.
func NewMemoryBackend(buf []byte) *MemoryBackend {
	return &MemoryBackend{buf: buf}
}

// NewZeroedMemoryBackend allocates a zero-filled buffer of the given size,
// for building up a serialized structure of known final length.
func NewZeroedMemoryBackend(size int) *MemoryBackend {
	return &MemoryBackend{buf: make([]byte, size)}
}

func (m *MemoryBackend) ReadExact(n int) ([]byte, error) {
	if m.pos+int64(n) > int64(len(m.buf)) {
		return nil, &UnexpectedEOFError{Requested: n, Obtained: int(int64(len(m.buf)) - m.pos)}
	}
	out := m.buf[m.pos : m.pos+int64(n)]
	m.pos += int64(n)
	return out, nil
}

func (m *MemoryBackend) Write(p []byte) error {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return nil
}

func (m *MemoryBackend) Seek(pos int64)  { m.pos = pos }
func (m *MemoryBackend) Position() int64 { return m.pos }
func (m *MemoryBackend) Length() int64   { return int64(len(m.buf)) }

// Buffer exposes the backing slice directly, enabling zero-copy
// Stream.ToByteArray when the logical length matches the buffer extent.
func (m *MemoryBackend) Buffer() []byte { return m.buf }

// FileBackend is a ByteBackend over an *os.File. It holds the file handle
// open for its lifetime, releasing it on Close.
type FileBackend struct {
	f    *os.File
	pos  int64
	size int64
}

// OpenFileBackend opens path for reading and writing, holding the handle
// and an exclusive flock for the lifetime of the returned backend.
func OpenFileBackend(path string) (*FileBackend, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
		return nil, err
	}
	return &FileBackend{f: f, size: info.Size()}, nil
}

func (fb *FileBackend) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(fb.f, buf)
	fb.pos += int64(read)
	if err != nil {
		return nil, &UnexpectedEOFError{Requested: n, Obtained: read}
	}
	return buf, nil
}

func (fb *FileBackend) Write(p []byte) error {
	n, err := fb.f.Write(p)
	fb.pos += int64(n)
	if fb.pos > fb.size {
		fb.size = fb.pos
	}
	return err
}

func (fb *FileBackend) Seek(pos int64) {
	fb.f.Seek(pos, io.SeekStart)
	fb.pos = pos
}

func (fb *FileBackend) Position() int64 { return fb.pos }
func (fb *FileBackend) Length() int64   { return fb.size }

// Close releases the flock and the underlying file handle.
func (fb *FileBackend) Close() error {
	if err := unix.Flock(int(fb.f.Fd()), unix.LOCK_UN); err != nil {
		fb.f.Close()
		return err
	}
	return fb.f.Close()
}
