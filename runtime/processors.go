package runtime

import (
	"bytes"
	"compress/flate"
	"hash/adler32"
	"io"
)

// ProcessXorByte XORs every byte of value with a single repeating key byte.
func ProcessXorByte(value []byte, key byte) []byte {
	out := make([]byte, len(value))
	for i, b := range value {
		out[i] = b ^ key
	}
	return out
}

// ProcessXorKeystream XORs every byte of value with key, repeating key
// cyclically (index mod len(key)).
func ProcessXorKeystream(value []byte, key []byte) []byte {
	out := make([]byte, len(value))
	if len(key) == 0 {
		copy(out, value)
		return out
	}
	for i, b := range value {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// ProcessRotateLeft circularly rotates every byte of data left by amount
// bits. amount must be in [-7, 7]; negative amounts are normalized to a
// right rotation expressed as amount+8. Only groupSize == 1 (bit-level
// rotation of individual bytes) is defined.
func ProcessRotateLeft(data []byte, amount int, groupSize int) ([]byte, error) {
	if groupSize != 1 {
		return nil, &NotImplementedError{Message: "process_rotate_left: group sizes other than 1 are not implemented"}
	}
	if amount < -7 || amount > 7 {
		return nil, &InvalidArgumentError{Message: "process_rotate_left: amount must be in [-7, 7]"}
	}
	if amount < 0 {
		amount += 8
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = byte(b<<uint(amount)) | byte(b>>uint(8-amount))
	}
	return out, nil
}

const (
	zlibDeflateMethod = 8
	zlibFlagDict      = 0x20
	zlibHeaderCMF     = 0x78 // CM=8 (deflate), CINFO=7 (32 KiB window)
	zlibHeaderFLG     = 0xDA // FLEVEL=3, FDICT=0, FCHECK chosen so header % 31 == 0
)

// ProcessZlib parses a zlib-framed (RFC 1950) DEFLATE payload and returns
// the inflated bytes. It rejects any compression method other than DEFLATE
// (CM != 8) but does not verify the trailing Adler-32 checksum, matching
// the reference runtime's behavior of trusting it.
func ProcessZlib(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, &UnexpectedEOFError{Requested: 2, Obtained: len(data)}
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0F != zlibDeflateMethod {
		return nil, &NotSupportedError{Message: "zlib: unsupported compression method"}
	}

	headerLen := 2
	if flg&zlibFlagDict != 0 {
		headerLen = 6
	}
	if len(data) < headerLen+4 {
		return nil, &UnexpectedEOFError{Requested: headerLen + 4, Obtained: len(data)}
	}

	body := data[headerLen : len(data)-4]
	r := flate.NewReader(bytes.NewReader(body))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnprocessZlib synthesizes a zlib container (RFC 1950) wrapping
// DEFLATE-compressed data: a fixed 2-byte header (CM=8, CINFO=7, no
// dictionary, optimal compression level), the DEFLATE-compressed payload,
// and a big-endian 4-byte Adler-32 footer computed over the original
// (uncompressed) data.
func UnprocessZlib(data []byte) []byte {
	var body bytes.Buffer
	w, _ := flate.NewWriter(&body, flate.BestCompression)
	w.Write(data)
	w.Close()

	sum := adler32.Checksum(data)

	out := make([]byte, 0, 2+body.Len()+4)
	out = append(out, zlibHeaderCMF, zlibHeaderFLG)
	out = append(out, body.Bytes()...)
	out = append(out, byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))
	return out
}
