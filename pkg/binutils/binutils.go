package binutils

import (
	"errors"
	"io"
)

var (
	ErrVarIntTooBig     = errors.New("varint exceeds 32 bits")
	ErrVarIntIncomplete = errors.New("varint is truncated")
)

// AppendVarInt appends the wire encoding of v to data,
// 7 bits per byte with the high bit flagging continuation.
func AppendVarInt(data []byte, v int32) []byte {
	u := uint32(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		data = append(data, b)
		if u == 0 {
			return data
		}
	}
}

// ReadVarInt consumes a varint from r.
// Encodings longer than 5 bytes are rejected.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var v uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrVarIntIncomplete
			}
			return 0, err
		}
		v |= uint32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return int32(v), nil
		}
	}
	return 0, ErrVarIntTooBig
}
