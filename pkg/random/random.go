package random

import (
	crand "crypto/rand"
	"encoding/binary"
)

func RandBytes(sz int) []byte {
	data := make([]byte, sz)
	if _, err := crand.Read(data); err != nil {
		panic(err)
	}
	return data
}

func RandInt64() int64 {
	return int64(binary.BigEndian.Uint64(RandBytes(8))) // nolint: gosec
}
