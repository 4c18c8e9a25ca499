package binutils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcherald/mcherald/pkg/binutils"
)

func TestVarInt_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		wire  []byte
	}{
		{
			name:  "zero",
			value: 0,
			wire:  []byte{0x00},
		},
		{
			name:  "one",
			value: 1,
			wire:  []byte{0x01},
		},
		{
			name:  "single byte max",
			value: 127,
			wire:  []byte{0x7f},
		},
		{
			name:  "two bytes",
			value: 128,
			wire:  []byte{0x80, 0x01},
		},
		{
			name:  "byte boundary",
			value: 255,
			wire:  []byte{0xff, 0x01},
		},
		{
			name:  "default port",
			value: 25565,
			wire:  []byte{0xdd, 0xc7, 0x01},
		},
		{
			name:  "three bytes max",
			value: 2097151,
			wire:  []byte{0xff, 0xff, 0x7f},
		},
		{
			name:  "int32 max",
			value: 2147483647,
			wire:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
		},
		{
			name:  "negative one",
			value: -1,
			wire:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
		},
		{
			name:  "int32 min",
			value: -2147483648,
			wire:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := binutils.AppendVarInt(nil, tt.value)
			assert.Equal(t, tt.wire, encoded)

			decoded, err := binutils.ReadVarInt(bytes.NewReader(tt.wire))
			require.NoError(t, err)
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestAppendVarInt_KeepsPrefix(t *testing.T) {
	data := binutils.AppendVarInt([]byte{0xca, 0xfe}, 128)
	assert.Equal(t, []byte{0xca, 0xfe, 0x80, 0x01}, data)
}

func TestReadVarInt_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		wire    []byte
		wantErr error
	}{
		{
			name:    "empty input",
			wire:    []byte{},
			wantErr: binutils.ErrVarIntIncomplete,
		},
		{
			name:    "truncated continuation",
			wire:    []byte{0x80},
			wantErr: binutils.ErrVarIntIncomplete,
		},
		{
			name:    "more than five bytes",
			wire:    []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
			wantErr: binutils.ErrVarIntTooBig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := binutils.ReadVarInt(bytes.NewReader(tt.wire))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
