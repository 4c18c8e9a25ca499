package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcherald/mcherald/pkg/slice"
)

func TestTruncateSafe_Bytes(t *testing.T) {
	tests := []struct {
		name string
		s    []byte
		n    int
		want int
	}{
		{
			"equal length",
			[]byte{0xca, 0xfe, 0xca, 0xfe},
			4,
			4,
		},
		{
			"truncate to greater",
			[]byte{0xca, 0xfe},
			6,
			2,
		},
		{
			"truncate to zero",
			[]byte{0xca, 0xfe, 0xca, 0xfe},
			0,
			0,
		},
		{
			"initial zero length",
			[]byte{},
			10,
			0,
		},
		{
			"truncate to lesser",
			[]byte{0xca, 0xfe, 0xca, 0xfe},
			2,
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truncated := slice.TruncateSafe(tt.s, tt.n)
			assert.Len(t, truncated, tt.want)
			assert.Equal(t, tt.s[:tt.want], truncated)
		})
	}
}

func TestTruncateSafe_Runes(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{
			"ascii",
			"minecraft",
			4,
			"mine",
		},
		{
			"multibyte runes survive",
			"§a§b§c",
			3,
			"§a§",
		},
		{
			"no truncation needed",
			"motd",
			16,
			"motd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truncated := slice.TruncateSafe([]rune(tt.s), tt.n)
			assert.Equal(t, tt.want, string(truncated))
		})
	}
}

func TestReversed(t *testing.T) {
	tests := []struct {
		name string
		s    []int
		want []int
	}{
		{
			"multiple elements",
			[]int{1, 2, 3, 4},
			[]int{4, 3, 2, 1},
		},
		{
			"single element",
			[]int{1},
			[]int{1},
		},
		{
			"empty slice",
			[]int{},
			[]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slice.Reversed(tt.s)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReversed_DoesNotMutate(t *testing.T) {
	s := []string{"a", "b", "c"}
	got := slice.Reversed(s)
	assert.Equal(t, []string{"c", "b", "a"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, s)
}
