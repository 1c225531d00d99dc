package valuecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/EVerest/everest-core-sub002/bitio"
)

func TestStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringN(0, 64, 64).Draw(t, "s")

		buf := make([]byte, 128)
		w := bitio.NewWriter(buf)
		require.NoError(t, EncodeString(w, s))

		r := bitio.NewReader(buf)
		got, err := DecodeString(r, 64)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})
}

func TestStringExceedsCapacity(t *testing.T) {
	buf := make([]byte, 16)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodeString(w, "hello world"))

	r := bitio.NewReader(buf)
	_, err := DecodeString(r, 4)
	require.Error(t, err)
}

func TestBinaryRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "data")

		buf := make([]byte, 64)
		w := bitio.NewWriter(buf)
		require.NoError(t, EncodeBinary(w, data))

		r := bitio.NewReader(buf)
		got, err := DecodeBinary(r, 32)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestPercentValueRange(t *testing.T) {
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, EncodePercentValue(w, 100))

	r := bitio.NewReader(buf)
	v, err := DecodePercentValue(r)
	require.NoError(t, err)
	assert.Equal(t, uint8(100), v)

	err = EncodePercentValue(bitio.NewWriter(make([]byte, 4)), 101)
	require.Error(t, err)
}

func TestExponentRoundTrip(t *testing.T) {
	tests := []int8{-128, -1, 0, 1, 127}
	for _, v := range tests {
		buf := make([]byte, 2)
		w := bitio.NewWriter(buf)
		require.NoError(t, EncodeExponent(w, v))

		r := bitio.NewReader(buf)
		got, err := DecodeExponent(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
