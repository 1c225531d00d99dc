package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EVerest/everest-core-sub002/bitio"
)

func TestWriteProducesFixedFirstByte(t *testing.T) {
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, Write(w))
	assert.Equal(t, FirstByte, buf[0])
}

func TestWriteReadRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	w := bitio.NewWriter(buf)
	require.NoError(t, Write(w))

	r := bitio.NewReader(buf)
	require.NoError(t, Read(r))
}

func TestReadRejectsUnexpectedVersion(t *testing.T) {
	buf := []byte{0xff}
	r := bitio.NewReader(buf)
	err := Read(r)
	require.Error(t, err)
}
