package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLZ4Compresses(t *testing.T) {
	in := bytes.Repeat([]byte("compressible "), 4096)

	enc, err := LZ4{}.Encode(in)
	require.NoError(t, err)
	assert.Less(t, len(enc), len(in)/4)

	dec, err := LZ4{}.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, in, dec)
}

func TestLZ4Empty(t *testing.T) {
	enc, err := LZ4{}.Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, enc)

	dec, err := LZ4{}.Decode(enc)
	require.NoError(t, err)
	assert.Empty(t, dec)
}

func TestLZ4Corrupt(t *testing.T) {
	_, err := LZ4{}.Decode([]byte("definitely not an lz4 frame"))
	require.ErrorIs(t, err, ErrInvalidEncoding)

	enc, err := LZ4{}.Encode(bytes.Repeat([]byte("abcdef"), 1000))
	require.NoError(t, err)
	_, err = LZ4{}.Decode(enc[:5])
	require.Error(t, err)
}

func TestLZ4Limits(t *testing.T) {
	in := bytes.Repeat([]byte{'z'}, 10000)
	enc, err := LZ4{}.Encode(in)
	require.NoError(t, err)

	_, err = LZ4{Limits: Limits{MaxDecoded: 9999}}.Decode(enc)
	require.ErrorIs(t, err, ErrDecodeOverflow)

	dec, err := LZ4{Limits: Limits{MaxDecoded: 10000}}.Decode(enc)
	require.NoError(t, err)
	assert.Len(t, dec, 10000)

	_, err = LZ4{Limits: Limits{MaxEncoded: 4}}.Encode(in)
	require.ErrorIs(t, err, ErrEncodeOverflow)
}
