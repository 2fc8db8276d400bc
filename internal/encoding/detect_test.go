package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsantos-dev/moneta/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	assert.Equal(t, "Cartão de crédito", decode(t, []byte("Cartão de crédito")))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Amount")...)
	assert.Equal(t, "Date,Amount", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Hi" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}
	assert.Equal(t, "Hi", decode(t, input))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid on its own in UTF-8.
	input := []byte{'c', 'a', 'f', 0xE9}
	assert.Equal(t, "café", decode(t, input))
}
