package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcaldeira/tandem/internal/encoding"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	in := "Data;Descrição;Débito\n"

	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(in)))
	require.NoError(t, err)

	assert.Equal(t, in, readAll(t, r))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Data;Valor\n")...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Data;Valor\n", readAll(t, r))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Descrição" in Windows-1252: ç = 0xE7, ã = 0xE3.
	in := []byte{'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', '\n'}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Descrição\n", readAll(t, r))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	var in []byte
	in = append(in, 0xFF, 0xFE)
	for _, r := range "Data;Valor\n" {
		in = append(in, byte(r), 0x00)
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Data;Valor\n", readAll(t, r))
}
