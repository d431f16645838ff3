package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

// NewUTF8Reader wraps r so its content comes out as UTF-8, whatever
// the bank exported. Brazilian bank CSVs arrive in a mix of UTF-8
// (sometimes with a BOM), UTF-16 and Windows-1252/ISO-8859-1.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if dec, skip := bomDecoder(head); skip > 0 || dec != nil {
		if skip > 0 {
			_, _ = br.Discard(skip)
		}

		if dec == nil {
			return br, nil
		}

		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return transform.NewReader(br, sniffDecoder(head)), nil
}

// bomDecoder recognizes a byte order mark. For UTF-8 it returns only
// the number of bytes to strip; for UTF-16 it returns the decoder.
func bomDecoder(head []byte) (transform.Transformer, int) {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return nil, 3
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), 0
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), 0
	}

	return nil, 0
}

// sniffDecoder guesses a legacy charset for non-UTF-8 content.
// Windows-1252 is the fallback; it decodes any byte sequence and
// covers the accented Latin characters the banks actually emit.
func sniffDecoder(head []byte) transform.Transformer {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return charmap.Windows1252.NewDecoder()
	}

	switch result.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	default:
		return charmap.Windows1252.NewDecoder()
	}
}
