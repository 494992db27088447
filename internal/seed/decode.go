package seed

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	sniffSize       = 4096
	fallbackCharset = "windows-1252"
)

var byteOrderMarks = []struct {
	mark []byte
	enc  encoding.Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, unicode.UTF8BOM},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
}

// utf8Reader wraps r so that it yields UTF-8 whatever charset the file was
// saved in. A byte order mark wins, then plain UTF-8, then the chardet guess
// resolved through the WHATWG encoding index. Anything else is read as
// Windows-1252, which is what spreadsheet exports most often are.
func utf8Reader(name string, r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sniffing %s: %w", name, err)
	}

	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(head, bom.mark) {
			return transform.NewReader(br, bom.enc.NewDecoder()), nil
		}
	}

	if len(head) == sniffSize {
		head = completeRunes(head)
	}

	if utf8.Valid(head) {
		return br, nil
	}

	charset, enc := detect(head)
	slog.Debug("decoding seed file", "file", name, "charset", charset)

	return transform.NewReader(br, enc.NewDecoder()), nil
}

// completeRunes drops a multi-byte sequence cut off at the end of b.
func completeRunes(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		start := len(b) - i
		if !utf8.RuneStart(b[start]) {
			continue
		}

		if !utf8.FullRune(b[start:]) {
			return b[:start]
		}

		break
	}

	return b
}

func detect(head []byte) (string, encoding.Encoding) {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return fallbackCharset, charmap.Windows1252
	}

	enc, err := htmlindex.Get(result.Charset)
	if err != nil || enc == nil {
		return fallbackCharset, charmap.Windows1252
	}

	return result.Charset, enc
}
