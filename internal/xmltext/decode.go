package xmltext

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode normalizes raw document bytes to text starting at the first markup
// character. A UTF-8 or UTF-16 byte-order mark selects the source encoding,
// the input is transcoded to UTF-8 and the mark removed. Input without a
// mark passes through untouched so a declared charset can still apply.
// Anything before the first '<' is discarded.
func Decode(data []byte) ([]byte, error) {
	out, err := decodeBOM(data)
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(out, MarkupStart); i > 0 {
		out = out[i:]
	}
	return out, nil
}

// decodeBOM transcodes input carrying a byte-order mark to UTF-8 and drops
// the mark. Nothing else is removed.
func decodeBOM(data []byte) ([]byte, error) {
	dec := unicode.BOMOverride(transform.Nop)
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return out, nil
}

// charsetReader returns a reader that converts input in the named charset to
// UTF-8, for documents whose declaration names a non-UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(label), utf16Label) {
		// Decode has already transcoded UTF-16 input
		return input, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
