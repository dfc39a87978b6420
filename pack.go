package huffman

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// PackBits packs a bit-string into bytes, most significant bit first.
// The returned pad count is the number of zero bits appended to fill the
// last byte; UnpackBits needs it to reconstruct the exact stream, since the
// encoded stream itself carries no end marker.
func PackBits(bits string) ([]byte, uint8, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			if err := w.WriteBool(false); err != nil {
				return nil, 0, errors.Wrap(err, "")
			}
		case '1':
			if err := w.WriteBool(true); err != nil {
				return nil, 0, errors.Wrap(err, "")
			}
		default:
			return nil, 0, errors.Errorf("invalid bit %q at offset %d", bits[i], i)
		}
	}
	if err := w.Close(); err != nil {
		return nil, 0, errors.Wrap(err, "")
	}
	pad := uint8((8 - len(bits)%8) % 8)
	return buf.Bytes(), pad, nil
}

// UnpackBits is the inverse of PackBits.
func UnpackBits(data []byte, pad uint8) (string, error) {
	if pad > 7 {
		return "", errors.Errorf("pad %d out of range", pad)
	}
	total := len(data)*8 - int(pad)
	if total < 0 {
		return "", errors.Errorf("pad %d exceeds stream length", pad)
	}

	r := bitio.NewReader(bytes.NewReader(data))
	var b strings.Builder
	b.Grow(total)
	for i := 0; i < total; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", errors.Wrap(err, "")
		}
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}
