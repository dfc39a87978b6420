package huffman

import "github.com/pkg/errors"

// StreamEncode encodes symbols received from src, sending each symbol's code
// to dst one '0'/'1' byte at a time.
// StreamEncode consumes src until it is closed, and closes dst when there are
// no more bits to be sent to it. An unknown symbol aborts the stream; bits
// already sent for earlier symbols stay valid.
func StreamEncode(dst chan<- byte, src <-chan rune, codes CodeTable) error {
	defer close(dst)
	for r := range src {
		code, ok := codes[r]
		if !ok {
			return errors.Wrapf(ErrUnknownSymbol, "symbol %q", r)
		}
		for i := 0; i < len(code); i++ {
			dst <- code[i]
		}
	}
	return nil
}

// StreamDecode decodes '0'/'1' bytes received from src, sending each decoded
// symbol to dst.
// StreamDecode consumes src until it is closed, and closes dst when the
// decoding is complete. ErrIncompleteStream is returned if src closes in the
// middle of a code.
func StreamDecode(dst chan<- rune, src <-chan byte, codes CodeTable) error {
	defer close(dst)
	inv, err := inverse(codes)
	if err != nil {
		return err
	}

	buf := make([]byte, 0, 8)
	for bit := range src {
		if bit != '0' && bit != '1' {
			return errors.Errorf("invalid bit %q", bit)
		}
		buf = append(buf, bit)
		if r, ok := inv[string(buf)]; ok {
			dst <- r
			buf = buf[:0]
		}
	}
	if len(buf) != 0 {
		return errors.Wrapf(ErrIncompleteStream, "%d unmatched trailing bits", len(buf))
	}
	return nil
}
