package huffman

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownSymbol is returned when the encoder meets a symbol its code
// table does not cover.
var ErrUnknownSymbol = fmt.Errorf("code table does not cover input alphabet")

// ErrAmbiguousCode is returned when a code table cannot be decoded
// unambiguously: duplicate codes, codes that are prefixes of other codes,
// empty codes, or codes containing non-binary digits.
var ErrAmbiguousCode = fmt.Errorf("ambiguous code table")

// ErrIncompleteStream is returned when a bit-string ends in the middle of a
// code.
var ErrIncompleteStream = fmt.Errorf("incomplete trailing code")

// EncodeText concatenates the code of each symbol in text, in input order.
func EncodeText(text string, codes CodeTable) (string, error) {
	var b strings.Builder
	for _, r := range text {
		code, ok := codes[r]
		if !ok {
			return "", errors.Wrapf(ErrUnknownSymbol, "symbol %q", r)
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

// inverse builds the code-to-symbol map a greedy decoder matches against,
// rejecting tables that would make decoding ambiguous.
func inverse(codes CodeTable) (map[string]rune, error) {
	inv := make(map[string]rune, len(codes))
	for r, code := range codes {
		if code == "" {
			return nil, errors.Wrapf(ErrAmbiguousCode, "empty code for symbol %q", r)
		}
		for i := 0; i < len(code); i++ {
			if code[i] != '0' && code[i] != '1' {
				return nil, errors.Wrapf(ErrAmbiguousCode, "non-binary code %q for symbol %q", code, r)
			}
		}
		if prev, ok := inv[code]; ok {
			return nil, errors.Wrapf(ErrAmbiguousCode, "symbols %q and %q share code %q", prev, r, code)
		}
		inv[code] = r
	}
	for code := range inv {
		for i := 1; i < len(code); i++ {
			if _, ok := inv[code[:i]]; ok {
				return nil, errors.Wrapf(ErrAmbiguousCode, "code %q is a prefix of %q", code[:i], code)
			}
		}
	}
	return inv, nil
}

// DecodeText reconstructs the symbol sequence from a bit-string by greedy
// prefix matching against codes. An empty bit-string decodes to the empty
// string. Bits left unmatched at the end of the stream are an
// ErrIncompleteStream; they are never silently dropped.
func DecodeText(bits string, codes CodeTable) (string, error) {
	inv, err := inverse(codes)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	start := 0
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return "", errors.Errorf("invalid bit %q at offset %d", bits[i], i)
		}
		if r, ok := inv[bits[start:i+1]]; ok {
			out.WriteRune(r)
			start = i + 1
		}
	}
	if start != len(bits) {
		return "", errors.Wrapf(ErrIncompleteStream, "%d unmatched trailing bits", len(bits)-start)
	}
	return out.String(), nil
}
