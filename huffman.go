// Package huffman builds prefix-free binary codes from symbol frequencies and
// encodes and decodes text with them.
// A CRC-32 checksum over the raw input bytes is computed alongside the encoding
// for integrity verification; it plays no role in decoding.
//
// Below is an example of encoding and decoding a string:
//	result, err := huffman.Encode("abracadabra")
//	...
//	decoded, err := huffman.DecodeText(result.EncodedData, codes)
//
// Symbols are Unicode code points, so multi-byte UTF-8 input is counted per
// code point, not per byte. The checksum runs over the raw UTF-8 bytes.
package huffman

// Encode runs the full encoding pipeline on text: frequency counting, tree
// construction, code generation, bit-string encoding and checksumming.
// Empty text is rejected with ErrEmptyAlphabet since no tree can be built
// over zero symbols.
func Encode(text string) (*Result, error) {
	freq := CountFrequencies(text)
	probs := Probabilities(freq)
	tree, steps, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	codes := tree.Codes()
	encoded, err := EncodeText(text, codes)
	if err != nil {
		return nil, err
	}
	return &Result{
		EncodedData:   encoded,
		CRC:           Checksum([]byte(text)),
		Codes:         codes.Strings(),
		TreeDOTBase64: TreeDOTBase64(tree),
		Frequencies:   freq.Strings(),
		Probabilities: probs.Strings(),
		BuildSteps:    steps,
	}, nil
}

// Decode reconstructs the text that was encoded as bits using codes.
func Decode(bits string, codes CodeTable) (*Result, error) {
	decoded, err := DecodeText(bits, codes)
	if err != nil {
		return nil, err
	}
	return &Result{DecodedData: decoded}, nil
}
