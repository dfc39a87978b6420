package huffman

// A Result is the transport record for one encode or decode run. The JSON
// field names are the wire format consumed by downstream tooling; symbol
// keyed tables are keyed by the symbol's string form since JSON object keys
// are strings.
type Result struct {
	EncodedData   string             `json:"encoded_data,omitempty"`
	DecodedData   string             `json:"decoded_data,omitempty"`
	CRC           uint32             `json:"crc,omitempty"`
	Codes         map[string]string  `json:"codes,omitempty"`
	TreeDOTBase64 string             `json:"tree_dot_base64,omitempty"`
	Frequencies   map[string]int     `json:"frequencies,omitempty"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	BuildSteps    []BuildStep        `json:"build_steps,omitempty"`
}
