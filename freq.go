package huffman

// A FrequencyTable maps each symbol to its number of occurrences.
type FrequencyTable map[rune]int

// A ProbabilityTable maps each symbol to its relative frequency.
type ProbabilityTable map[rune]float64

// CountFrequencies tallies the occurrences of each code point in text.
// The sum of the returned counts equals the number of runes in text.
func CountFrequencies(text string) FrequencyTable {
	freq := FrequencyTable{}
	for _, r := range text {
		freq[r]++
	}
	return freq
}

// Probabilities derives the relative frequency of each symbol in freq.
// The returned values sum to 1 for a non-empty table.
// An empty table yields an empty table rather than dividing by zero.
func Probabilities(freq FrequencyTable) ProbabilityTable {
	total := 0
	for _, n := range freq {
		total += n
	}
	probs := make(ProbabilityTable, len(freq))
	if total == 0 {
		return probs
	}
	for r, n := range freq {
		probs[r] = float64(n) / float64(total)
	}
	return probs
}

// Strings returns the table keyed by the symbol's string form, for JSON
// transport.
func (f FrequencyTable) Strings() map[string]int {
	m := make(map[string]int, len(f))
	for r, n := range f {
		m[string(r)] = n
	}
	return m
}

// Strings returns the table keyed by the symbol's string form, for JSON
// transport.
func (p ProbabilityTable) Strings() map[string]float64 {
	m := make(map[string]float64, len(p))
	for r, v := range p {
		m[string(r)] = v
	}
	return m
}
