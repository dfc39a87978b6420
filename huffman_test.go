package huffman

import (
	"math"
	"strings"
	"testing"

	hf "github.com/icza/huffman"
	"github.com/pkg/errors"
)

func TestAbracadabra(t *testing.T) {
	const text = "abracadabra"

	freq := CountFrequencies(text)
	want := map[rune]int{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	if len(freq) != len(want) {
		t.Fatalf("%v", freq)
	}
	for r, n := range want {
		if freq[r] != n {
			t.Errorf("%q: %d, want %d", r, freq[r], n)
		}
	}

	total := 0
	for _, n := range freq {
		total += n
	}
	if total != len(text) {
		t.Errorf("%d, want %d", total, len(text))
	}

	probs := Probabilities(freq)
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("%f", sum)
	}

	tree, steps, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(tree.Nodes) != 9 {
		t.Errorf("%d nodes", len(tree.Nodes))
	}
	// One snapshot before any merges, one after each of the k-1 merges.
	if len(steps) != 5 {
		t.Errorf("%d steps", len(steps))
	}
	last := steps[len(steps)-1]
	if len(last.Heap) != 1 || last.Heap[0].Label != "*" || last.Heap[0].Freq != len(text) {
		t.Errorf("%+v", last)
	}

	codes := tree.Codes()
	checkPrefixFree(t, codes)

	encoded, err := EncodeText(text, codes)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(encoded) != 23 {
		t.Errorf("%d bits", len(encoded))
	}
	decoded, err := DecodeText(encoded, codes)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if decoded != text {
		t.Errorf("%q", decoded)
	}
}

func checkPrefixFree(t *testing.T, codes CodeTable) {
	t.Helper()
	for r1, c1 := range codes {
		if c1 == "" {
			t.Errorf("empty code for %q", r1)
		}
		for r2, c2 := range codes {
			if r1 == r2 {
				continue
			}
			if strings.HasPrefix(c2, c1) {
				t.Errorf("code %q of %q is a prefix of code %q of %q", c1, r1, c2, r2)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"ab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"mississippi",
		"héllo wörld",
		"xin chào thế giới",
		"aaaaaaaaaaaaaaaaaaaab",
		"0101010101",
	}
	for _, text := range texts {
		result, err := Encode(text)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		codes, err := ParseCodeTable(result.Codes)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		decoded, err := DecodeText(result.EncodedData, codes)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if decoded != text {
			t.Errorf("%q != %q", decoded, text)
		}
		if result.CRC != Checksum([]byte(text)) {
			t.Errorf("%q: crc %08x", text, result.CRC)
		}
	}
}

func TestTreeSizeInvariant(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	for k := 1; k <= len(alphabet); k++ {
		freq := FrequencyTable{}
		for i := 0; i < k; i++ {
			freq[rune(alphabet[i])] = i + 1
		}
		tree, _, err := BuildTree(freq)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		if len(tree.Nodes) != 2*k-1 {
			t.Errorf("k=%d: %d nodes", k, len(tree.Nodes))
		}
		leaves, internal := 0, 0
		for _, n := range tree.Nodes {
			if n.Leaf {
				leaves++
			} else {
				internal++
				if n.Freq != tree.Nodes[n.Left].Freq+tree.Nodes[n.Right].Freq {
					t.Errorf("k=%d: internal frequency mismatch", k)
				}
			}
		}
		if leaves != k || internal != k-1 {
			t.Errorf("k=%d: %d leaves, %d internal", k, leaves, internal)
		}
		checkPrefixFree(t, tree.Codes())
	}
}

func TestSingleSymbol(t *testing.T) {
	const text = "aaaa"
	result, err := Encode(text)
	if err != nil {
		t.Fatalf("%v", err)
	}
	code, ok := result.Codes["a"]
	if !ok || len(code) != 1 {
		t.Fatalf("%v", result.Codes)
	}
	if len(result.EncodedData) != 4 {
		t.Errorf("%q", result.EncodedData)
	}
	codes, err := ParseCodeTable(result.Codes)
	if err != nil {
		t.Fatalf("%v", err)
	}
	decoded, err := DecodeText(result.EncodedData, codes)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if decoded != text {
		t.Errorf("%q", decoded)
	}
}

func TestEmptyInput(t *testing.T) {
	if freq := CountFrequencies(""); len(freq) != 0 {
		t.Errorf("%v", freq)
	}
	if probs := Probabilities(FrequencyTable{}); len(probs) != 0 {
		t.Errorf("%v", probs)
	}
	if _, _, err := BuildTree(FrequencyTable{}); errors.Cause(err) != ErrEmptyAlphabet {
		t.Errorf("%v", err)
	}
	if _, err := Encode(""); errors.Cause(err) != ErrEmptyAlphabet {
		t.Errorf("%v", err)
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	codes := CodeTable{'a': "0", 'b': "1"}
	if _, err := EncodeText("abc", codes); errors.Cause(err) != ErrUnknownSymbol {
		t.Errorf("%v", err)
	}
}

func TestBuildStepsOrdered(t *testing.T) {
	freq := CountFrequencies("abracadabra")
	_, steps, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("%v", err)
	}
	for _, step := range steps {
		for i := 1; i < len(step.Heap); i++ {
			if step.Heap[i-1].Freq > step.Heap[i].Freq {
				t.Errorf("step %d not sorted: %+v", step.Step, step.Heap)
			}
		}
	}
	// Each merge shrinks the pool by one.
	for i := 1; i < len(steps); i++ {
		if len(steps[i].Heap) != len(steps[i-1].Heap)-1 {
			t.Errorf("step %d: pool size %d after %d", i, len(steps[i].Heap), len(steps[i-1].Heap))
		}
	}
}

// TestOptimality cross-checks the weighted code length of our trees against
// the github.com/icza/huffman reference builder. Both trees are optimal, so
// the totals must agree even when tie-breaking differs.
func TestOptimality(t *testing.T) {
	texts := []string{
		"abracadabra",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"aabbbccccdddddeeeeee",
	}
	for _, text := range texts {
		freq := CountFrequencies(text)
		tree, _, err := BuildTree(freq)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		ours := 0
		for r, code := range tree.Codes() {
			ours += freq[r] * len(code)
		}

		leaves := make([]*hf.Node, 0, len(freq))
		for r, n := range freq {
			leaves = append(leaves, &hf.Node{Value: hf.ValueType(r), Count: n})
		}
		// Build modifies the contents of the slice it is given; pass a copy
		// so leaves still holds the original leaf nodes afterwards.
		hf.Build(append([]*hf.Node(nil), leaves...))
		theirs := 0
		for _, leaf := range leaves {
			_, bits := leaf.Code()
			theirs += leaf.Count * int(bits)
		}

		if ours != theirs {
			t.Errorf("%q: weighted length %d, reference %d", text, ours, theirs)
		}
	}
}
