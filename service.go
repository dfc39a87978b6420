package huffman

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// A Service encodes many independent inputs, memoizing built trees and code
// tables per frequency signature. Trees are a deterministic function of the
// frequency table, so a cache hit yields exactly the codes a fresh build
// would. A Service is safe for concurrent use.
type Service struct {
	cache *lru.Cache[string, *codec]
}

type codec struct {
	tree  *Tree
	steps []BuildStep
	codes CodeTable
}

// NewService returns a Service whose cache holds up to cacheSize distinct
// frequency signatures.
func NewService(cacheSize int) (*Service, error) {
	cache, err := lru.New[string, *codec](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return &Service{cache: cache}, nil
}

// signature is the cache key of a frequency table: code points in ascending
// order, each with its count.
func signature(freq FrequencyTable) string {
	symbols := make([]rune, 0, len(freq))
	for r := range freq {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var b strings.Builder
	for _, r := range symbols {
		fmt.Fprintf(&b, "%d:%d;", r, freq[r])
	}
	return b.String()
}

func (s *Service) codecFor(freq FrequencyTable) (*codec, error) {
	key := signature(freq)
	if c, ok := s.cache.Get(key); ok {
		return c, nil
	}
	tree, steps, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	c := &codec{tree: tree, steps: steps, codes: tree.Codes()}
	s.cache.Add(key, c)
	return c, nil
}

// Encode runs the encode pipeline on text, reusing a cached tree and code
// table when one exists for the input's frequency signature.
func (s *Service) Encode(text string) (*Result, error) {
	freq := CountFrequencies(text)
	c, err := s.codecFor(freq)
	if err != nil {
		return nil, err
	}
	encoded, err := EncodeText(text, c.codes)
	if err != nil {
		return nil, err
	}
	return &Result{
		EncodedData:   encoded,
		CRC:           Checksum([]byte(text)),
		Codes:         c.codes.Strings(),
		TreeDOTBase64: TreeDOTBase64(c.tree),
		Frequencies:   freq.Strings(),
		Probabilities: Probabilities(freq).Strings(),
		BuildSteps:    c.steps,
	}, nil
}

// EncodeBatch encodes each input concurrently. Each input runs its own
// pipeline with no shared mutable state beyond the codec cache. Results are
// returned in input order; the first error aborts the batch.
func (s *Service) EncodeBatch(texts []string) ([]*Result, error) {
	results := make([]*Result, len(texts))
	errs := make([]error, len(texts))
	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i], errs[i] = s.Encode(text)
		}(i, text)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
