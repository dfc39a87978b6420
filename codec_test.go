package huffman

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyStream(t *testing.T) {
	codes := CodeTable{'a': "0", 'b': "10"}
	decoded, err := DecodeText("", codes)
	require.NoError(t, err)
	require.Equal(t, "", decoded)
}

func TestDecodeIncompleteStream(t *testing.T) {
	codes := CodeTable{'a': "0", 'b': "10"}

	// "1" is a strict prefix of b's code with no continuation.
	_, err := DecodeText("1", codes)
	require.Error(t, err)
	require.Equal(t, ErrIncompleteStream, errors.Cause(err))

	// A valid prefix followed by a dangling bit.
	_, err = DecodeText("01", codes)
	require.Error(t, err)
	require.Equal(t, ErrIncompleteStream, errors.Cause(err))

	// The complete stream decodes fine.
	decoded, err := DecodeText("010", codes)
	require.NoError(t, err)
	require.Equal(t, "ab", decoded)
}

func TestDecodeAmbiguousTable(t *testing.T) {
	for name, codes := range map[string]CodeTable{
		"duplicate":   {'a': "01", 'b': "01"},
		"prefix":      {'a': "0", 'b': "01"},
		"empty code":  {'a': "", 'b': "1"},
		"non binary":  {'a': "0", 'b': "12"},
		"self prefix": {'a': "1", 'b': "10", 'c': "11"},
	} {
		_, err := DecodeText("0", codes)
		require.Error(t, err, name)
		require.Equal(t, ErrAmbiguousCode, errors.Cause(err), name)
	}
}

func TestDecodeInvalidBit(t *testing.T) {
	codes := CodeTable{'a': "0", 'b': "1"}
	_, err := DecodeText("0x1", codes)
	require.Error(t, err)
}

func TestDecodeGreedyPrefixMatch(t *testing.T) {
	codes := CodeTable{'a': "0", 'b': "10", 'c': "110", 'd': "111"}
	decoded, err := DecodeText("0"+"10"+"110"+"111"+"0", codes)
	require.NoError(t, err)
	require.Equal(t, "abcda", decoded)
}
