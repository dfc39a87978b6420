package huffman

import (
	"fmt"

	"github.com/pkg/errors"
)

// crcPoly is the CRC-32 generator polynomial x^32+x^26+x^23+x^22+x^16+
// x^12+x^11+x^10+x^8+x^7+x^5+x^4+x^2+x+1, masked to its low 32 bits.
// Together with the all-ones initial register and final mask and the
// MSB-first bit order, this is the CRC-32/BZIP2 parameterization.
// hash/crc32 cannot be used here: it processes bits in reflected order.
const crcPoly uint32 = 0x04C11DB7

var crcTable = makeCRCTable()

// makeCRCTable precomputes the register change for each possible high byte,
// equivalent to running the bit-wise loop eight times.
func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		r := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if r&0x80000000 != 0 {
				r = r<<1 ^ crcPoly
			} else {
				r <<= 1
			}
		}
		table[i] = r
	}
	return table
}

// Checksum computes the CRC-32 of data. Checksum(nil) is 0, the initial
// register XOR-ed with the final mask.
func Checksum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	return ^crc
}

// ErrChecksumMismatch is returned by VerifyChecksum when the computed
// checksum differs from the expected one.
var ErrChecksumMismatch = fmt.Errorf("checksum mismatch")

// VerifyChecksum checks data against an expected checksum.
func VerifyChecksum(data []byte, want uint32) error {
	if got := Checksum(data); got != want {
		return errors.Wrapf(ErrChecksumMismatch, "got %08x, want %08x", got, want)
	}
	return nil
}
