package elf

import (
	"fmt"
)

// Word holds a value whose storage width depends on the elf class
// (addresses, offsets, sizes).  The zero value is a 32-bit zero.
type Word struct {
	value uint64
	is64  bool
}

func Word32(value uint32) Word {
	return Word{value: uint64(value)}
}

func Word64(value uint64) Word {
	return Word{value: value, is64: true}
}

func NewWord32(b [4]byte, isLittleEndian bool) Word {
	return Word32(Uint32(b, isLittleEndian))
}

func NewWord64(b [8]byte, isLittleEndian bool) Word {
	return Word64(Uint64(b, isLittleEndian))
}

// NewWordFromHalves builds a word from two 4-byte windows.  elf32 words only
// use the low window.
func NewWordFromHalves(
	high [4]byte,
	low [4]byte,
	is32Bit bool,
	isLittleEndian bool,
) Word {
	if is32Bit {
		return NewWord32(low, isLittleEndian)
	}
	return Word64(Uint64FromHalves(high, low, isLittleEndian))
}

func (word Word) Is64() bool {
	return word.is64
}

func (word Word) Uint32() (uint32, error) {
	if word.is64 {
		return 0, ErrWordNarrowing
	}
	return uint32(word.value), nil
}

func (word Word) Uint64() uint64 {
	return word.value
}

func (word Word) String() string {
	if word.is64 {
		return fmt.Sprintf("0x%016x", word.value)
	}
	return fmt.Sprintf("0x%08x", word.value)
}

func (word Word) MarshalYAML() (interface{}, error) {
	return word.String(), nil
}
