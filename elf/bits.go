package elf

import (
	"encoding/binary"
)

func byteOrder(isLittleEndian bool) binary.ByteOrder {
	if isLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func Uint16(b [2]byte, isLittleEndian bool) uint16 {
	return byteOrder(isLittleEndian).Uint16(b[:])
}

func Uint32(b [4]byte, isLittleEndian bool) uint32 {
	return byteOrder(isLittleEndian).Uint32(b[:])
}

func Uint64(b [8]byte, isLittleEndian bool) uint64 {
	return byteOrder(isLittleEndian).Uint64(b[:])
}

// Uint64FromHalves composes high<<32 | low, where each half is independently
// decoded with the given byte order.
func Uint64FromHalves(high [4]byte, low [4]byte, isLittleEndian bool) uint64 {
	return uint64(Uint32(high, isLittleEndian))<<32 |
		uint64(Uint32(low, isLittleEndian))
}

// The window helpers below assume the caller has already bounds checked
// [offset, offset+N).

func window2(content []byte, offset uint64) [2]byte {
	var result [2]byte
	copy(result[:], content[offset:offset+2])
	return result
}

func window4(content []byte, offset uint64) [4]byte {
	var result [4]byte
	copy(result[:], content[offset:offset+4])
	return result
}

func window8(content []byte, offset uint64) [8]byte {
	var result [8]byte
	copy(result[:], content[offset:offset+8])
	return result
}

// fieldReader decodes fields relative to a base offset using a fixed byte
// order.
type fieldReader struct {
	content        []byte
	base           uint64
	isLittleEndian bool
}

func (reader fieldReader) u16(offset uint64) uint16 {
	return Uint16(window2(reader.content, reader.base+offset), reader.isLittleEndian)
}

func (reader fieldReader) u32(offset uint64) uint32 {
	return Uint32(window4(reader.content, reader.base+offset), reader.isLittleEndian)
}

func (reader fieldReader) word32(offset uint64) Word {
	return NewWord32(window4(reader.content, reader.base+offset), reader.isLittleEndian)
}

func (reader fieldReader) word64(offset uint64) Word {
	return NewWord64(window8(reader.content, reader.base+offset), reader.isLittleEndian)
}

// word reads a 4 byte word for elf32 files and an 8 byte word for elf64 files.
func (reader fieldReader) word(is32Bit bool, offset uint64) Word {
	if is32Bit {
		return reader.word32(offset)
	}
	return reader.word64(offset)
}
