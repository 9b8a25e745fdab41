package elf

import (
	"encoding/binary"
)

// Helpers for assembling synthetic elf images in tests.

type testSegment struct {
	segType         uint32
	flags           uint32
	offset          uint64
	virtualAddress  uint64
	physicalAddress uint64
	fileSize        uint64
	memorySize      uint64
	alignment       uint64
}

type testSection struct {
	name             string
	sectionType      uint32
	flags            uint64
	address          uint64
	offset           uint64
	size             uint64
	link             uint32
	info             uint32
	addressAlignment uint64
	entrySize        uint64
}

type testFile struct {
	is32Bit        bool
	isLittleEndian bool

	abi        byte
	objectType uint16
	machine    uint16
	entryPoint uint64
	flags      uint32

	segments []testSegment

	// The section at namesIndex is turned into the section name string table.
	sections   []testSection
	namesIndex uint16
}

type testImage struct {
	content []byte
	is32Bit bool
	order   binary.ByteOrder
}

func (image *testImage) grow(size uint64) {
	if uint64(len(image.content)) < size {
		image.content = append(
			image.content,
			make([]byte, size-uint64(len(image.content)))...)
	}
}

func (image *testImage) put16(offset uint64, value uint16) {
	image.grow(offset + 2)
	image.order.PutUint16(image.content[offset:], value)
}

func (image *testImage) put32(offset uint64, value uint32) {
	image.grow(offset + 4)
	image.order.PutUint32(image.content[offset:], value)
}

func (image *testImage) put64(offset uint64, value uint64) {
	image.grow(offset + 8)
	image.order.PutUint64(image.content[offset:], value)
}

func (image *testImage) putWord(offset uint64, value uint64) {
	if image.is32Bit {
		image.put32(offset, uint32(value))
	} else {
		image.put64(offset, value)
	}
}

func (spec testFile) layouts() (
	headerLayout,
	programHeaderLayout,
	sectionHeaderLayout,
) {
	if spec.is32Bit {
		return elf32HeaderLayout,
			elf32ProgramHeaderLayout,
			elf32SectionHeaderLayout
	}
	return elf64HeaderLayout, elf64ProgramHeaderLayout, elf64SectionHeaderLayout
}

func (spec testFile) build() []byte {
	image := &testImage{
		is32Bit: spec.is32Bit,
		order:   binary.BigEndian,
	}
	if spec.isLittleEndian {
		image.order = binary.LittleEndian
	}

	header, phLayout, shLayout := spec.layouts()

	image.grow(FileHeaderMinSize)
	copy(image.content, IdentifierMagic[:])
	image.content[EI_CLASS] = byte(Class64)
	if spec.is32Bit {
		image.content[EI_CLASS] = byte(Class32)
	}
	image.content[EI_DATA] = byte(EndiannessBig)
	if spec.isLittleEndian {
		image.content[EI_DATA] = byte(EndiannessLittle)
	}
	image.content[EI_VERSION] = 1
	image.content[EI_OSABI] = spec.abi

	image.put16(e_type, spec.objectType)
	image.put16(e_machine, spec.machine)
	image.put32(e_version, 1)
	image.putWord(e_entry, spec.entryPoint)
	image.put32(header.flags, spec.flags)
	image.put16(header.headerSize, FileHeaderMinSize)

	phOffset := uint64(FileHeaderMinSize)
	if len(spec.segments) > 0 {
		image.putWord(header.programHeaderOffset, phOffset)
	}
	image.put16(header.programHeaderEntrySize, uint16(phLayout.size))
	image.put16(header.numProgramHeaders, uint16(len(spec.segments)))

	for idx, segment := range spec.segments {
		base := phOffset + uint64(idx)*phLayout.size
		image.put32(base, segment.segType)
		image.put32(base+phLayout.flags, segment.flags)
		image.putWord(base+phLayout.offset, segment.offset)
		image.putWord(base+phLayout.virtualAddress, segment.virtualAddress)
		image.putWord(base+phLayout.physicalAddress, segment.physicalAddress)
		image.putWord(base+phLayout.fileSize, segment.fileSize)
		image.putWord(base+phLayout.memorySize, segment.memorySize)
		image.putWord(base+phLayout.alignment, segment.alignment)
	}

	stringTable := []byte{0}
	nameOffsets := make([]uint32, len(spec.sections))
	for idx, section := range spec.sections {
		if section.name == "" {
			continue
		}
		nameOffsets[idx] = uint32(len(stringTable))
		stringTable = append(stringTable, []byte(section.name)...)
		stringTable = append(stringTable, 0)
	}

	stringTableOffset := phOffset + uint64(len(spec.segments))*phLayout.size
	image.grow(stringTableOffset)
	image.content = append(image.content, stringTable...)

	shOffset := (uint64(len(image.content)) + 7) &^ 7
	if len(spec.sections) > 0 {
		image.putWord(header.sectionHeaderOffset, shOffset)
	}
	image.put16(header.sectionHeaderEntrySize, uint16(shLayout.size))
	image.put16(header.numSectionHeaders, uint16(len(spec.sections)))
	image.put16(header.sectionNamesIndex, spec.namesIndex)

	for idx, section := range spec.sections {
		if idx == int(spec.namesIndex) {
			section.sectionType = uint32(SectionTypeStringTable)
			section.offset = stringTableOffset
			section.size = uint64(len(stringTable))
		}

		base := shOffset + uint64(idx)*shLayout.size
		image.grow(base + shLayout.size)
		image.put32(base, nameOffsets[idx])
		image.put32(base+0x04, section.sectionType)
		image.putWord(base+shLayout.flags, section.flags)
		image.putWord(base+shLayout.address, section.address)
		image.putWord(base+shLayout.offset, section.offset)
		image.putWord(base+shLayout.sectionSize, section.size)
		image.put32(base+shLayout.link, section.link)
		image.put32(base+shLayout.info, section.info)
		image.putWord(base+shLayout.addressAlignment, section.addressAlignment)
		image.putWord(base+shLayout.entrySize, section.entrySize)
	}

	return image.content
}
