package elf

const (
	Elf32ProgramHeaderEntrySize = 0x20
	Elf64ProgramHeaderEntrySize = 0x38
)

// Byte offsets within a program header entry.  Note that elf32 places p_flags
// after p_memsz while elf64 places it right after p_type.
type programHeaderLayout struct {
	size            uint64
	flags           uint64 // p_flags
	offset          uint64 // p_offset
	virtualAddress  uint64 // p_vaddr
	physicalAddress uint64 // p_paddr
	fileSize        uint64 // p_filesz
	memorySize      uint64 // p_memsz
	alignment       uint64 // p_align
}

var (
	elf32ProgramHeaderLayout = programHeaderLayout{
		size:            Elf32ProgramHeaderEntrySize,
		offset:          0x04,
		virtualAddress:  0x08,
		physicalAddress: 0x0c,
		fileSize:        0x10,
		memorySize:      0x14,
		flags:           0x18,
		alignment:       0x1c,
	}

	elf64ProgramHeaderLayout = programHeaderLayout{
		size:            Elf64ProgramHeaderEntrySize,
		flags:           0x04,
		offset:          0x08,
		virtualAddress:  0x10,
		physicalAddress: 0x18,
		fileSize:        0x20,
		memorySize:      0x28,
		alignment:       0x30,
	}
)

// Elf32_Phdr / Elf64_Phdr
type ProgramHeaderEntry struct {
	Type            SegmentType  // p_type
	Flags           SegmentFlags // p_flags
	Offset          Word         // p_offset
	VirtualAddress  Word         // p_vaddr
	PhysicalAddress Word         // p_paddr
	FileSize        Word         // p_filesz
	MemorySize      Word         // p_memsz
	Alignment       Word         // p_align
}

// Contains reports whether the virtual address is backed by the segment's
// file image.
func (entry ProgramHeaderEntry) Contains(address uint64) bool {
	start := entry.VirtualAddress.Uint64()
	return start <= address && address-start < entry.FileSize.Uint64()
}

// Entries are in file order, which is also the loader's order.
type ProgramHeaderTable []ProgramHeaderEntry

func DecodeProgramHeaderTable(
	content []byte,
	info ProgramHeaderInfo,
	is32Bit bool,
	isLittleEndian bool,
) (
	ProgramHeaderTable,
	error,
) {
	tableOffset := info.Offset.Uint64()
	err := checkBounds(
		"program header",
		content,
		tableOffset,
		uint64(info.EntrySize))
	if err != nil {
		return nil, err
	}

	layout := elf64ProgramHeaderLayout
	if is32Bit {
		layout = elf32ProgramHeaderLayout
	}

	table := make(ProgramHeaderTable, 0, info.Entries)
	for idx := uint64(0); idx < uint64(info.Entries); idx++ {
		entryOffset := tableOffset + idx*uint64(info.EntrySize)
		err := checkBounds(
			"program header entry",
			content,
			entryOffset,
			layout.size)
		if err != nil {
			return nil, err
		}

		reader := fieldReader{
			content:        content,
			base:           entryOffset,
			isLittleEndian: isLittleEndian,
		}

		segType, err := DecodeSegmentType(reader.u32(0))
		if err != nil {
			return nil, err
		}

		table = append(
			table,
			ProgramHeaderEntry{
				Type:            segType,
				Flags:           SegmentFlags(reader.u32(layout.flags)),
				Offset:          reader.word(is32Bit, layout.offset),
				VirtualAddress:  reader.word(is32Bit, layout.virtualAddress),
				PhysicalAddress: reader.word(is32Bit, layout.physicalAddress),
				FileSize:        reader.word(is32Bit, layout.fileSize),
				MemorySize:      reader.word(is32Bit, layout.memorySize),
				Alignment:       reader.word(is32Bit, layout.alignment),
			})
	}

	return table, nil
}

// LoadableSegment returns the PT_LOAD entry whose file image backs the
// virtual address.
func (table ProgramHeaderTable) LoadableSegment(
	address uint64,
) (
	ProgramHeaderEntry,
	bool,
) {
	for _, entry := range table {
		if entry.Type == SegmentTypeLoadable && entry.Contains(address) {
			return entry, true
		}
	}

	return ProgramHeaderEntry{}, false
}

// FileOffset translates a virtual address into a file offset through the
// loadable segments.
func (table ProgramHeaderTable) FileOffset(address uint64) (uint64, bool) {
	entry, ok := table.LoadableSegment(address)
	if !ok {
		return 0, false
	}

	return entry.Offset.Uint64() + (address - entry.VirtualAddress.Uint64()), true
}
