package elf

const (
	e_type    = 0x10
	e_machine = 0x12
	e_version = 0x14
	e_entry   = 0x18

	// Large enough to hold either an elf32 or an elf64 header (i.e., the end
	// of elf64's e_shstrndx).
	FileHeaderMinSize = 0x40
)

// Byte offsets of the class dependent e_phoff ... e_shstrndx fields.
type headerLayout struct {
	programHeaderOffset    uint64 // e_phoff
	sectionHeaderOffset    uint64 // e_shoff
	flags                  uint64 // e_flags
	headerSize             uint64 // e_ehsize
	programHeaderEntrySize uint64 // e_phentsize
	numProgramHeaders      uint64 // e_phnum
	sectionHeaderEntrySize uint64 // e_shentsize
	numSectionHeaders      uint64 // e_shnum
	sectionNamesIndex      uint64 // e_shstrndx
}

var (
	elf32HeaderLayout = headerLayout{
		programHeaderOffset:    0x1c,
		sectionHeaderOffset:    0x20,
		flags:                  0x24,
		headerSize:             0x28,
		programHeaderEntrySize: 0x2a,
		numProgramHeaders:      0x2c,
		sectionHeaderEntrySize: 0x2e,
		numSectionHeaders:      0x30,
		sectionNamesIndex:      0x32,
	}

	elf64HeaderLayout = headerLayout{
		programHeaderOffset:    0x20,
		sectionHeaderOffset:    0x28,
		flags:                  0x30,
		headerSize:             0x34,
		programHeaderEntrySize: 0x36,
		numProgramHeaders:      0x38,
		sectionHeaderEntrySize: 0x3a,
		numSectionHeaders:      0x3c,
		sectionNamesIndex:      0x3e,
	}
)

// Location and geometry of the program header table.
type ProgramHeaderInfo struct {
	Offset    Word   // e_phoff
	Entries   uint16 // e_phnum
	EntrySize uint16 // e_phentsize
}

// Location and geometry of the section header table.
type SectionHeaderInfo struct {
	Offset     Word   // e_shoff
	Entries    uint16 // e_shnum
	EntrySize  uint16 // e_shentsize
	NamesIndex uint16 // e_shstrndx
}

// Elf32_Ehdr / Elf64_Ehdr
type FileHeader struct {
	Identifier                       // e_ident[EI_NIDENT]
	Type           ObjectType        // e_type
	Machine        Machine           // e_machine
	Version        uint32            // e_version
	EntryPoint     Word              // e_entry
	Flags          uint32            // e_flags
	HeaderSize     uint16            // e_ehsize
	ProgramHeaders ProgramHeaderInfo // e_phoff, e_phentsize, e_phnum
	SectionHeaders SectionHeaderInfo // e_shoff, e_shentsize, e_shnum, e_shstrndx
}

func DecodeFileHeader(content []byte) (*FileHeader, error) {
	if len(content) < FileHeaderMinSize {
		return nil, newTooShortError(
			"elf header",
			FileHeaderMinSize,
			len(content))
	}

	id, err := DecodeIdentifier(content)
	if err != nil {
		return nil, err
	}

	is32Bit := id.Is32Bit()
	reader := fieldReader{
		content:        content,
		isLittleEndian: id.IsLittleEndian(),
	}

	// NOTE: e_type and e_machine use the file's byte order like every other
	// multi-byte field.
	objType, err := DecodeObjectType(reader.u16(e_type))
	if err != nil {
		return nil, err
	}

	machine, err := DecodeMachine(reader.u16(e_machine))
	if err != nil {
		return nil, err
	}

	// e_entry is read as two 4-byte windows.  The window at the lower address
	// holds the high half only for big endian files.  elf32 files only use the
	// first window.
	first := window4(content, e_entry)
	second := window4(content, e_entry+4)
	high, low := first, second
	if is32Bit {
		low = first
	} else if id.IsLittleEndian() {
		high, low = second, first
	}

	layout := elf64HeaderLayout
	if is32Bit {
		layout = elf32HeaderLayout
	}

	return &FileHeader{
		Identifier: id,
		Type:       objType,
		Machine:    machine,
		Version:    reader.u32(e_version),
		EntryPoint: NewWordFromHalves(high, low, is32Bit, id.IsLittleEndian()),
		Flags:      reader.u32(layout.flags),
		HeaderSize: reader.u16(layout.headerSize),
		ProgramHeaders: ProgramHeaderInfo{
			Offset:    reader.word(is32Bit, layout.programHeaderOffset),
			Entries:   reader.u16(layout.numProgramHeaders),
			EntrySize: reader.u16(layout.programHeaderEntrySize),
		},
		SectionHeaders: SectionHeaderInfo{
			Offset:     reader.word(is32Bit, layout.sectionHeaderOffset),
			Entries:    reader.u16(layout.numSectionHeaders),
			EntrySize:  reader.u16(layout.sectionHeaderEntrySize),
			NamesIndex: reader.u16(layout.sectionNamesIndex),
		},
	}, nil
}

func (header *FileHeader) ProgramHeaderOffset() Word {
	return header.ProgramHeaders.Offset
}

func (header *FileHeader) ProgramHeaderEntries() uint16 {
	return header.ProgramHeaders.Entries
}

func (header *FileHeader) ProgramHeaderSize() uint16 {
	return header.ProgramHeaders.EntrySize
}

func (header *FileHeader) SectionHeaderOffset() Word {
	return header.SectionHeaders.Offset
}

func (header *FileHeader) SectionHeaderEntries() uint16 {
	return header.SectionHeaders.Entries
}

func (header *FileHeader) SectionHeaderSize() uint16 {
	return header.SectionHeaders.EntrySize
}

func (header *FileHeader) SectionNamesIndex() uint16 {
	return header.SectionHeaders.NamesIndex
}
