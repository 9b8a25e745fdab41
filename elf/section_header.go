package elf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

const (
	Elf32SectionHeaderEntrySize = 0x28
	Elf64SectionHeaderEntrySize = 0x40

	SectionIndexUndefined = 0 // SHN_UNDEF

	// Placeholder name for sections whose name cannot be resolved.
	UnresolvedName = "<unresolved>"
)

// Byte offsets within a section header entry.  sh_name and sh_type are at
// 0x0 and 0x4 for both classes.
type sectionHeaderLayout struct {
	size             uint64
	flags            uint64 // sh_flags
	address          uint64 // sh_addr
	offset           uint64 // sh_offset
	sectionSize      uint64 // sh_size
	link             uint64 // sh_link
	info             uint64 // sh_info
	addressAlignment uint64 // sh_addralign
	entrySize        uint64 // sh_entsize
}

var (
	elf32SectionHeaderLayout = sectionHeaderLayout{
		size:             Elf32SectionHeaderEntrySize,
		flags:            0x08,
		address:          0x0c,
		offset:           0x10,
		sectionSize:      0x14,
		link:             0x18,
		info:             0x1c,
		addressAlignment: 0x20,
		entrySize:        0x24,
	}

	elf64SectionHeaderLayout = sectionHeaderLayout{
		size:             Elf64SectionHeaderEntrySize,
		flags:            0x08,
		address:          0x10,
		offset:           0x18,
		sectionSize:      0x20,
		link:             0x28,
		info:             0x2c,
		addressAlignment: 0x30,
		entrySize:        0x38,
	}
)

// Elf32_Shdr / Elf64_Shdr
type SectionHeaderEntry struct {
	NameOffset       uint32      // sh_name
	Name             string      // resolved from the section name string table
	Type             SectionType // sh_type
	Flags            Word        // sh_flags
	Address          Word        // sh_addr
	Offset           Word        // sh_offset
	Size             Word        // sh_size
	Link             uint32      // sh_link
	Info             uint32      // sh_info
	AddressAlignment Word        // sh_addralign
	EntrySize        Word        // sh_entsize
}

func (entry SectionHeaderEntry) SectionFlags() SectionFlags {
	return SectionFlags(entry.Flags.Uint64())
}

// PrettyName demangles the c++ / rust symbol suffix of per-function and
// per-object sections (e.g., .text._ZN3foo3barEv -> .text.foo::bar()).
func (entry SectionHeaderEntry) PrettyName() string {
	idx := strings.Index(entry.Name, "._Z")
	if idx == -1 {
		idx = strings.Index(entry.Name, "._R")
	}
	if idx == -1 {
		return entry.Name
	}

	demangled, err := demangle.ToString(entry.Name[idx+1:])
	if err != nil {
		return entry.Name
	}

	return entry.Name[:idx+1] + demangled
}

type Warning struct {
	SectionIndex int // -1 when the warning applies to the whole table
	Message      string
}

func (warning Warning) String() string {
	if warning.SectionIndex < 0 {
		return warning.Message
	}
	return fmt.Sprintf("section [%d]: %s", warning.SectionIndex, warning.Message)
}

type SectionHeaderTable struct {
	// Entries are in file order.
	Entries []SectionHeaderEntry

	// Unresolvable names are reported here instead of failing the decode.
	Warnings []Warning

	stringBase     uint64
	hasStringTable bool
}

func DecodeSectionHeaderTable(
	content []byte,
	info SectionHeaderInfo,
	is32Bit bool,
	isLittleEndian bool,
) (
	*SectionHeaderTable,
	error,
) {
	tableOffset := info.Offset.Uint64()
	err := checkBounds(
		"section header",
		content,
		tableOffset,
		uint64(info.EntrySize))
	if err != nil {
		return nil, err
	}

	layout := elf64SectionHeaderLayout
	if is32Bit {
		layout = elf32SectionHeaderLayout
	}

	table := &SectionHeaderTable{
		Entries: make([]SectionHeaderEntry, 0, info.Entries),
	}

	// The names string table may appear anywhere in the table (including
	// after the entries referencing it).  All entries are decoded before any
	// name is resolved.
	for idx := uint64(0); idx < uint64(info.Entries); idx++ {
		entryOffset := tableOffset + idx*uint64(info.EntrySize)
		err := checkBounds(
			"section header entry",
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

		stype, err := DecodeSectionType(reader.u32(0x04))
		if err != nil {
			return nil, err
		}

		entry := SectionHeaderEntry{
			NameOffset:       reader.u32(0x00),
			Name:             UnresolvedName,
			Type:             stype,
			Flags:            reader.word(is32Bit, layout.flags),
			Address:          reader.word(is32Bit, layout.address),
			Offset:           reader.word(is32Bit, layout.offset),
			Size:             reader.word(is32Bit, layout.sectionSize),
			Link:             reader.u32(layout.link),
			Info:             reader.u32(layout.info),
			AddressAlignment: reader.word(is32Bit, layout.addressAlignment),
			EntrySize:        reader.word(is32Bit, layout.entrySize),
		}

		if stype == SectionTypeStringTable && idx == uint64(info.NamesIndex) {
			table.stringBase = entry.Offset.Uint64()
			table.hasStringTable = true
		}

		table.Entries = append(table.Entries, entry)
	}

	table.resolveNames(content, info.NamesIndex)
	return table, nil
}

func (table *SectionHeaderTable) resolveNames(
	content []byte,
	namesIndex uint16,
) {
	if !table.hasStringTable {
		if len(table.Entries) > 0 {
			table.Warnings = append(
				table.Warnings,
				Warning{
					SectionIndex: -1,
					Message: fmt.Sprintf(
						"section name index (%d) does not refer to a string table",
						namesIndex),
				})
		}
		return
	}

	for idx := range table.Entries {
		entry := &table.Entries[idx]

		offset := table.stringBase + uint64(entry.NameOffset)
		name, ok := StringAt(content, offset)
		if !ok || offset < table.stringBase { // out of bound or overflow
			table.Warnings = append(
				table.Warnings,
				Warning{
					SectionIndex: idx,
					Message: fmt.Sprintf(
						"name offset (%#x) is out of bound",
						entry.NameOffset),
				})
			continue
		}

		entry.Name = name
	}
}

// StringAt reads a null terminated string starting at offset.  The string
// ends at the buffer's end if it is unterminated.  Invalid utf-8 sequences are
// replaced by U+FFFD.  ok is false when offset lies beyond the buffer.
func StringAt(content []byte, offset uint64) (string, bool) {
	if offset > uint64(len(content)) {
		return "", false
	}

	chunk := content[offset:]
	end := bytes.IndexByte(chunk, 0)
	if end != -1 {
		chunk = chunk[:end]
	}

	return strings.ToValidUTF8(string(chunk), "\uFFFD"), true
}

func (table *SectionHeaderTable) Len() int {
	return len(table.Entries)
}

// StringTableOffset returns the file offset of the section name string table.
func (table *SectionHeaderTable) StringTableOffset() (uint64, bool) {
	return table.stringBase, table.hasStringTable
}

func (table *SectionHeaderTable) GetSection(
	name string,
) (
	SectionHeaderEntry,
	bool,
) {
	for _, entry := range table.Entries {
		if entry.Name == name {
			return entry, true
		}
	}

	return SectionHeaderEntry{}, false
}
