package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pattyshack/elfdump/config"
	"github.com/pattyshack/elfdump/elf"
	"github.com/pattyshack/elfdump/inspect"
)

type IdentifierDocument struct {
	Magic      string `yaml:"magic"`
	Class      string `yaml:"class"`
	Endianness string `yaml:"endianness"`
	Version    byte   `yaml:"version"`
	Abi        string `yaml:"abi"`
	AbiVersion byte   `yaml:"abi_version"`
}

type HeaderDocument struct {
	Identifier           IdentifierDocument `yaml:"identifier"`
	Type                 string             `yaml:"type"`
	Machine              string             `yaml:"machine"`
	Version              uint32             `yaml:"version"`
	EntryPoint           elf.Word           `yaml:"entry_point"`
	ProgramHeaderOffset  elf.Word           `yaml:"program_header_offset"`
	SectionHeaderOffset  elf.Word           `yaml:"section_header_offset"`
	Flags                string             `yaml:"flags"`
	HeaderSize           uint16             `yaml:"header_size"`
	ProgramHeaderSize    uint16             `yaml:"program_header_entry_size"`
	ProgramHeaderEntries uint16             `yaml:"program_header_entries"`
	SectionHeaderSize    uint16             `yaml:"section_header_entry_size"`
	SectionHeaderEntries uint16             `yaml:"section_header_entries"`
	SectionNamesIndex    uint16             `yaml:"section_names_index"`
}

type SegmentDocument struct {
	Type            string   `yaml:"type"`
	Flags           string   `yaml:"flags"`
	Offset          elf.Word `yaml:"offset"`
	VirtualAddress  elf.Word `yaml:"virtual_address"`
	PhysicalAddress elf.Word `yaml:"physical_address"`
	FileSize        elf.Word `yaml:"file_size"`
	MemorySize      elf.Word `yaml:"memory_size"`
	Alignment       elf.Word `yaml:"alignment"`
}

type SectionDocument struct {
	Name             string   `yaml:"name"`
	PrettyName       string   `yaml:"pretty_name,omitempty"`
	Type             string   `yaml:"type"`
	Flags            []string `yaml:"flags"`
	Address          elf.Word `yaml:"address"`
	Offset           elf.Word `yaml:"offset"`
	Size             elf.Word `yaml:"size"`
	Link             uint32   `yaml:"link"`
	Info             uint32   `yaml:"info"`
	AddressAlignment elf.Word `yaml:"address_alignment"`
	EntrySize        elf.Word `yaml:"entry_size"`
}

type Document struct {
	Header      *HeaderDocument   `yaml:"header,omitempty"`
	Segments    []SegmentDocument `yaml:"segments,omitempty"`
	Sections    []SectionDocument `yaml:"sections,omitempty"`
	Disassembly []string          `yaml:"disassembly,omitempty"`
	Warnings    []string          `yaml:"warnings,omitempty"`
}

func NewDocument(
	file *elf.File,
	instructions []inspect.Instruction,
	show config.Sections,
) Document {
	doc := Document{}

	if show.Header {
		doc.Header = &HeaderDocument{
			Identifier: IdentifierDocument{
				Magic:      hexBytes(file.Magic[:]),
				Class:      file.Class.String(),
				Endianness: file.Endianness.String(),
				Version:    file.Identifier.Version,
				Abi:        file.Abi.String(),
				AbiVersion: file.AbiVersion,
			},
			Type:                 file.Type.String(),
			Machine:              file.Machine.String(),
			Version:              file.Version,
			EntryPoint:           file.EntryPoint,
			ProgramHeaderOffset:  file.ProgramHeaderOffset(),
			SectionHeaderOffset:  file.SectionHeaderOffset(),
			Flags:                fmt.Sprintf("0x%08x", file.Flags),
			HeaderSize:           file.HeaderSize,
			ProgramHeaderSize:    file.ProgramHeaderSize(),
			ProgramHeaderEntries: file.ProgramHeaderEntries(),
			SectionHeaderSize:    file.SectionHeaderSize(),
			SectionHeaderEntries: file.SectionHeaderEntries(),
			SectionNamesIndex:    file.SectionNamesIndex(),
		}
	}

	if show.Segments {
		for _, entry := range file.Segments {
			doc.Segments = append(
				doc.Segments,
				SegmentDocument{
					Type:            entry.Type.String(),
					Flags:           entry.Flags.String(),
					Offset:          entry.Offset,
					VirtualAddress:  entry.VirtualAddress,
					PhysicalAddress: entry.PhysicalAddress,
					FileSize:        entry.FileSize,
					MemorySize:      entry.MemorySize,
					Alignment:       entry.Alignment,
				})
		}
	}

	if show.Sections {
		for _, entry := range file.Sections.Entries {
			section := SectionDocument{
				Name:             entry.Name,
				Type:             entry.Type.String(),
				Flags:            entry.SectionFlags().Descriptions(),
				Address:          entry.Address,
				Offset:           entry.Offset,
				Size:             entry.Size,
				Link:             entry.Link,
				Info:             entry.Info,
				AddressAlignment: entry.AddressAlignment,
				EntrySize:        entry.EntrySize,
			}

			if pretty := entry.PrettyName(); pretty != entry.Name {
				section.PrettyName = pretty
			}

			doc.Sections = append(doc.Sections, section)
		}
	}

	for _, inst := range instructions {
		doc.Disassembly = append(doc.Disassembly, inst.String())
	}

	for _, warning := range file.Warnings() {
		doc.Warnings = append(doc.Warnings, warning.String())
	}

	return doc
}

func (doc Document) Marshal() ([]byte, error) {
	content, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal yaml document: %w", err)
	}
	return content, nil
}
