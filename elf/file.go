package elf

import (
	"fmt"
	"io"
)

type ParseOptions struct {
	// When true, files whose identifier does not start with "\x7fELF" are
	// still decoded.
	IgnoreMagic bool
}

type File struct {
	FileHeader

	Segments ProgramHeaderTable
	Sections *SectionHeaderTable
}

func (file *File) GetSection(name string) (SectionHeaderEntry, bool) {
	return file.Sections.GetSection(name)
}

func (file *File) Warnings() []Warning {
	return file.Sections.Warnings
}

func Parse(reader io.Reader, options ParseOptions) (*File, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read elf file: %w", err)
	}

	return ParseBytes(content, options)
}

// ParseBytes decodes the file's structural metadata.  The returned File does
// not reference content.
func ParseBytes(content []byte, options ParseOptions) (*File, error) {
	header, err := DecodeFileHeader(content)
	if err != nil {
		return nil, fmt.Errorf("failed parsing elf header: %w", err)
	}

	if !options.IgnoreMagic && !header.HasValidMagic() {
		return nil, fmt.Errorf(
			"failed parsing elf header: %w (% x)",
			ErrInvalidMagic,
			header.Magic[:])
	}

	segments, err := DecodeProgramHeaderTable(
		content,
		header.ProgramHeaders,
		header.Is32Bit(),
		header.IsLittleEndian())
	if err != nil {
		return nil, fmt.Errorf("failed parsing program header table: %w", err)
	}

	sections, err := DecodeSectionHeaderTable(
		content,
		header.SectionHeaders,
		header.Is32Bit(),
		header.IsLittleEndian())
	if err != nil {
		return nil, fmt.Errorf("failed parsing section header table: %w", err)
	}

	return &File{
		FileHeader: *header,
		Segments:   segments,
		Sections:   sections,
	}, nil
}
