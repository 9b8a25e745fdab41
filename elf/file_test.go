package elf

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type FileSuite struct{}

func TestFile(t *testing.T) {
	suite.RunTests(t, &FileSuite{})
}

func sampleExecutable() testFile {
	return testFile{
		isLittleEndian: true,
		abi:            byte(AbiSystemV),
		objectType:     uint16(ObjectTypeExecutable),
		machine:        uint16(MachineX86_64),
		entryPoint:     0x401020,
		segments: []testSegment{
			{
				segType:        uint32(SegmentTypeLoadable),
				flags:          uint32(SegmentFlagReadable | SegmentFlagExecutable),
				offset:         0,
				virtualAddress: 0x400000,
				fileSize:       0x2000,
				memorySize:     0x2000,
				alignment:      0x1000,
			},
		},
		sections: []testSection{
			{},
			{
				name:        ".text",
				sectionType: uint32(SectionTypeProgramDefinedInfo),
				flags:       uint64(SectionFlagAlloc | SectionFlagExecInstr),
				address:     0x401000,
				offset:      0x1000,
				size:        0x100,
			},
			{name: ".shstrtab"},
		},
		namesIndex: 2,
	}
}

func (FileSuite) TestParseBytes(t *testing.T) {
	file, err := ParseBytes(sampleExecutable().build(), ParseOptions{})
	expect.Nil(t, err)

	expect.Equal(t, Class64, file.Class)
	expect.Equal(t, EndiannessLittle, file.Endianness)
	expect.Equal(t, ObjectTypeExecutable, file.Type)
	expect.Equal(t, MachineX86_64, file.Machine)
	expect.Equal(t, Word64(0x401020), file.EntryPoint)

	expect.Equal(t, 1, len(file.Segments))
	expect.Equal(t, SegmentTypeLoadable, file.Segments[0].Type)

	expect.Equal(t, 3, file.Sections.Len())
	expect.Equal(t, 0, len(file.Warnings()))

	text, ok := file.GetSection(".text")
	expect.True(t, ok)
	expect.Equal(t, Word64(0x401000), text.Address)

	offset, ok := file.Segments.FileOffset(file.EntryPoint.Uint64())
	expect.True(t, ok)
	expect.Equal(t, uint64(0x1020), offset)
}

func (FileSuite) TestParse(t *testing.T) {
	content := sampleExecutable().build()
	file, err := Parse(bytes.NewReader(content), ParseOptions{})
	expect.Nil(t, err)
	expect.Equal(t, 3, file.Sections.Len())
}

func (FileSuite) TestParseReadFailure(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("boom")), ParseOptions{})
	expect.Error(t, err, "failed to read elf file: boom")
}

func (FileSuite) TestParsedFileDoesNotReferenceContent(t *testing.T) {
	content := sampleExecutable().build()
	file, err := ParseBytes(content, ParseOptions{})
	expect.Nil(t, err)

	for idx := range content {
		content[idx] = 0
	}

	text, ok := file.GetSection(".text")
	expect.True(t, ok)
	expect.Equal(t, ".text", text.Name)
	expect.Equal(t, [4]byte{0x7f, 'E', 'L', 'F'}, file.Magic)
}

func (FileSuite) TestInvalidMagic(t *testing.T) {
	content := sampleExecutable().build()
	copy(content, []byte("MZ\x90\x00"))

	_, err := ParseBytes(content, ParseOptions{})
	expect.True(t, errors.Is(err, ErrInvalidMagic))
	expect.Error(t, err, "failed parsing elf header")
	expect.Error(t, err, "4d 5a 90 00")

	file, err := ParseBytes(content, ParseOptions{IgnoreMagic: true})
	expect.Nil(t, err)
	expect.False(t, file.HasValidMagic())
	expect.Equal(t, 3, file.Sections.Len())
}

func (FileSuite) TestTooShort(t *testing.T) {
	_, err := ParseBytes([]byte{0x7f, 'E', 'L', 'F'}, ParseOptions{})
	expect.True(t, errors.Is(err, ErrTooShort))
	expect.Error(t, err, "failed parsing elf header: elf header too short")

	var tooShort *TooShortError
	expect.True(t, errors.As(err, &tooShort))
	expect.Equal(t, uint64(FileHeaderMinSize), tooShort.Need)
	expect.Equal(t, 4, tooShort.Have)
}

func (FileSuite) TestInvalidIdentifier(t *testing.T) {
	content := sampleExecutable().build()
	content[EI_DATA] = 3

	_, err := ParseBytes(content, ParseOptions{})
	expect.True(t, errors.Is(err, ErrInvalidEnumValue))
	expect.Error(t, err, "failed parsing elf header: invalid endianness (0x3)")
}

func (FileSuite) TestProgramHeaderFailure(t *testing.T) {
	spec := sampleExecutable()
	spec.segments[0].segType = 0x8000
	_, err := ParseBytes(spec.build(), ParseOptions{})
	expect.True(t, IsInvalidEnum(err, EnumTableSegmentType))
	expect.Error(t, err, "failed parsing program header table")
}

func (FileSuite) TestSectionHeaderFailure(t *testing.T) {
	content := sampleExecutable().build()

	// Truncate the last section header entry.
	_, err := ParseBytes(content[:len(content)-1], ParseOptions{})
	expect.True(t, errors.Is(err, ErrTooShort))
	expect.Error(t, err, "failed parsing section header table")
}

func (FileSuite) TestWarnings(t *testing.T) {
	spec := sampleExecutable()
	spec.namesIndex = 9

	file, err := ParseBytes(spec.build(), ParseOptions{})
	expect.Nil(t, err)
	expect.Equal(t, 1, len(file.Warnings()))
	expect.Equal(t, UnresolvedName, file.Sections.Entries[1].Name)

	_, ok := file.GetSection(".text")
	expect.False(t, ok)
}
