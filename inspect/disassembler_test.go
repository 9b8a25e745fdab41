package inspect

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"golang.org/x/arch/x86/x86asm"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"

	"github.com/pattyshack/elfdump/elf"
)

type DisassemblerSuite struct{}

func TestDisassembler(t *testing.T) {
	suite.RunTests(t, &DisassemblerSuite{})
}

const codeOffset = 0x10

var (
	// xor %ebp,%ebp; mov %rdx,%r9; pop %rsi; mov %rsp,%rdx; ret
	x64Code = []byte{0x31, 0xed, 0x49, 0x89, 0xd1, 0x5e, 0x48, 0x89, 0xe2, 0xc3}

	// push %ebp; mov %esp,%ebp; ret
	x86Code = []byte{0x55, 0x89, 0xe5, 0xc3}
)

func newFile(
	class elf.Class,
	machine elf.Machine,
	entryPoint elf.Word,
	code []byte,
) (
	*elf.File,
	[]byte,
) {
	content := append(make([]byte, codeOffset), code...)

	word := func(value uint64) elf.Word {
		if class == elf.Class32 {
			return elf.Word32(uint32(value))
		}
		return elf.Word64(value)
	}

	file := &elf.File{
		FileHeader: elf.FileHeader{
			Identifier: elf.Identifier{
				Class:      class,
				Endianness: elf.EndiannessLittle,
			},
			Machine:    machine,
			EntryPoint: entryPoint,
		},
		Segments: elf.ProgramHeaderTable{
			{
				Type:           elf.SegmentTypeNote,
				VirtualAddress: word(0x1000),
				FileSize:       word(0x1000),
			},
			{
				Type:           elf.SegmentTypeLoadable,
				Offset:         word(codeOffset),
				VirtualAddress: word(0x401000),
				FileSize:       word(uint64(len(code))),
				MemorySize:     word(0x1000),
			},
		},
	}

	return file, content
}

func (DisassemblerSuite) TestX86_64(t *testing.T) {
	file, content := newFile(
		elf.Class64,
		elf.MachineX86_64,
		elf.Word64(0x401000),
		x64Code)

	instructions, err := Disassemble(file, content, 3)
	expect.Nil(t, err)
	expect.Equal(t, 3, len(instructions))

	expect.Equal(t, x86asm.XOR, instructions[0].Op)
	expect.Equal(t, elf.Word64(0x401000), instructions[0].Address)
	expect.Equal(t, "31 ed", fmt.Sprintf("% x", instructions[0].Bytes))

	expect.Equal(t, x86asm.MOV, instructions[1].Op)
	expect.Equal(t, elf.Word64(0x401002), instructions[1].Address)
	expect.Equal(t, 3, instructions[1].Len)

	expect.Equal(t, x86asm.POP, instructions[2].Op)
	expect.Equal(t, elf.Word64(0x401005), instructions[2].Address)

	str := instructions[0].String()
	expect.True(t, strings.HasPrefix(str, "0x0000000000401000: xor"))
}

func (DisassemblerSuite) TestStopsAtEndOfSegment(t *testing.T) {
	file, content := newFile(
		elf.Class64,
		elf.MachineX86_64,
		elf.Word64(0x401000),
		x64Code)

	// Trailing bytes past the segment's file image are never decoded.
	content = append(content, 0x90, 0x90, 0x90)

	instructions, err := Disassemble(file, content, 100)
	expect.Nil(t, err)
	expect.Equal(t, 5, len(instructions))
	expect.Equal(t, x86asm.RET, instructions[4].Op)
}

func (DisassemblerSuite) TestHugeInstructionCount(t *testing.T) {
	file, content := newFile(
		elf.Class64,
		elf.MachineX86_64,
		elf.Word64(0x401000),
		x64Code)

	for _, count := range []int{1 << 50, math.MaxInt} {
		instructions, err := Disassemble(file, content, count)
		expect.Nil(t, err)
		expect.Equal(t, 5, len(instructions))
		expect.Equal(t, x86asm.RET, instructions[4].Op)
	}
}

func (DisassemblerSuite) TestI386(t *testing.T) {
	file, content := newFile(
		elf.Class32,
		elf.MachineI386,
		elf.Word32(0x401001),
		x86Code)

	instructions, err := Disassemble(file, content, 5)
	expect.Nil(t, err)
	expect.Equal(t, 2, len(instructions))

	expect.Equal(t, x86asm.MOV, instructions[0].Op)
	expect.Equal(t, elf.Word32(0x401001), instructions[0].Address)
	expect.Equal(t, x86asm.RET, instructions[1].Op)
	expect.Equal(t, elf.Word32(0x401003), instructions[1].Address)
	expect.True(t, strings.HasPrefix(instructions[0].String(), "0x00401001: "))
}

func (DisassemblerSuite) TestZeroInstructions(t *testing.T) {
	file, content := newFile(
		elf.Class64,
		elf.MachineX86_64,
		elf.Word64(0x401000),
		x64Code)

	instructions, err := Disassemble(file, content, 0)
	expect.Nil(t, err)
	expect.Equal(t, 0, len(instructions))

	_, err = Disassemble(file, content, -1)
	expect.Error(t, err, "invalid number of instructions")
}

func (DisassemblerSuite) TestUnsupportedMachine(t *testing.T) {
	file, content := newFile(
		elf.Class32,
		elf.MachineARM,
		elf.Word32(0x401000),
		x86Code)

	_, err := Disassemble(file, content, 1)
	expect.True(t, errors.Is(err, ErrUnsupportedMachine))
	expect.Error(t, err, "ARM")
}

func (DisassemblerSuite) TestUnmappedEntryPoint(t *testing.T) {
	file, content := newFile(
		elf.Class64,
		elf.MachineX86_64,
		elf.Word64(0x1010),
		x64Code)

	// 0x1010 is only covered by a non-loadable segment.
	_, err := Disassemble(file, content, 1)
	expect.True(t, errors.Is(err, ErrUnmappedAddress))
}

func (DisassemblerSuite) TestTruncatedContent(t *testing.T) {
	file, content := newFile(
		elf.Class64,
		elf.MachineX86_64,
		elf.Word64(0x401000),
		x64Code)

	_, err := Disassemble(file, content[:codeOffset], 1)
	expect.True(t, errors.Is(err, ErrUnmappedAddress))
	expect.Error(t, err, "beyond the end of file")
}
