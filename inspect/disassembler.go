package inspect

import (
	"errors"
	"fmt"

	"golang.org/x/arch/x86/x86asm"

	"github.com/pattyshack/elfdump/elf"
)

const (
	maxX86InstructionLength = 15
)

var (
	ErrUnsupportedMachine = errors.New("unsupported machine")
	ErrUnmappedAddress    = errors.New("address is not backed by a loadable segment")
)

type Instruction struct {
	Address elf.Word
	Bytes   []byte
	x86asm.Inst
}

func (inst Instruction) String() string {
	return fmt.Sprintf(
		"%s: %s",
		inst.Address,
		x86asm.GNUSyntax(inst.Inst, inst.Address.Uint64(), nil))
}

// Mode returns the x86asm decoding mode for the machine.
func Mode(machine elf.Machine) (int, error) {
	switch machine {
	case elf.MachineI386:
		return 32, nil
	case elf.MachineX86_64:
		return 64, nil
	default:
		return 0, fmt.Errorf("%w (%s)", ErrUnsupportedMachine, machine)
	}
}

// Disassemble decodes up to numInstructions instructions starting at the
// file's entry point.
func Disassemble(
	file *elf.File,
	content []byte,
	numInstructions int,
) (
	[]Instruction,
	error,
) {
	return DisassembleAt(
		file,
		content,
		file.EntryPoint.Uint64(),
		numInstructions)
}

// DisassembleAt decodes up to numInstructions instructions starting at the
// virtual address.  Decoding stops early at the end of the segment's file
// image or at the first undecodable instruction.
func DisassembleAt(
	file *elf.File,
	content []byte,
	startAddress uint64,
	numInstructions int,
) (
	[]Instruction,
	error,
) {
	if numInstructions < 0 {
		return nil, fmt.Errorf(
			"invalid number of instructions to disassemble: %d",
			numInstructions)
	}

	mode, err := Mode(file.Machine)
	if err != nil {
		return nil, err
	}

	if numInstructions == 0 {
		return nil, nil
	}

	segment, ok := file.Segments.LoadableSegment(startAddress)
	if !ok {
		return nil, fmt.Errorf("%w (%#x)", ErrUnmappedAddress, startAddress)
	}

	start := segment.Offset.Uint64() +
		(startAddress - segment.VirtualAddress.Uint64())
	end := segment.Offset.Uint64() + segment.FileSize.Uint64()
	if end > uint64(len(content)) {
		end = uint64(len(content))
	}

	if start >= end {
		return nil, fmt.Errorf(
			"%w (%#x lies beyond the end of file)",
			ErrUnmappedAddress,
			startAddress)
	}

	count := uint64(numInstructions)
	if count <= (end-start)/maxX86InstructionLength {
		end = start + count*maxX86InstructionLength
	}

	data := content[start:end]
	address := startAddress

	// Every instruction is at least one byte long.
	capacity := numInstructions
	if capacity > len(data) {
		capacity = len(data)
	}
	result := make([]Instruction, 0, capacity)
	for len(data) > 0 && len(result) < numInstructions {
		inst, err := x86asm.Decode(data, mode)
		if err != nil {
			break
		}

		instAddress := elf.Word64(address)
		if file.Is32Bit() {
			instAddress = elf.Word32(uint32(address))
		}

		result = append(
			result,
			Instruction{
				Address: instAddress,
				Bytes:   append([]byte(nil), data[:inst.Len]...),
				Inst:    inst,
			})

		data = data[inst.Len:]
		address += uint64(inst.Len)
	}

	return result, nil
}
