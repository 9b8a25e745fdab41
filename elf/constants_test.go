package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type ConstantsSuite struct{}

func TestConstants(t *testing.T) {
	suite.RunTests(t, &ConstantsSuite{})
}

func (ConstantsSuite) TestObjectType(t *testing.T) {
	objType, err := DecodeObjectType(3)
	expect.Nil(t, err)
	expect.Equal(t, ObjectTypeSharedObject, objType)
	expect.Equal(t, "(DYN) Shared object", objType.Description())

	objType, err = DecodeObjectType(0xfe10)
	expect.Nil(t, err)
	expect.True(t, objType.IsOSSpecific())
	expect.False(t, objType.IsProcessorSpecific())
	expect.Equal(t, "OS(0xfe10)", objType.String())

	objType, err = DecodeObjectType(0xffff)
	expect.Nil(t, err)
	expect.True(t, objType.IsProcessorSpecific())
	expect.Equal(t, uint16(0xffff), uint16(objType))

	for _, value := range []uint16{5, 0x100, 0xfdff} {
		_, err = DecodeObjectType(value)
		expect.True(t, IsInvalidEnum(err, EnumTableObjectType))
	}
}

func (ConstantsSuite) TestMachine(t *testing.T) {
	machine, err := DecodeMachine(62)
	expect.Nil(t, err)
	expect.Equal(t, MachineX86_64, machine)
	expect.Equal(t, "X86_64", machine.String())
	expect.Equal(t, "AMD x86-64 architecture", machine.Description())

	machine, err = DecodeMachine(183)
	expect.Nil(t, err)
	expect.Equal(t, MachineAARCH64, machine)

	machine, err = DecodeMachine(243)
	expect.Nil(t, err)
	expect.Equal(t, MachineRISCV, machine)

	expect.True(t, len(machines) >= 100)

	_, err = DecodeMachine(0x1234)
	expect.True(t, IsInvalidEnum(err, EnumTableMachine))
	expect.Error(t, err, "invalid machine type (0x1234)")
}

func (ConstantsSuite) TestSegmentType(t *testing.T) {
	segType, err := DecodeSegmentType(1)
	expect.Nil(t, err)
	expect.Equal(t, SegmentTypeLoadable, segType)
	expect.Equal(t, "Loadable segment", segType.Description())

	segType, err = DecodeSegmentType(0x60000123)
	expect.Nil(t, err)
	expect.True(t, segType.IsOSSpecific())
	expect.Equal(t, "OS (OS specific) (1610613027)", segType.Description())

	segType, err = DecodeSegmentType(uint32(SegmentTypeGNUStack))
	expect.Nil(t, err)
	expect.True(t, segType.IsOSSpecific())
	expect.Equal(t, "GNU_STACK", segType.String())

	segType, err = DecodeSegmentType(0x70000001)
	expect.Nil(t, err)
	expect.True(t, segType.IsProcessorSpecific())
	expect.Equal(t, "PROC(0x70000001)", segType.String())

	for _, value := range []uint32{8, 0x5fffffff, 0x80000000} {
		_, err = DecodeSegmentType(value)
		expect.True(t, IsInvalidEnum(err, EnumTableSegmentType))
	}
}

func (ConstantsSuite) TestSectionType(t *testing.T) {
	stype, err := DecodeSectionType(3)
	expect.Nil(t, err)
	expect.Equal(t, SectionTypeStringTable, stype)
	expect.Equal(t, "(STRTAB) String table", stype.Description())

	stype, err = DecodeSectionType(0x13)
	expect.Nil(t, err)
	expect.Equal(t, SectionTypeNum, stype)

	stype, err = DecodeSectionType(0x6ffffff6)
	expect.Nil(t, err)
	expect.True(t, stype.IsOSSpecific())
	expect.Equal(t, "(OS) (OS specific) (0x6FFFFFF6)", stype.Description())

	for _, value := range []uint32{0x0c, 0x0d, 0x14, 0x5fffffff} {
		_, err = DecodeSectionType(value)
		expect.True(t, IsInvalidEnum(err, EnumTableSectionType))
	}
}

func (ConstantsSuite) TestClassAndEndianness(t *testing.T) {
	expect.Equal(t, "Elf32", Class32.String())
	expect.Equal(t, "Elf64", Class64.String())
	expect.Equal(t, "Little endian", EndiannessLittle.String())
	expect.Equal(t, "Big endian", EndiannessBig.String())

	_, err := DecodeClass(0)
	expect.Error(t, err, "invalid class (0x0)")
}
