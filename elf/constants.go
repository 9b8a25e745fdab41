// Based on linux's man page, elf.h, golang's debug/elf package,
// and the ELF 1.2 format document.
package elf

import (
	"fmt"
)

var (
	// EI_MAG0 - EI_MAG3
	IdentifierMagic = [4]byte{
		0x7f, // ELFMAG0
		'E',  // ELFMAG1
		'L',  // ELFMAG2
		'F',  // ELFMAG3
	}
)

// EI_CLASS
type Class byte

const (
	Class32 = Class(1) // ELFCLASS32
	Class64 = Class(2) // ELFCLASS64
)

func DecodeClass(value byte) (Class, error) {
	switch class := Class(value); class {
	case Class32, Class64:
		return class, nil
	default:
		return 0, invalidEnum(EnumTableClass, uint64(value))
	}
}

func (class Class) String() string {
	switch class {
	case Class32:
		return "Elf32"
	case Class64:
		return "Elf64"
	default:
		return fmt.Sprintf("ClassUnknown(%d)", byte(class))
	}
}

// EI_DATA
type Endianness byte

const (
	EndiannessLittle = Endianness(1) // ELFDATA2LSB
	EndiannessBig    = Endianness(2) // ELFDATA2MSB
)

func DecodeEndianness(value byte) (Endianness, error) {
	switch endianness := Endianness(value); endianness {
	case EndiannessLittle, EndiannessBig:
		return endianness, nil
	default:
		return 0, invalidEnum(EnumTableEndianness, uint64(value))
	}
}

func (endianness Endianness) String() string {
	switch endianness {
	case EndiannessLittle:
		return "Little endian"
	case EndiannessBig:
		return "Big endian"
	default:
		return fmt.Sprintf("EndiannessUnknown(%d)", byte(endianness))
	}
}

// EI_OSABI
type Abi byte

const (
	AbiSystemV       = Abi(0x00) // ELFOSABI_NONE
	AbiHpUx          = Abi(0x01) // ELFOSABI_HPUX
	AbiNetBSD        = Abi(0x02) // ELFOSABI_NETBSD
	AbiLinux         = Abi(0x03) // ELFOSABI_LINUX
	AbiGnuHurd       = Abi(0x04) // ELFOSABI_HURD
	AbiSolaris       = Abi(0x06) // ELFOSABI_SOLARIS
	AbiAixMonterey   = Abi(0x07) // ELFOSABI_AIX
	AbiIRIX          = Abi(0x08) // ELFOSABI_IRIX
	AbiFreeBSD       = Abi(0x09) // ELFOSABI_FREEBSD
	AbiTru64         = Abi(0x0a) // ELFOSABI_TRU64
	AbiNovellModesto = Abi(0x0b) // ELFOSABI_MODESTO
	AbiOpenBSD       = Abi(0x0c) // ELFOSABI_OPENBSD
	AbiOpenVMS       = Abi(0x0d) // ELFOSABI_OPENVMS
	AbiNonStopKernel = Abi(0x0e) // ELFOSABI_NSK
	AbiAROS          = Abi(0x0f) // ELFOSABI_AROS
	AbiFenixOS       = Abi(0x10) // ELFOSABI_FENIXOS
	AbiNuxiCloudABI  = Abi(0x11) // ELFOSABI_CLOUDABI
	AbiOpenVOS       = Abi(0x12) // ELFOSABI_OPENVOS
	AbiArmEABI       = Abi(0x40) // ELFOSABI_ARM_AEABI
	AbiArm           = Abi(0x61) // ELFOSABI_ARM
	AbiStandalone    = Abi(0xff) // ELFOSABI_STANDALONE
)

var abiNames = map[Abi]string{
	AbiSystemV:       "System V",
	AbiHpUx:          "HP-UX",
	AbiNetBSD:        "NetBSD",
	AbiLinux:         "Linux",
	AbiGnuHurd:       "GNU Hurd",
	AbiSolaris:       "Solaris",
	AbiAixMonterey:   "AIX (Monterey)",
	AbiIRIX:          "IRIX",
	AbiFreeBSD:       "FreeBSD",
	AbiTru64:         "Tru64",
	AbiNovellModesto: "Novell Modesto",
	AbiOpenBSD:       "OpenBSD",
	AbiOpenVMS:       "OpenVMS",
	AbiNonStopKernel: "NonStop Kernel",
	AbiAROS:          "AROS",
	AbiFenixOS:       "FenixOS",
	AbiNuxiCloudABI:  "Nuxi CloudABI",
	AbiOpenVOS:       "Stratus Technologies OpenVOS",
	AbiArmEABI:       "ARM EABI",
	AbiArm:           "ARM",
	AbiStandalone:    "Standalone (embedded)",
}

func DecodeAbi(value byte) (Abi, error) {
	abi := Abi(value)
	if _, ok := abiNames[abi]; !ok {
		return 0, invalidEnum(EnumTableAbi, uint64(value))
	}
	return abi, nil
}

func (abi Abi) String() string {
	name, ok := abiNames[abi]
	if !ok {
		return fmt.Sprintf("AbiUnknown(%d)", byte(abi))
	}
	return name
}

// e_type
type ObjectType uint16

const (
	ObjectTypeNone         = ObjectType(0) // ET_NONE
	ObjectTypeRelocatable  = ObjectType(1) // ET_REL
	ObjectTypeExecutable   = ObjectType(2) // ET_EXEC
	ObjectTypeSharedObject = ObjectType(3) // ET_DYN
	ObjectTypeCore         = ObjectType(4) // ET_CORE

	ObjectTypeLowOS        = ObjectType(0xfe00) // ET_LOOS
	ObjectTypeHighOS       = ObjectType(0xfeff) // ET_HIOS
	ObjectTypeLowProcessor = ObjectType(0xff00) // ET_LOPROC
	// ET_HIPROC is 0xffff, the top of the value space.
)

func DecodeObjectType(value uint16) (ObjectType, error) {
	objType := ObjectType(value)
	switch {
	case objType <= ObjectTypeCore,
		objType.IsOSSpecific(),
		objType.IsProcessorSpecific():
		return objType, nil
	default:
		return 0, invalidEnum(EnumTableObjectType, uint64(value))
	}
}

func (objType ObjectType) IsOSSpecific() bool {
	return ObjectTypeLowOS <= objType && objType <= ObjectTypeHighOS
}

func (objType ObjectType) IsProcessorSpecific() bool {
	return ObjectTypeLowProcessor <= objType
}

func (objType ObjectType) String() string {
	switch {
	case objType == ObjectTypeNone:
		return "NONE"
	case objType == ObjectTypeRelocatable:
		return "REL"
	case objType == ObjectTypeExecutable:
		return "EXEC"
	case objType == ObjectTypeSharedObject:
		return "DYN"
	case objType == ObjectTypeCore:
		return "CORE"
	case objType.IsOSSpecific():
		return fmt.Sprintf("OS(%#04x)", uint16(objType))
	case objType.IsProcessorSpecific():
		return fmt.Sprintf("PROC(%#04x)", uint16(objType))
	default:
		return fmt.Sprintf("ObjectTypeUnknown(%d)", uint16(objType))
	}
}

func (objType ObjectType) Description() string {
	switch {
	case objType == ObjectTypeNone:
		return "(NONE) Unknown"
	case objType == ObjectTypeRelocatable:
		return "(REL) Relocatable file"
	case objType == ObjectTypeExecutable:
		return "(EXEC) Executable file"
	case objType == ObjectTypeSharedObject:
		return "(DYN) Shared object"
	case objType == ObjectTypeCore:
		return "(CORE) Core file"
	case objType.IsOSSpecific():
		return fmt.Sprintf("(OS) OS specific (%#04x)", uint16(objType))
	case objType.IsProcessorSpecific():
		return fmt.Sprintf("(PROC) Processor specific (%#04x)", uint16(objType))
	default:
		return objType.String()
	}
}

// p_type
type SegmentType uint32

const (
	SegmentTypeNull               = SegmentType(0) // PT_NULL
	SegmentTypeLoadable           = SegmentType(1) // PT_LOAD
	SegmentTypeDynamic            = SegmentType(2) // PT_DYNAMIC
	SegmentTypeInterpreter        = SegmentType(3) // PT_INTERP
	SegmentTypeNote               = SegmentType(4) // PT_NOTE
	SegmentTypeSharedLibrary      = SegmentType(5) // PT_SHLIB
	SegmentTypeProgramHeader      = SegmentType(6) // PT_PHDR
	SegmentTypeThreadLocalStorage = SegmentType(7) // PT_TLS

	SegmentTypeLowOS                 = SegmentType(0x60000000) // PT_LOOS
	SegmentTypeGNUEHFrame            = SegmentType(0x6474e550) // PT_GNU_EH_FRAME
	SegmentTypeGNUStack              = SegmentType(0x6474e551) // PT_GNU_STACK
	SegmentTypeGNURelocationReadOnly = SegmentType(0x6474e552) // PT_GNU_RELRO
	SegmentTypeGNUProperty           = SegmentType(0x6474e553) // PT_GNU_PROPERTY
	SegmentTypeHighOS                = SegmentType(0x6fffffff) // PT_HIOS
	SegmentTypeLowProcessor          = SegmentType(0x70000000) // PT_LOPROC
	SegmentTypeHighProcessor         = SegmentType(0x7fffffff) // PT_HIPROC
)

func DecodeSegmentType(value uint32) (SegmentType, error) {
	segType := SegmentType(value)
	switch {
	case segType <= SegmentTypeThreadLocalStorage,
		segType.IsOSSpecific(),
		segType.IsProcessorSpecific():
		return segType, nil
	default:
		return 0, invalidEnum(EnumTableSegmentType, uint64(value))
	}
}

func (segType SegmentType) IsOSSpecific() bool {
	return SegmentTypeLowOS <= segType && segType <= SegmentTypeHighOS
}

func (segType SegmentType) IsProcessorSpecific() bool {
	return SegmentTypeLowProcessor <= segType &&
		segType <= SegmentTypeHighProcessor
}

func (segType SegmentType) String() string {
	switch segType {
	case SegmentTypeNull:
		return "NULL"
	case SegmentTypeLoadable:
		return "LOAD"
	case SegmentTypeDynamic:
		return "DYNAMIC"
	case SegmentTypeInterpreter:
		return "INTERP"
	case SegmentTypeNote:
		return "NOTE"
	case SegmentTypeSharedLibrary:
		return "SHLIB"
	case SegmentTypeProgramHeader:
		return "PHDR"
	case SegmentTypeThreadLocalStorage:
		return "TLS"
	case SegmentTypeGNUEHFrame:
		return "GNU_EH_FRAME"
	case SegmentTypeGNUStack:
		return "GNU_STACK"
	case SegmentTypeGNURelocationReadOnly:
		return "GNU_RELRO"
	case SegmentTypeGNUProperty:
		return "GNU_PROPERTY"
	}

	switch {
	case segType.IsOSSpecific():
		return fmt.Sprintf("OS(%#x)", uint32(segType))
	case segType.IsProcessorSpecific():
		return fmt.Sprintf("PROC(%#x)", uint32(segType))
	default:
		return fmt.Sprintf("SegmentTypeUnknown(%d)", uint32(segType))
	}
}

func (segType SegmentType) Description() string {
	switch segType {
	case SegmentTypeNull:
		return "Program header table entry unused"
	case SegmentTypeLoadable:
		return "Loadable segment"
	case SegmentTypeDynamic:
		return "Dynamic linking information"
	case SegmentTypeInterpreter:
		return "Interpreter information"
	case SegmentTypeNote:
		return "Auxiliary information"
	case SegmentTypeSharedLibrary:
		return "Reserved"
	case SegmentTypeProgramHeader:
		return "Segment containing program header table itself"
	case SegmentTypeThreadLocalStorage:
		return "Thread-Local Storage template"
	case SegmentTypeGNUEHFrame:
		return fmt.Sprintf("OS (GNU exception handling frame) (%d)", uint32(segType))
	case SegmentTypeGNUStack:
		return fmt.Sprintf("OS (GNU stack permissions) (%d)", uint32(segType))
	case SegmentTypeGNURelocationReadOnly:
		return fmt.Sprintf("OS (GNU read-only after relocation) (%d)", uint32(segType))
	case SegmentTypeGNUProperty:
		return fmt.Sprintf("OS (GNU property notes) (%d)", uint32(segType))
	}

	switch {
	case segType.IsOSSpecific():
		return fmt.Sprintf("OS (OS specific) (%d)", uint32(segType))
	case segType.IsProcessorSpecific():
		return fmt.Sprintf("PROC (Proc specific) (%d)", uint32(segType))
	default:
		return segType.String()
	}
}

// sh_type
type SectionType uint32

const (
	SectionTypeNull                  = SectionType(0x00) // SHT_NULL
	SectionTypeProgramDefinedInfo    = SectionType(0x01) // SHT_PROGBITS
	SectionTypeSymbolTable           = SectionType(0x02) // SHT_SYMTAB
	SectionTypeStringTable           = SectionType(0x03) // SHT_STRTAB
	SectionTypeRelocationWithAddends = SectionType(0x04) // SHT_RELA
	SectionTypeSymbolHashTable       = SectionType(0x05) // SHT_HASH
	SectionTypeDynamic               = SectionType(0x06) // SHT_DYNAMIC
	SectionTypeNote                  = SectionType(0x07) // SHT_NOTE
	SectionTypeNoSpace               = SectionType(0x08) // SHT_NOBITS
	SectionTypeRelocationNoAddends   = SectionType(0x09) // SHT_REL
	SectionTypeSharedLibrary         = SectionType(0x0a) // SHT_SHLIB
	SectionTypeDynamicSymbolTable    = SectionType(0x0b) // SHT_DYNSYM
	SectionTypeInitArray             = SectionType(0x0e) // SHT_INIT_ARRAY
	SectionTypeFiniArray             = SectionType(0x0f) // SHT_FINI_ARRAY
	SectionTypePreinitArray          = SectionType(0x10) // SHT_PREINIT_ARRAY
	SectionTypeGroup                 = SectionType(0x11) // SHT_GROUP
	SectionTypeExtendedIndices       = SectionType(0x12) // SHT_SYMTAB_SHNDX
	SectionTypeNum                   = SectionType(0x13) // SHT_NUM

	SectionTypeLowOS = SectionType(0x60000000) // SHT_LOOS
)

type sectionTypeInfo struct {
	name        string
	description string
}

var sectionTypes = map[SectionType]sectionTypeInfo{
	SectionTypeNull:                  {"NULL", "Section header table entry unused"},
	SectionTypeProgramDefinedInfo:    {"PROGBITS", "Program data"},
	SectionTypeSymbolTable:           {"SYMTAB", "Symbol table"},
	SectionTypeStringTable:           {"STRTAB", "String table"},
	SectionTypeRelocationWithAddends: {"RELA", "Relocation entries with addends"},
	SectionTypeSymbolHashTable:       {"HASH", "Symbol hash table"},
	SectionTypeDynamic:               {"DYNAMIC", "Dynamic linking information"},
	SectionTypeNote:                  {"NOTE", "Notes"},
	SectionTypeNoSpace:               {"NOBITS", "Program space with no data (bss)"},
	SectionTypeRelocationNoAddends:   {"REL", "Relocation entries, no addends"},
	SectionTypeSharedLibrary:         {"SHLIB", "Reserved"},
	SectionTypeDynamicSymbolTable:    {"DYNSYM", "Dynamic linker symbol table"},
	SectionTypeInitArray:             {"INITARRAY", "Array of constructors"},
	SectionTypeFiniArray:             {"FINIARRAY", "Array of destructors"},
	SectionTypePreinitArray:          {"PREINITARRAY", "Array of pre-constructors"},
	SectionTypeGroup:                 {"GROUP", "Section group"},
	SectionTypeExtendedIndices:       {"SYMTABSHNDX", "Extended section indices"},
	SectionTypeNum:                   {"NUM", "Number of defined types"},
}

func DecodeSectionType(value uint32) (SectionType, error) {
	stype := SectionType(value)
	if _, ok := sectionTypes[stype]; ok || stype.IsOSSpecific() {
		return stype, nil
	}
	return 0, invalidEnum(EnumTableSectionType, uint64(value))
}

// NOTE: everything at or above SHT_LOOS (including the processor and user
// ranges) is treated as os specific.
func (stype SectionType) IsOSSpecific() bool {
	return stype >= SectionTypeLowOS
}

func (stype SectionType) String() string {
	if info, ok := sectionTypes[stype]; ok {
		return info.name
	}

	if stype.IsOSSpecific() {
		return fmt.Sprintf("OS(%#x)", uint32(stype))
	}

	return fmt.Sprintf("SectionTypeUnknown(%d)", uint32(stype))
}

func (stype SectionType) Description() string {
	if info, ok := sectionTypes[stype]; ok {
		return fmt.Sprintf("(%s) %s", info.name, info.description)
	}

	if stype.IsOSSpecific() {
		return fmt.Sprintf("(OS) (OS specific) (0x%X)", uint32(stype))
	}

	return stype.String()
}
