package elf

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTooShort         = errors.New("too short")
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrInvalidMagic     = errors.New("invalid elf magic number")
	ErrWordNarrowing    = errors.New("cannot narrow 64-bit word to 32 bits")
)

// TooShortError is returned whenever a structure would be read past the end
// of the content buffer.
type TooShortError struct {
	Structure string
	Need      uint64 // minimum buffer length required
	Have      int
}

func newTooShortError(structure string, need uint64, have int) *TooShortError {
	return &TooShortError{
		Structure: structure,
		Need:      need,
		Have:      have,
	}
}

func (err *TooShortError) Error() string {
	return fmt.Sprintf(
		"%s too short (need %d bytes, have %d)",
		err.Structure,
		err.Need,
		err.Have)
}

func (err *TooShortError) Is(target error) bool {
	return target == ErrTooShort
}

// checkBounds verifies [offset, offset+size) lies within the buffer without
// overflowing.
func checkBounds(
	structure string,
	content []byte,
	offset uint64,
	size uint64,
) error {
	end := offset + size
	if end < offset { // overflow
		return newTooShortError(structure, math.MaxUint64, len(content))
	}

	if end > uint64(len(content)) {
		return newTooShortError(structure, end, len(content))
	}

	return nil
}

type EnumTable string

const (
	EnumTableClass       = EnumTable("class")
	EnumTableEndianness  = EnumTable("endianness")
	EnumTableAbi         = EnumTable("target abi")
	EnumTableObjectType  = EnumTable("type")
	EnumTableMachine     = EnumTable("machine type")
	EnumTableSegmentType = EnumTable("segment type")
	EnumTableSectionType = EnumTable("section header type")
)

type InvalidEnumValueError struct {
	Table EnumTable
	Value uint64
}

func (err *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s (%#x)", err.Table, err.Value)
}

func (err *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

func invalidEnum(table EnumTable, value uint64) error {
	return &InvalidEnumValueError{
		Table: table,
		Value: value,
	}
}

// IsInvalidEnum reports whether err is an InvalidEnumValueError for the given
// table.
func IsInvalidEnum(err error, table EnumTable) bool {
	var enumErr *InvalidEnumValueError
	if !errors.As(err, &enumErr) {
		return false
	}
	return enumErr.Table == table
}
