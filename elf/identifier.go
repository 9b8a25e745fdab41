package elf

import (
	"bytes"
)

const (
	// e_ident[] indices
	EI_MAG0       = 0
	EI_CLASS      = 4
	EI_DATA       = 5
	EI_VERSION    = 6
	EI_OSABI      = 7
	EI_ABIVERSION = 8
	EI_PAD        = 9
	EI_NIDENT     = 16

	IdentifierPaddingSize = EI_NIDENT - EI_PAD
)

// e_ident
type Identifier struct {
	Magic      [4]byte                     // EI_MAG0 ... EI_MAG3
	Class      Class                       // EI_CLASS
	Endianness Endianness                  // EI_DATA
	Version    byte                        // EI_VERSION
	Abi        Abi                         // EI_OSABI
	AbiVersion byte                        // EI_ABIVERSION
	Padding    [IdentifierPaddingSize]byte // EI_PAD
}

// DecodeIdentifier decodes the first EI_NIDENT bytes of content.  The magic
// number is captured but not validated (see HasValidMagic).
func DecodeIdentifier(content []byte) (Identifier, error) {
	err := checkBounds("identifier", content, 0, EI_NIDENT)
	if err != nil {
		return Identifier{}, err
	}

	class, err := DecodeClass(content[EI_CLASS])
	if err != nil {
		return Identifier{}, err
	}

	endianness, err := DecodeEndianness(content[EI_DATA])
	if err != nil {
		return Identifier{}, err
	}

	abi, err := DecodeAbi(content[EI_OSABI])
	if err != nil {
		return Identifier{}, err
	}

	id := Identifier{
		Class:      class,
		Endianness: endianness,
		Version:    content[EI_VERSION],
		Abi:        abi,
		AbiVersion: content[EI_ABIVERSION],
	}
	copy(id.Magic[:], content[EI_MAG0:EI_CLASS])
	copy(id.Padding[:], content[EI_PAD:EI_NIDENT])

	return id, nil
}

func (id Identifier) Is32Bit() bool {
	return id.Class == Class32
}

func (id Identifier) IsLittleEndian() bool {
	return id.Endianness == EndiannessLittle
}

func (id Identifier) HasValidMagic() bool {
	return bytes.Equal(id.Magic[:], IdentifierMagic[:])
}
