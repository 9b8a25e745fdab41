package elf

import (
	"strings"
)

// p_flags
type SegmentFlags uint32

const (
	SegmentFlagExecutable = SegmentFlags(0x1) // PF_X
	SegmentFlagWritable   = SegmentFlags(0x2) // PF_W
	SegmentFlagReadable   = SegmentFlags(0x4) // PF_R
)

// String returns a fixed width "RWE" summary, with a blank for each unset
// permission.
func (flags SegmentFlags) String() string {
	rwe := []byte{' ', ' ', ' '}
	if flags&SegmentFlagReadable != 0 {
		rwe[0] = 'R'
	}

	if flags&SegmentFlagWritable != 0 {
		rwe[1] = 'W'
	}

	if flags&SegmentFlagExecutable != 0 {
		rwe[2] = 'E'
	}

	return string(rwe)
}

// sh_flags
type SectionFlags uint64

const (
	SectionFlagWrite           = SectionFlags(0x1)        // SHF_WRITE
	SectionFlagAlloc           = SectionFlags(0x2)        // SHF_ALLOC
	SectionFlagExecInstr       = SectionFlags(0x4)        // SHF_EXECINSTR
	SectionFlagMerge           = SectionFlags(0x10)       // SHF_MERGE
	SectionFlagStrings         = SectionFlags(0x20)       // SHF_STRINGS
	SectionFlagInfoLink        = SectionFlags(0x40)       // SHF_INFO_LINK
	SectionFlagLinkOrder       = SectionFlags(0x80)       // SHF_LINK_ORDER
	SectionFlagOSNonconforming = SectionFlags(0x100)      // SHF_OS_NONCONFORMING
	SectionFlagGroup           = SectionFlags(0x200)      // SHF_GROUP
	SectionFlagTLS             = SectionFlags(0x400)      // SHF_TLS
	SectionFlagMaskOS          = SectionFlags(0x0ff00000) // SHF_MASKOS
	SectionFlagMaskProc        = SectionFlags(0xf0000000) // SHF_MASKPROC
	SectionFlagOrdered         = SectionFlags(0x4000000)  // SHF_ORDERED
	SectionFlagExclude         = SectionFlags(0x8000000)  // SHF_EXCLUDE
)

// NOTE: SHF_ORDERED and SHF_EXCLUDE (solaris) lie within SHF_MASKOS, so a file
// using either also reports the os specific mask.
var sectionFlagDescriptions = []struct {
	mask        SectionFlags
	description string
}{
	{SectionFlagWrite, "(SHF_WRITE) Writable"},
	{SectionFlagAlloc, "(SHF_ALLOC) Occupies memory during execution"},
	{SectionFlagExecInstr, "(SHF_EXECINSTR) Executable"},
	{SectionFlagMerge, "(SHF_MERGE) Might be merged"},
	{SectionFlagStrings, "(SHF_STRINGS) Contains null-terminated strings"},
	{SectionFlagInfoLink, "(SHF_INFO_LINK) 'sh_info' contains SHT index"},
	{SectionFlagLinkOrder, "(SHF_LINK_ORDER) Preserve order after combining"},
	{
		SectionFlagOSNonconforming,
		"(SHF_OS_NONCONFORMING) Non-standard OS specific handling required",
	},
	{SectionFlagGroup, "(SHF_GROUP) Section is member of a group"},
	{SectionFlagTLS, "(SHF_TLS) Section hold thread-local data"},
	{SectionFlagMaskOS, "(SHF_MASKOS) OS-specific"},
	{SectionFlagMaskProc, "(SHF_MASKPROC) Processor-specific"},
	{
		SectionFlagOrdered,
		"(SHF_ORDERED) Special ordering requirement (Solaris)",
	},
	{
		SectionFlagExclude,
		"(SHF_EXCLUDE) Section is excluded unless referenced or allocated (Solaris)",
	},
}

// Descriptions returns the description of every flag (or mask) with at least
// one bit set, in SHF_* definition order.  Empty when flags == 0.
func (flags SectionFlags) Descriptions() []string {
	result := []string{}
	for _, entry := range sectionFlagDescriptions {
		if flags&entry.mask != 0 {
			result = append(result, entry.description)
		}
	}
	return result
}

// String renders one tab indented description per line.
func (flags SectionFlags) String() string {
	descriptions := flags.Descriptions()
	for idx, description := range descriptions {
		descriptions[idx] = "\t" + description
	}
	return strings.Join(descriptions, "\n")
}
