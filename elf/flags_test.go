package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type FlagsSuite struct{}

func TestFlags(t *testing.T) {
	suite.RunTests(t, &FlagsSuite{})
}

func (FlagsSuite) TestSegmentFlags(t *testing.T) {
	expect.Equal(t, "R E", SegmentFlags(0x5).String())
	expect.Equal(t, "RW ", SegmentFlags(0x6).String())
	expect.Equal(t, "RWE", SegmentFlags(0x7).String())
	expect.Equal(t, "   ", SegmentFlags(0).String())
	expect.Equal(t, "  E", SegmentFlagExecutable.String())
}

func (FlagsSuite) TestSectionFlags(t *testing.T) {
	expect.Equal(
		t,
		[]string{
			"(SHF_WRITE) Writable",
			"(SHF_ALLOC) Occupies memory during execution",
		},
		SectionFlags(0x3).Descriptions())

	expect.Equal(
		t,
		"\t(SHF_WRITE) Writable\n\t(SHF_ALLOC) Occupies memory during execution",
		SectionFlags(0x3).String())
}

func (FlagsSuite) TestNoSectionFlags(t *testing.T) {
	expect.Equal(t, 0, len(SectionFlags(0).Descriptions()))
	expect.Equal(t, "", SectionFlags(0).String())
}

func (FlagsSuite) TestSectionFlagMasks(t *testing.T) {
	expect.Equal(
		t,
		[]string{"(SHF_MASKPROC) Processor-specific"},
		SectionFlags(0x10000000).Descriptions())

	// SHF_EXCLUDE lies within SHF_MASKOS
	expect.Equal(
		t,
		[]string{
			"(SHF_MASKOS) OS-specific",
			"(SHF_EXCLUDE) Section is excluded unless referenced or allocated (Solaris)",
		},
		SectionFlagExclude.Descriptions())

	expect.Equal(
		t,
		[]string{
			"(SHF_ALLOC) Occupies memory during execution",
			"(SHF_EXECINSTR) Executable",
			"(SHF_TLS) Section hold thread-local data",
		},
		(SectionFlagAlloc | SectionFlagExecInstr | SectionFlagTLS).Descriptions())
}
