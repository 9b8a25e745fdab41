package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pattyshack/elfdump/config"
	"github.com/pattyshack/elfdump/elf"
	"github.com/pattyshack/elfdump/inspect"
)

const (
	NoFlags = "[No flags]"
)

// Printer renders decoded elf structures.  Colorization is taken from the
// config and is independent of fatih/color's global NoColor setting.
type Printer struct {
	writer io.Writer
	config config.Config

	title *color.Color
	value *color.Color
	dim   *color.Color
	warn  *color.Color
}

func NewPrinter(writer io.Writer, cfg config.Config) *Printer {
	printer := &Printer{
		writer: writer,
		config: cfg,
		title:  color.New(color.FgHiMagenta, color.Bold),
		value:  color.New(color.FgHiGreen),
		dim:    color.New(color.FgHiBlack),
		warn:   color.New(color.FgHiYellow),
	}

	for _, c := range []*color.Color{
		printer.title,
		printer.value,
		printer.dim,
		printer.warn,
	} {
		if cfg.Colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return printer
}

func (printer *Printer) Config() config.Config {
	return printer.config
}

func (printer *Printer) Writer() io.Writer {
	return printer.writer
}

func (printer *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(printer.writer, format, args...)
}

func (printer *Printer) field(
	indent string,
	label string,
	value string,
	suffix string,
) {
	printer.printf(
		"%s%-28s%s%s\n",
		indent,
		label+":",
		printer.value.Sprint(value),
		suffix)
}

func hexBytes(data []byte) string {
	parts := make([]string, 0, len(data))
	for _, b := range data {
		parts = append(parts, fmt.Sprintf("%02X", b))
	}
	return strings.Join(parts, " ")
}

func (printer *Printer) PrintHeader(header *elf.FileHeader) {
	printer.printf("%s\n", printer.title.Sprint("Elf Header:"))
	printer.printf("  Identification:\n")
	printer.field("    ", "Magic", hexBytes(header.Magic[:]), "")
	printer.field("    ", "Class", header.Class.String(), "")
	printer.field("    ", "Endianness", header.Endianness.String(), "")
	printer.field("    ", "Version", strconv.Itoa(int(header.Identifier.Version)), "")
	printer.field("    ", "Abi", header.Abi.String(), "")
	printer.field("    ", "AbiVersion", strconv.Itoa(int(header.AbiVersion)), "")
	printer.printf(
		"    %-28s%s\n",
		"Padding:",
		printer.dim.Sprint(hexBytes(header.Padding[:])))

	printer.field("  ", "Type", header.Type.Description(), "")
	printer.field(
		"  ",
		"Machine",
		header.Machine.Description(),
		fmt.Sprintf(" (%s)", header.Machine))
	printer.field("  ", "Version", fmt.Sprintf("%#x", header.Version), "")
	printer.field("  ", "Entry point", header.EntryPoint.String(), "")
	printer.field(
		"  ",
		"Program header",
		header.ProgramHeaderOffset().String(),
		" (offset)")
	printer.field(
		"  ",
		"Section header",
		header.SectionHeaderOffset().String(),
		" (offset)")
	printer.printf(
		"  %-28s%s\n",
		"Flags:",
		printer.dim.Sprintf("0x%08X", header.Flags))
	printer.field(
		"  ",
		"Elf header size",
		strconv.Itoa(int(header.HeaderSize)),
		" (bytes)")
	printer.field(
		"  ",
		"Program header entry size",
		strconv.Itoa(int(header.ProgramHeaderSize())),
		" (bytes)")
	printer.field(
		"  ",
		"Program header entries",
		strconv.Itoa(int(header.ProgramHeaderEntries())),
		"")
	printer.field(
		"  ",
		"Section header size",
		strconv.Itoa(int(header.SectionHeaderSize())),
		" (bytes)")
	printer.field(
		"  ",
		"Section header entries",
		strconv.Itoa(int(header.SectionHeaderEntries())),
		"")
	printer.field(
		"  ",
		"Section names index",
		strconv.Itoa(int(header.SectionNamesIndex())),
		"")
}

func (printer *Printer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(printer.writer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	if printer.config.Colors {
		colors := make([]tablewriter.Colors, 0, len(header))
		for range header {
			colors = append(
				colors,
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiMagentaColor})
		}
		table.SetHeaderColor(colors...)
	}

	return table
}

func (printer *Printer) PrintProgramHeaders(table elf.ProgramHeaderTable) {
	printer.printf(
		"%s %d\n",
		printer.title.Sprint("Program header segments:"),
		len(table))
	if len(table) == 0 {
		return
	}

	output := printer.newTable([]string{
		"Idx",
		"Type",
		"Offset",
		"VirtAddr",
		"PhysAddr",
		"FileSiz",
		"MemSiz",
		"Flags",
		"Align",
	})

	for idx, entry := range table {
		output.Append([]string{
			strconv.Itoa(idx),
			entry.Type.String(),
			entry.Offset.String(),
			entry.VirtualAddress.String(),
			entry.PhysicalAddress.String(),
			entry.FileSize.String(),
			entry.MemorySize.String(),
			entry.Flags.String(),
			entry.Alignment.String(),
		})
	}

	output.Render()
}

func sectionFlagsCell(flags elf.SectionFlags) string {
	descriptions := flags.Descriptions()
	if len(descriptions) == 0 {
		return NoFlags
	}
	return strings.Join(descriptions, "\n")
}

func (printer *Printer) PrintSectionHeaders(table *elf.SectionHeaderTable) {
	printer.printf(
		"%s %d\n",
		printer.title.Sprint("Section header segments:"),
		table.Len())

	if table.Len() > 0 {
		output := printer.newTable([]string{
			"Idx",
			"Name",
			"Type",
			"Address",
			"Offset",
			"Size",
			"EntSize",
			"Link",
			"Info",
			"Align",
			"Flags",
		})

		for idx, entry := range table.Entries {
			output.Append([]string{
				strconv.Itoa(idx),
				entry.PrettyName(),
				entry.Type.String(),
				entry.Address.String(),
				entry.Offset.String(),
				entry.Size.String(),
				entry.EntrySize.String(),
				strconv.FormatUint(uint64(entry.Link), 10),
				strconv.FormatUint(uint64(entry.Info), 10),
				entry.AddressAlignment.String(),
				sectionFlagsCell(entry.SectionFlags()),
			})
		}

		output.Render()
	}

	printer.PrintWarnings(table.Warnings)
}

// PrintSection prints a single section header entry in long form.
func (printer *Printer) PrintSection(idx int, entry elf.SectionHeaderEntry) {
	printer.printf(
		"%s\n",
		printer.title.Sprintf("Section [%d] %s:", idx, entry.PrettyName()))
	if entry.PrettyName() != entry.Name {
		printer.field("  ", "Mangled name", entry.Name, "")
	}
	printer.field(
		"  ",
		"Name offset",
		fmt.Sprintf("%#x", entry.NameOffset),
		"")
	printer.field("  ", "Type", entry.Type.Description(), "")
	printer.field("  ", "Address", entry.Address.String(), "")
	printer.field("  ", "Offset", entry.Offset.String(), "")
	printer.field("  ", "Size", entry.Size.String(), "")
	printer.field("  ", "Entry size", entry.EntrySize.String(), "")
	printer.field("  ", "Link", strconv.FormatUint(uint64(entry.Link), 10), "")
	printer.field("  ", "Info", strconv.FormatUint(uint64(entry.Info), 10), "")
	printer.field("  ", "Alignment", entry.AddressAlignment.String(), "")
	printer.printf("  Flags:\n")

	flags := entry.SectionFlags()
	if flags == 0 {
		printer.printf("\t%s\n", NoFlags)
	} else {
		printer.printf("%s\n", flags)
	}
}

func (printer *Printer) PrintWarnings(warnings []elf.Warning) {
	for _, warning := range warnings {
		printer.printf("%s\n", printer.warn.Sprintf("warning: %s", warning))
	}
}

func (printer *Printer) PrintDisassembly(instructions []inspect.Instruction) {
	printer.printf(
		"%s %d\n",
		printer.title.Sprint("Entry point disassembly:"),
		len(instructions))
	for _, inst := range instructions {
		printer.printf(
			"  %s  %s\n",
			inst,
			printer.dim.Sprintf("(% x)", inst.Bytes))
	}
}

// PrintFile prints the parts of the file selected by the config, in the
// config's output format.
func (printer *Printer) PrintFile(
	file *elf.File,
	instructions []inspect.Instruction,
) error {
	if printer.config.Format == config.FormatYAML {
		doc := NewDocument(file, instructions, printer.config.Show)
		content, err := doc.Marshal()
		if err != nil {
			return err
		}

		_, err = printer.writer.Write(content)
		return err
	}

	show := printer.config.Show
	if show.Header {
		printer.PrintHeader(&file.FileHeader)
		printer.printf("\n")
	}

	if show.Segments {
		printer.PrintProgramHeaders(file.Segments)
		printer.printf("\n")
	}

	if show.Sections {
		printer.PrintSectionHeaders(file.Sections)
		printer.printf("\n")
	} else {
		printer.PrintWarnings(file.Warnings())
	}

	if len(instructions) > 0 {
		printer.PrintDisassembly(instructions)
		printer.printf("\n")
	}

	return nil
}
