package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/pattyshack/elfdump/config"
	"github.com/pattyshack/elfdump/elf"
	"github.com/pattyshack/elfdump/inspect"
	"github.com/pattyshack/elfdump/logging"
	"github.com/pattyshack/elfdump/report"
)

const (
	prompt = "print-elf > "
)

type command struct {
	name        string
	description string
	run         func(*shell, []string) error
}

var (
	commands []command
)

func init() {
	// NOTE: help references commands, which would be an initialization cycle
	// as a var initializer.
	commands = []command{
		{
			name:        "header",
			description: "print the elf header",
			run:         printHeader,
		},
		{
			name:        "segments",
			description: "print the program header table",
			run:         printSegments,
		},
		{
			name:        "sections",
			description: "print the section header table",
			run:         printSections,
		},
		{
			name:        "section",
			description: "section <index|name>: print a single section header",
			run:         printSection,
		},
		{
			name:        "disassemble",
			description: "disassemble [n]: disassemble n instructions at the entry point",
			run:         disassemble,
		},
		{
			name:        "help",
			description: "list commands",
			run:         help,
		},
	}
}

type shell struct {
	logger  *logging.Logger
	printer *report.Printer
	file    *elf.File
	content []byte
}

func newShell(
	logger *logging.Logger,
	printer *report.Printer,
	file *elf.File,
	content []byte,
) *shell {
	return &shell{
		logger:  logger,
		printer: printer,
		file:    file,
		content: content,
	}
}

func (sh *shell) run() error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	lastLine := ""
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			line = lastLine
		}
		lastLine = line

		if line == "" {
			continue
		}

		if sh.execute(line) {
			return nil
		}
	}
}

// lookup returns the command matching name exactly, or the only command
// prefixed by name.
func lookup(name string) (command, error) {
	var matches []command
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, nil
		}

		if strings.HasPrefix(cmd.name, name) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return command{}, fmt.Errorf("invalid command: %s", name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, cmd := range matches {
			names = append(names, cmd.name)
		}
		return command{}, fmt.Errorf(
			"ambiguous command: %s (%s)",
			name,
			strings.Join(names, ", "))
	}
}

// execute runs a single command line.  Returns true when the shell should
// exit.
func (sh *shell) execute(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}

	if args[0] == "quit" || args[0] == "exit" {
		return true
	}

	cmd, err := lookup(args[0])
	if err != nil {
		sh.logger.Warning("%s", err)
		return false
	}

	err = cmd.run(sh, args[1:])
	if err != nil {
		sh.logger.Error("%s failed: %s", cmd.name, err)
	}

	return false
}

func printHeader(sh *shell, args []string) error {
	sh.printer.PrintHeader(&sh.file.FileHeader)
	return nil
}

func printSegments(sh *shell, args []string) error {
	sh.printer.PrintProgramHeaders(sh.file.Segments)
	return nil
}

func printSections(sh *shell, args []string) error {
	sh.printer.PrintSectionHeaders(sh.file.Sections)
	return nil
}

func printSection(sh *shell, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected section <index|name>")
	}

	idx, err := strconv.Atoi(args[0])
	if err == nil {
		if idx < 0 || idx >= sh.file.Sections.Len() {
			return fmt.Errorf(
				"section index out of bound (%d not in [0, %d))",
				idx,
				sh.file.Sections.Len())
		}

		sh.printer.PrintSection(idx, sh.file.Sections.Entries[idx])
		return nil
	}

	for idx, entry := range sh.file.Sections.Entries {
		if entry.Name == args[0] || entry.PrettyName() == args[0] {
			sh.printer.PrintSection(idx, entry)
			return nil
		}
	}

	return fmt.Errorf("section not found: %s", args[0])
}

func disassemble(sh *shell, args []string) error {
	numInst := sh.printer.Config().DisassembleCount
	if numInst <= 0 {
		numInst = config.DefaultDisassembleCount
	}

	if len(args) > 1 {
		return fmt.Errorf("expected disassemble [n]")
	} else if len(args) == 1 {
		val, err := strconv.ParseInt(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("invalid <n> argument (%s): %w", args[0], err)
		}
		numInst = int(val)
	}

	instructions, err := inspect.Disassemble(sh.file, sh.content, numInst)
	if err != nil {
		return err
	}

	sh.printer.PrintDisassembly(instructions)
	return nil
}

func help(sh *shell, args []string) error {
	for _, cmd := range commands {
		fmt.Fprintf(sh.printer.Writer(), "  %-12s %s\n", cmd.name, cmd.description)
	}
	fmt.Fprintf(sh.printer.Writer(), "  %-12s %s\n", "quit", "exit the shell")
	return nil
}
