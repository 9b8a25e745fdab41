package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/pattyshack/elfdump/config"
	"github.com/pattyshack/elfdump/elf"
	"github.com/pattyshack/elfdump/inspect"
	"github.com/pattyshack/elfdump/logging"
	"github.com/pattyshack/elfdump/mapped"
	"github.com/pattyshack/elfdump/procfs"
	"github.com/pattyshack/elfdump/report"
)

type options struct {
	configPath  string
	noColor     bool
	format      string
	headers     bool
	segments    bool
	sections    bool
	disassemble int
	ignoreMagic bool
	interactive bool
	verbosity   int
	pid         int

	fileName string
}

func parseOptions(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	opts := &options{}

	flags := pflag.NewFlagSet("print-elf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "USAGE: print-elf [flags] <file>")
		fmt.Fprintln(stderr, "       print-elf [flags] -p <pid>")
		flags.PrintDefaults()
	}

	flags.StringVar(
		&opts.configPath,
		"config",
		"",
		"yaml config file (default $"+config.EnvConfigPath+")")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")
	flags.StringVar(&opts.format, "format", "", "output format (text or yaml)")
	flags.BoolVar(&opts.headers, "headers", false, "print the elf header")
	flags.BoolVar(&opts.segments, "segments", false, "print the program headers")
	flags.BoolVar(&opts.sections, "sections", false, "print the section headers")
	flags.IntVarP(
		&opts.disassemble,
		"disassemble",
		"d",
		0,
		"number of instructions to disassemble at the entry point")
	flags.BoolVar(
		&opts.ignoreMagic,
		"ignore-magic",
		false,
		"decode files without the elf magic number")
	flags.BoolVarP(
		&opts.interactive,
		"interactive",
		"i",
		false,
		"start an interactive shell")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")
	flags.IntVarP(
		&opts.pid,
		"pid",
		"p",
		0,
		"inspect the executable of an existing process pid")

	err := flags.Parse(args)
	if err != nil {
		return nil, nil, err
	}

	if opts.pid != 0 {
		if flags.NArg() != 0 {
			return nil, nil, fmt.Errorf("unexpected arguments with -p")
		}
		opts.fileName = procfs.New().ExecutablePath(opts.pid)
	} else if flags.NArg() != 1 {
		flags.Usage()
		return nil, nil, fmt.Errorf("expected exactly one file argument")
	} else {
		opts.fileName = flags.Arg(0)
	}

	return opts, flags, nil
}

// loadConfig layers command line flags on top of the config file and
// environment.
func loadConfig(opts *options, flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(
		config.Path(opts.configPath, config.SystemEnvironment))
	if err != nil {
		return config.Config{}, err
	}

	if opts.noColor {
		cfg.Colors = false
	}

	if flags.Changed("format") {
		format, err := config.ParseFormat(opts.format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = format
	}

	if opts.headers || opts.segments || opts.sections {
		cfg.Show = config.Sections{
			Header:   opts.headers,
			Segments: opts.segments,
			Sections: opts.sections,
		}
	}

	if flags.Changed("disassemble") {
		cfg.DisassembleCount = opts.disassemble
	}

	if opts.ignoreMagic {
		cfg.IgnoreMagic = true
	}

	if flags.Changed("verbose") {
		cfg.Verbosity = opts.verbosity
	}

	return cfg, cfg.Validate()
}

func analyze(
	logger *logging.Logger,
	cfg config.Config,
	opts *options,
	stdout io.Writer,
) error {
	payload, err := mapped.Open(opts.fileName)
	if err != nil {
		return err
	}
	defer payload.Close()

	logger.Debug("Mapped %d bytes", payload.Len())

	file, err := elf.ParseBytes(
		payload.Bytes(),
		elf.ParseOptions{IgnoreMagic: cfg.IgnoreMagic})
	if err != nil {
		return err
	}

	for _, warning := range file.Warnings() {
		logger.Debug("%s", warning)
	}

	printer := report.NewPrinter(stdout, cfg)

	if opts.interactive {
		return newShell(logger, printer, file, payload.Bytes()).run()
	}

	var instructions []inspect.Instruction
	if cfg.DisassembleCount > 0 {
		instructions, err = inspect.Disassemble(
			file,
			payload.Bytes(),
			cfg.DisassembleCount)
		if err != nil {
			logger.Warning("Cannot disassemble entry point: %s", err)
		}
	}

	return printer.PrintFile(file, instructions)
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	opts, flags, err := parseOptions(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %s\n", err)
		return 1
	}

	cfg, err := loadConfig(opts, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %s\n", err)
		return 1
	}

	logger := logging.NewLogger(
		stderr,
		logging.LevelFromVerbosity(cfg.Verbosity),
		cfg.Colors)

	if opts.pid != 0 {
		status, err := procfs.New().GetProcessStatus(opts.pid)
		if err != nil {
			logger.Error("Problem analyzing payload: %s", err)
			return 1
		}
		logger.Info("Process %d (%s): %s", status.Pid, status.Comm, status.State)
	}

	logger.Info("Analyzing: %s ...", opts.fileName)

	err = analyze(logger, cfg, opts, stdout)
	if err != nil {
		logger.Error("Problem analyzing payload: %s", err)
		return 1
	}

	logger.Success("Analysis finished")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
