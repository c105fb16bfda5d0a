// Package main provides the entry point for mipssim.
// mipssim runs a hex text program on the five-instruction MIPS subset and
// prints the register file and data memory before and after the run.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipssim/emu"
	"github.com/sarchlab/mipssim/loader"
	"github.com/sarchlab/mipssim/report"
)

// defaultProgram is read when no program path is given.
const defaultProgram = "program.txt"

var (
	configPath = flag.String("config", "", "Path to emulator configuration JSON file")
	random     = flag.Bool("random", false, "Fill registers and data memory with random values")
	seed       = flag.Uint64("seed", 0, "Seed for -random (0 picks a time-based seed)")
	trace      = flag.Bool("trace", false, "Print each executed instruction")
	verbose    = flag.Bool("v", false, "Verbose output")
)

type options struct {
	configPath string
	random     bool
	seed       uint64
	trace      bool
	verbose    bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mipssim [options] [program.txt]\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	programPath := defaultProgram
	if flag.NArg() > 0 {
		programPath = flag.Arg(0)
	}

	opts := options{
		configPath: *configPath,
		random:     *random,
		seed:       *seed,
		trace:      *trace,
		verbose:    *verbose,
	}

	os.Exit(run(programPath, opts, os.Stdout, os.Stderr))
}

// run loads and executes the program and returns the process exit code.
func run(programPath string, opts options, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	config := emu.DefaultConfig()
	if opts.configPath != "" {
		var err error
		config, err = emu.LoadConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}

	emulator, err := emu.NewEmulator(
		emu.WithConfig(config),
		emu.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating emulator: %v\n", err)
		return 1
	}

	if err := emulator.LoadProgram(prog.Words); err != nil {
		fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "Loaded: %s\n", programPath)
		fmt.Fprintf(stderr, "Words: %d\n", len(prog.Words))
		_ = report.Dump(stderr, prog)
	}

	if opts.random {
		s := opts.seed
		if s == 0 {
			s = uint64(time.Now().UnixNano())
		}
		logger.WithField("seed", s).Info("randomizing registers and data memory")

		rng := rand.New(rand.NewPCG(s, s))
		emu.RandomizeRegisters(emulator.RegFile(), rng)
		if err := emu.RandomizeRegion(emulator.Memory(), config.DataRegion, rng); err != nil {
			fmt.Fprintf(stderr, "Error initializing data memory: %v\n", err)
			return 1
		}
	}

	printState(stdout, emulator, "Initial")

	if opts.trace {
		fmt.Fprintf(stdout, "\nExecuted instructions:\n")
		emulator.AcceptHook(report.NewTrace(stdout))
	}

	if err := emulator.Run(); err != nil {
		fmt.Fprintf(stderr, "Emulation error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "\n")
	printState(stdout, emulator, "Final")

	if opts.verbose {
		fmt.Fprintf(stderr, "\nProgram: %s\n", programPath)
		fmt.Fprintf(stderr, "Instructions executed: %d\n", emulator.InstructionCount())
	}

	return 0
}

func printState(w io.Writer, e *emu.Emulator, label string) {
	fmt.Fprintf(w, "%s registers:\n", label)
	_ = report.Registers(w, e.RegFile())

	fmt.Fprintf(w, "\n%s data memory:\n", label)
	_ = report.Memory(w, e.Memory(), e.DataRegion())
}
