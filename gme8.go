// This file is part of gme8.
//
// gme8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gme8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gme8.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gme8/debugger"
	"github.com/jetsetilly/gme8/debugger/easyterm"
	"github.com/jetsetilly/gme8/digest"
	"github.com/jetsetilly/gme8/disassembly"
	"github.com/jetsetilly/gme8/harness"
	"github.com/jetsetilly/gme8/logger"
	"github.com/jetsetilly/gme8/modalflag"
	"github.com/jetsetilly/gme8/performance"
	"github.com/jetsetilly/gme8/performance/limiter"
	"github.com/jetsetilly/gme8/statsview"
	"github.com/jetsetilly/gme8/version"
	"github.com/jetsetilly/gme8/wavwriter"
)

// sample rate of wav files created by the RUN mode.
const sampleRate = 44100

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		os.Exit(exitOK)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to use with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "DEBUG":
		err = debug(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// flags shared by the modes that run a program.
type machineFlags struct {
	kind  *string
	load  *uint16
	entry *uint16
	irq   *int
	log   *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		kind:  md.AddString("cpu", "NES", fmt.Sprintf("console kind: %s", strings.Join(harness.Kinds(), ", "))),
		load:  md.AddAddress("load", 0x8000, "load address of the program"),
		entry: md.AddAddress("entry", 0, "address of the routine to call (default load address)"),
		irq:   md.AddInt("irq", -1, "cycles between interrupts. 0 for none (default frame length)"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// create the harness and call the program in the named file
func (mf machineFlags) create(md *modalflag.Modes, output io.Writer) (*harness.Harness, error) {
	if *mf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	kind, err := harness.ParseKind(*mf.kind)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	h, err := harness.New(kind)
	if err != nil {
		return nil, err
	}

	if err := h.Load(data, *mf.load); err != nil {
		return nil, err
	}

	if *mf.irq >= 0 {
		h.SetPeriod(*mf.irq)
	}

	entry := *mf.load
	md.Visit(func(f string) {
		if f == "entry" {
			entry = *mf.entry
		}
	})
	h.Call(entry)

	return h, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run for")
	idle := md.AddBool("idle", false, "stop when the routine returns")
	realtime := md.AddBool("realtime", false, "limit frames to the console frame rate")
	wav := md.AddString("wav", "", "record beeper to wav file")
	mv := md.AddString("memviz", "", "write graph of the memory map to file at the end of the run")
	dig := md.AddBool("digest", false, "print SHA-1 digest of the beeper output")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	h, err := mf.create(md, output)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		defer statsview.Launch(output)()
	}

	if *realtime {
		lim := limiter.NewLimiter(h.FrameRate())
		defer lim.Stop()
		h.OnFrame = func(_ int) error {
			lim.Wait()
			return nil
		}
	}

	for i := 0; i < *frames; i++ {
		if err := h.RunFrames(1); err != nil {
			return err
		}
		if *idle && h.Idle() {
			break // for loop
		}
	}

	fmt.Fprintf(output, "%d frames, %d interrupts, %d illegal\n", h.Frames, h.Interrupts, h.Illegal)
	fmt.Fprintln(output, h.CPU.String())
	if h.CPU.Diag().Warnings() {
		fmt.Fprintln(output, h.CPU.Diag().String())
	}

	var samples []int
	if *wav != "" || *dig {
		samples = h.Beeper.Samples(h.Clock(), sampleRate)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, sampleRate)
		if err != nil {
			return err
		}
		if err := aw.SetAudio(samples); err != nil {
			return err
		}
		if err := aw.EndMixing(); err != nil {
			return err
		}
	}

	if *dig {
		d := digest.NewAudio()
		if err := d.SetAudio(samples); err != nil {
			return err
		}
		fmt.Fprintf(output, "digest: %s\n", d.Hash())
	}

	if *mv != "" {
		f, err := os.Create(*mv)
		if err != nil {
			return err
		}
		snapshot := h.Snapshot()
		memviz.Map(f, &snapshot)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	breaks := md.AddAddressList("break", "breakpoint address. can be a comma separated list")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	h, err := mf.create(md, output)
	if err != nil {
		return err
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin); err != nil {
		return err
	}
	if err := term.CBreakMode(); err != nil {
		return err
	}
	defer term.CanonicalMode()

	dbg := debugger.NewDebugger(h, os.Stdin, output)
	for _, b := range *breaks {
		dbg.AddBreak(b)
	}

	return dbg.Loop()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	kind := md.AddString("cpu", "NES", "console kind: NES, SAP, HES")
	load := md.AddAddress("load", 0x8000, "load address of the program")
	start := md.AddAddress("start", 0, "address of the first instruction (default load address)")
	count := md.AddInt("count", 32, "number of instructions")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program file required for %s mode", md)
	}

	k, err := harness.ParseKind(*kind)
	if err != nil {
		return err
	}

	h, err := harness.New(k)
	if err != nil {
		return err
	}

	defs := h.Definitions()
	if defs == nil {
		return fmt.Errorf("no disassembly for %s", k)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}
	if err := h.Load(data, *load); err != nil {
		return err
	}

	address := *load
	md.Visit(func(f string) {
		if f == "start" {
			address = *start
		}
	})

	// peeking the RAM directly means the IO pages are disassembled too
	ram := h.RAM()
	entries := disassembly.Disassemble(defs, func(a uint16) uint8 { return ram[a] }, address, *count)

	return disassembly.Write(output, entries, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   true,
		Notes:    true,
	})
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run without the frame rate limiter")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	h, err := mf.create(md, output)
	if err != nil {
		return err
	}

	_, err = performance.Check(output, prf, h, *uncapped, *duration)
	return err
}
