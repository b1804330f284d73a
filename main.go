// main.go - Main entry point for the onebit tracker synthesizer

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2026 Zayn Otley
https://github.com/IntuitionAmiga/onebit
License: GPLv3 or later
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer, prog string, flagSet *flag.FlagSet) {
	fmt.Fprintf(w, "%s [-X] [options] [file], where X is sound engine ID (try -0 or -1)\n", prog)
	fmt.Fprintln(w, "Reads tracker rows from file or stdin. Output plays live on a terminal,")
	fmt.Fprintln(w, "otherwise raw unsigned 8-bit 44100Hz mono is written to stdout.")
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
	flagSet.SetOutput(io.Discard)
}

// splitEngineArgs pulls "-X" engine selectors out of args. A two character
// argument that is not a defined flag counts as a selector unless it is the
// value of the flag before it. Everything after "--" is left alone.
func splitEngineArgs(flagSet *flag.FlagSet, args []string) (selectors []byte, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return selectors, append(rest, args[i:]...)
		}
		if len(arg) == 2 && arg[0] == '-' && flagSet.Lookup(arg[1:]) == nil {
			selectors = append(selectors, arg[1])
			continue
		}
		rest = append(rest, arg)
		if flagTakesValue(flagSet, arg) && i+1 < len(args) {
			i++
			rest = append(rest, args[i])
		}
	}
	return selectors, rest
}

// flagTakesValue reports whether arg is a non-boolean flag written without
// "=value", so the next argument belongs to it.
func flagTakesValue(flagSet *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if !strings.HasPrefix(arg, "-") || name == "" || strings.Contains(name, "=") {
		return false
	}
	f := flagSet.Lookup(name)
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var (
		showHelp     bool
		showFeatures bool
		verbose      bool
		outPath      string
		backendName  string
	)

	prog := "onebit"
	if len(args) > 0 {
		prog = args[0]
	}
	flagSet := flag.NewFlagSet(prog, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&showHelp, "h", false, "Print usage and exit")
	flagSet.BoolVar(&showFeatures, "features", false, "Print version, compiled backends and engines")
	flagSet.BoolVar(&verbose, "v", false, "Print a summary when playback ends")
	flagSet.StringVar(&outPath, "o", "", "Write to a file instead of stdout (.wav for a WAV container)")
	flagSet.StringVar(&backendName, "backend", "auto", "Audio backend: auto, oto, alsa or raw")

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}
	selectors, rest := splitEngineArgs(flagSet, cmdArgs)
	if err := flagSet.Parse(rest); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		usage(stderr, prog, flagSet)
		return 1
	}
	if showHelp {
		usage(stderr, prog, flagSet)
		return 1
	}
	if showFeatures {
		printFeatures(stderr)
		return 0
	}
	if flagSet.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: at most one input file")
		return 1
	}

	player := NewTrackerPlayer()
	player.Diagnostics = stderr
	for _, id := range selectors {
		if err := player.SelectEngine(id); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}

	backend, err := ParseAudioBackend(backendName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	sink, err := NewAudioSink(backend, outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := StartAudioSink(sink); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	counter := &countingSink{AudioSink: sink}
	var playErr error
	if filename := flagSet.Arg(0); filename != "" && filename != "-" {
		playErr = player.Load(filename, counter)
	} else {
		playErr = player.Play(stdin, counter)
	}
	stopErr := sink.Stop()

	status := 0
	if playErr != nil {
		reportPlayError(stderr, playErr)
		status = 1
	}
	if stopErr != nil {
		fmt.Fprintf(stderr, "%s output error: %v\n", sink.Name(), stopErr)
		status = 1
	}
	if verbose {
		printSummary(stderr, player, counter)
	}
	return status
}

func reportPlayError(w io.Writer, err error) {
	var parseErr *ParseError
	var configErr *ConfigError
	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintln(w, parseErr)
	case errors.As(err, &configErr):
		fmt.Fprintln(w, configErr)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func printSummary(w io.Writer, player *TrackerPlayer, counter *countingSink) {
	name := "none"
	if engine := player.Engine(); engine != nil {
		name = engine.Name()
	}
	fmt.Fprintf(w, "%s via %s: %d rows, %s samples (%s), duty %.0f%%",
		name,
		counter.Name(),
		player.Rows(),
		humanize.Comma(int64(player.Samples())),
		humanize.Bytes(counter.samples),
		counter.DutyCycle()*100,
	)
	if text := player.DurationText(); text != "" {
		fmt.Fprintf(w, ", %s", text)
	}
	fmt.Fprintln(w)
}
