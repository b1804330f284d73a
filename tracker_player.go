// tracker_player.go - Drives the tokenizer and the selected sound engine over an input stream

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
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hako/durafmt"
)

// trackerDebugEnabled caches the ONEBIT_DEBUG environment variable at init time
var trackerDebugEnabled = func() bool {
	value := strings.ToLower(os.Getenv("ONEBIT_DEBUG"))
	return value == "1" || value == "true" || value == "yes"
}()

// TrackerPlayer feeds tracker text through a Tokenizer and renders each
// row with the selected engine. It is not safe for concurrent use.
type TrackerPlayer struct {
	engine SoundEngine
	out    SampleWriter
	// Diagnostics receives warnings and the debug trace
	Diagnostics io.Writer

	rows    int
	samples uint64
}

func NewTrackerPlayer() *TrackerPlayer {
	return &TrackerPlayer{Diagnostics: os.Stderr}
}

// SelectEngine picks the engine for the session. An invalid id leaves the
// current selection untouched and returns a ConfigError.
func (p *TrackerPlayer) SelectEngine(id byte) error {
	engine, err := NewEngine(id)
	if err != nil {
		return err
	}
	p.engine = engine
	return nil
}

func (p *TrackerPlayer) Engine() SoundEngine {
	return p.engine
}

// selectFromComment handles a selector found in a first-line comment. A
// selection made on the command line wins.
func (p *TrackerPlayer) selectFromComment(c byte) {
	if p.engine != nil {
		return
	}
	if err := p.SelectEngine(c); err != nil {
		p.warnf("%v\n", err)
	}
}

// Load plays the tracker file at path into out.
func (p *TrackerPlayer) Load(path string, out SampleWriter) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Play(f, out)
}

// Play reads r to the end, writing every row's samples to out. It stops at
// the first parse or configuration error; rows already rendered stay
// rendered.
func (p *TrackerPlayer) Play(r io.Reader, out SampleWriter) error {
	p.out = out
	tok := NewTokenizer(p.renderRow)
	tok.OnSelect = p.selectFromComment
	if err := tok.Parse(r); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}
	return nil
}

func (p *TrackerPlayer) renderRow(line int, row *Row) error {
	if p.engine == nil {
		return errNoEngine
	}
	if trackerDebugEnabled {
		p.warnf("row %d line %d engine %s tempo %d cols %X\n",
			p.rows, line, p.engine.Name(), p.engine.Tempo(), row.Columns())
	}
	n := p.engine.RenderRow(row, p.out)
	p.rows++
	p.samples += uint64(n)
	return nil
}

func (p *TrackerPlayer) warnf(format string, args ...any) {
	if p.Diagnostics == nil {
		return
	}
	fmt.Fprintf(p.Diagnostics, format, args...)
}

// Rows returns the number of rows rendered so far.
func (p *TrackerPlayer) Rows() int {
	return p.rows
}

// Samples returns the number of samples written so far.
func (p *TrackerPlayer) Samples() uint64 {
	return p.samples
}

func (p *TrackerPlayer) Duration() time.Duration {
	return time.Duration(p.samples) * time.Second / SAMPLE_RATE
}

// DurationText returns the rendered length to the millisecond,
// e.g. "3 seconds 120 milliseconds".
func (p *TrackerPlayer) DurationText() string {
	if p.samples == 0 {
		return ""
	}
	return durafmt.Parse(p.Duration().Round(time.Millisecond)).String()
}
