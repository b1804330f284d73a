// audio_output.go - Audio sink selection

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
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

const (
	AUDIO_BACKEND_AUTO = iota
	AUDIO_BACKEND_OTO
	AUDIO_BACKEND_ALSA
	AUDIO_BACKEND_RAW
)

var audioBackendNames = map[string]int{
	"auto": AUDIO_BACKEND_AUTO,
	"oto":  AUDIO_BACKEND_OTO,
	"alsa": AUDIO_BACKEND_ALSA,
	"raw":  AUDIO_BACKEND_RAW,
}

func ParseAudioBackend(name string) (int, error) {
	backend, ok := audioBackendNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown audio backend: %s (want auto, oto, alsa or raw)", name)
	}
	return backend, nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewAudioSink picks the output for a session. A non-empty path writes a
// file: WAV for a .wav extension, raw bytes otherwise. With no path, auto
// plays live when stdout is a terminal and streams raw bytes to stdout
// when it is redirected.
func NewAudioSink(backend int, path string, stdout io.Writer) (AudioSink, error) {
	if path != "" {
		if backend != AUDIO_BACKEND_AUTO && backend != AUDIO_BACKEND_RAW {
			return nil, fmt.Errorf("output file %s cannot be combined with a live backend", path)
		}
		if strings.EqualFold(filepath.Ext(path), ".wav") {
			return NewWAVFileSink(path), nil
		}
		return NewRawFileSink(path), nil
	}

	switch backend {
	case AUDIO_BACKEND_AUTO:
		if isTerminal(stdout) {
			return NewOtoSink(), nil
		}
		return NewRawStreamSink(stdout), nil
	case AUDIO_BACKEND_OTO:
		return NewOtoSink(), nil
	case AUDIO_BACKEND_ALSA:
		return NewALSASink(), nil
	case AUDIO_BACKEND_RAW:
		return NewRawStreamSink(stdout), nil
	default:
		return nil, fmt.Errorf("unknown audio backend: %d", backend)
	}
}

// StartAudioSink starts sink, wrapping a failure in a BackendError.
func StartAudioSink(sink AudioSink) error {
	if err := sink.Start(); err != nil {
		return &BackendError{Backend: sink.Name(), Err: err}
	}
	return nil
}

// countingSink counts the samples passed through to an AudioSink.
type countingSink struct {
	AudioSink
	high    uint64
	samples uint64
}

func (c *countingSink) WriteSample(high bool) {
	c.samples++
	if high {
		c.high++
	}
	c.AudioSink.WriteSample(high)
}

// DutyCycle returns the fraction of high samples written.
func (c *countingSink) DutyCycle() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.high) / float64(c.samples)
}
