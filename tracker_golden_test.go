// tracker_golden_test.go - Golden output for whole tunes through the raw stream

package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

// Tunes covering note periods, tempo changes, drums, pulse widths, slides
// and 16-bit phase wraparound. Length and SHA-256 are of the raw U8 stream.
var goldenTunes = []struct {
	name   string
	tune   string
	length int
	sha256 string
}{
	{
		name: "pfm",
		tune: ";1 pfm golden\n" +
			"C-4 C-5 1 17\n" +
			"E-4 - 0 2A\n" +
			"G-4 G-3 2 33\n" +
			"A#3 0 3 45\n" +
			"C-1 H#7 4 F3\n" +
			"D#2 - 0 1F\n" +
			"1 FFF 0 0\n" +
			"- C-7 1 20\n" +
			"B-6 E-2 0 F0\n" +
			"F#5 A-4 2 FA\n" +
			"\n" +
			"A-4 A-4 0 35\n",
		length: 67181,
		sha256: "22136dc51a9cd7bddce1d997594869e4fdc9eb3742e6441644aab4f61483dafe",
	},
	{
		name: "beeper",
		tune: ";0 beeper golden\n" +
			"C-4 2C\n" +
			"A-4\n" +
			"C#1 3\n" +
			"-\n" +
			"H#7 1\n" +
			"1\n" +
			"2 5\n" +
			"FFF 0A\n" +
			"G-6\n",
		length: 12100,
		sha256: "d10acb07c4aa0e7881025a2e199d836c8d7235f7bda58b9682cc5e58fa7544a4",
	},
}

func TestGoldenTunes(t *testing.T) {
	for _, tt := range goldenTunes {
		t.Run(tt.name, func(t *testing.T) {
			var raw bytes.Buffer
			sink := NewRawStreamSink(&raw)
			if err := sink.Start(); err != nil {
				t.Fatalf("Start error: %v", err)
			}
			p, _ := newTestPlayer()
			if err := p.Play(strings.NewReader(tt.tune), sink); err != nil {
				t.Fatalf("Play error: %v", err)
			}
			if err := sink.Stop(); err != nil {
				t.Fatalf("Stop error: %v", err)
			}

			if raw.Len() != tt.length {
				t.Fatalf("got %d bytes, want %d", raw.Len(), tt.length)
			}
			sum := sha256.Sum256(raw.Bytes())
			if got := hex.EncodeToString(sum[:]); got != tt.sha256 {
				t.Errorf("sha256 = %s, want %s", got, tt.sha256)
			}
		})
	}
}
