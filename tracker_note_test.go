// tracker_note_test.go - Tests for note name and hex token resolution

package main

import (
	"errors"
	"testing"
)

func TestResolveNotePeriods(t *testing.T) {
	tests := []struct {
		token  string
		period int
	}{
		{"C-1", 1348},
		{"C#1", 1272},
		{"D-1", 1200},
		{"A-1", 801},
		{"B-1", 713},
		{"H-1", 713},
		{"E#1", 1009},
		{"F-1", 1009},
		{"B#1", 673},
		{"C-2", 673},
		{"C-4", 168},
		{"A-4", 100},
		{"C-7", 21},
		{"G-7", 14},
		{"G#7", 13},
		{"A-7", 12},
		{"H-7", 11},
		{"H#7", 10},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ResolveNote(tt.token)
			if !ok {
				t.Fatalf("ResolveNote(%q) not recognised as a note", tt.token)
			}
			if got != tt.period {
				t.Errorf("ResolveNote(%q) = %d, want %d", tt.token, got, tt.period)
			}
		})
	}
}

func TestResolveNoteDeterministic(t *testing.T) {
	first, _ := ResolveNote("F#3")
	for range 10 {
		got, _ := ResolveNote("F#3")
		if got != first {
			t.Fatalf("ResolveNote(\"F#3\") = %d, earlier %d", got, first)
		}
	}
}

func TestResolveNoteDescendingWithinOctave(t *testing.T) {
	chromatic := []string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}
	for octave := byte('1'); octave <= '6'; octave++ {
		prev := 0
		for i, name := range chromatic {
			tok := name + string(octave)
			period, ok := ResolveNote(tok)
			if !ok {
				t.Fatalf("ResolveNote(%q) not recognised", tok)
			}
			if i > 0 && period >= prev {
				t.Errorf("%s period %d not below previous %d", tok, period, prev)
			}
			prev = period
		}
	}
}

func TestResolveNoteRejects(t *testing.T) {
	for _, tok := range []string{"", "C", "C-", "C-0", "C-8", "I-1", "C+1", "c-1", "C-10"} {
		if _, ok := ResolveNote(tok); ok {
			t.Errorf("ResolveNote(%q) accepted, want rejection", tok)
		}
	}
}

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"note", "A-4", 100},
		{"silence", "-", 0},
		{"hex digit", "F", 0xF},
		{"hex byte", "F5", 0xF5},
		{"hex max", "FFF", 0xFFF},
		{"leading zeros", "001", 1},
		{"zero", "00", 0},
		{"hex that looks like a letter", "E", 0xE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveToken(tt.token, 1)
			if err != nil {
				t.Fatalf("ResolveToken(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ResolveToken(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolveTokenInvalid(t *testing.T) {
	for _, tok := range []string{"1G", "G", "-1", "--", "---", "-FF", "C-8", "X", "1-", "#"} {
		t.Run(tok, func(t *testing.T) {
			_, err := ResolveToken(tok, 7)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ResolveToken(%q) error = %v, want *ParseError", tok, err)
			}
			if parseErr.Line != 7 || parseErr.Token != tok {
				t.Errorf("ParseError = %+v, want line 7 token %q", parseErr, tok)
			}
		})
	}
}
