// tracker_note.go - Note name and hex literal resolution for tracker row tokens

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

import "strconv"

// Semitone offsets for A..H. H doubles as B.
var noteOffsets = [8]int{9, 11, 0, 2, 4, 5, 7, 11}

func isNoteToken(tok string) bool {
	return len(tok) == 3 &&
		tok[0] >= 'A' && tok[0] <= 'H' &&
		(tok[1] == '-' || tok[1] == '#') &&
		tok[2] >= '1' && tok[2] <= '7'
}

// Only a lone dash is silence; "--" and "-1" are invalid tokens.
func isSilenceToken(tok string) bool {
	return tok == "-"
}

// ResolveNote converts an upper-case note name such as "C#4" into a square
// wave period in samples. ok is false if tok is not a note name.
func ResolveNote(tok string) (period int, ok bool) {
	if !isNoteToken(tok) {
		return 0, false
	}
	p := noteOffsets[tok[0]-'A'] + int(tok[2]-'1')*12
	if tok[1] == '#' {
		p++
	}
	return notePeriod(p), true
}

// notePeriod raises the semitone ratio by repeated float32 multiplication,
// rounding after every step. Periods must match that product, not math.Pow.
func notePeriod(semitones int) int {
	f := float32(1)
	for range semitones {
		f = float32(float64(f) * NOTE_SEMITONE)
	}
	return int(float32(NOTE_PERIOD_BASE) / f)
}

// ResolveToken turns one upper-cased row token into a column value: a note
// period, 0 for a silence marker, or a hexadecimal literal.
func ResolveToken(tok string, line int) (int, error) {
	if period, ok := ResolveNote(tok); ok {
		return period, nil
	}
	if isSilenceToken(tok) {
		return 0, nil
	}
	n, err := strconv.ParseUint(tok, 16, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Token: tok, Reason: "invalid token"}
	}
	return int(n), nil
}
