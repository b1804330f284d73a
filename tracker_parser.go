// tracker_parser.go - Streaming row tokenizer for the one-bit tracker text format

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
	"bufio"
	"errors"
	"io"
)

// Row is one line of parsed columns. Unpopulated columns read as zero.
type Row struct {
	cols [ROW_CAPACITY]int
	n    int
}

// Col returns column i, or 0 when i is outside the populated range.
func (r *Row) Col(i int) int {
	if i < 0 || i >= r.n {
		return 0
	}
	return r.cols[i]
}

func (r *Row) Columns() []int {
	return r.cols[:r.n]
}

func (r *Row) Reset() {
	clear(r.cols[:r.n])
	r.n = 0
}

// push stores v and reports whether there is room for another column.
func (r *Row) push(v int) bool {
	r.cols[r.n] = v
	r.n++
	return r.n < ROW_CAPACITY
}

// RowHandler receives each completed row. The row is reused after the
// handler returns.
type RowHandler func(line int, row *Row) error

// Tokenizer splits tracker text into rows one byte at a time. Once an
// error is returned every later call returns the same error.
type Tokenizer struct {
	OnRow RowHandler
	// OnSelect receives the first non-space character of a comment on
	// line 1, the engine selector.
	OnSelect func(c byte)

	token     [TOKEN_MAX_LEN]byte
	tokenLen  int
	row       Row
	line      int
	inComment bool
	selected  bool
	err       error
}

func NewTokenizer(onRow RowHandler) *Tokenizer {
	return &Tokenizer{OnRow: onRow, line: 1}
}

func (t *Tokenizer) Feed(c byte) error {
	if t.err != nil {
		return t.err
	}
	if t.inComment {
		if c != '\n' {
			t.commentChar(c)
			return nil
		}
		t.inComment = false
	}

	var err error
	switch {
	case c == ';':
		t.inComment = true
	case c == '\n':
		err = t.endLine()
	case isSeparator(c):
		err = t.flushToken()
	default:
		err = t.appendChar(c)
	}
	t.err = err
	return err
}

// Close flushes a final line that has no trailing newline.
func (t *Tokenizer) Close() error {
	if t.err != nil {
		return t.err
	}
	t.inComment = false
	if err := t.flushToken(); err != nil {
		t.err = err
		return err
	}
	if t.row.n > 0 {
		t.err = t.emitRow()
	}
	return t.err
}

// Parse feeds every byte of r through the tokenizer and closes it at EOF.
func (t *Tokenizer) Parse(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return t.Close()
		}
		if err != nil {
			return err
		}
		if err := t.Feed(c); err != nil {
			return err
		}
	}
}

func (t *Tokenizer) commentChar(c byte) {
	if t.line != 1 || t.selected || isSpace(c) {
		return
	}
	t.selected = true
	if t.OnSelect != nil {
		t.OnSelect(c)
	}
}

func (t *Tokenizer) endLine() error {
	if err := t.flushToken(); err != nil {
		return err
	}
	if t.row.n > 0 {
		if err := t.emitRow(); err != nil {
			return err
		}
	}
	t.line++
	return nil
}

func (t *Tokenizer) emitRow() error {
	if t.OnRow != nil {
		if err := t.OnRow(t.line, &t.row); err != nil {
			return err
		}
	}
	t.row.Reset()
	return nil
}

func (t *Tokenizer) appendChar(c byte) error {
	c = toUpper(c)
	if t.tokenLen == TOKEN_MAX_LEN {
		tok := string(t.token[:t.tokenLen]) + string(c)
		return &ParseError{Line: t.line, Token: tok, Reason: "token is too long"}
	}
	t.token[t.tokenLen] = c
	t.tokenLen++
	return nil
}

func (t *Tokenizer) flushToken() error {
	if t.tokenLen == 0 {
		return nil
	}
	tok := string(t.token[:t.tokenLen])
	t.tokenLen = 0
	v, err := ResolveToken(tok, t.line)
	if err != nil {
		return err
	}
	if !t.row.push(v) {
		return &ParseError{Line: t.line, Reason: "row is too long"}
	}
	return nil
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isSpace(c byte) bool {
	return isSeparator(c) || c == '\n' || c == '\v' || c == '\f'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
