// audio_backend_raw.go - Raw unsigned 8-bit byte stream output, used when stdout is redirected

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
	"io"
	"os"
)

// RawStreamSink writes one byte per sample (RAW_SAMPLE_HIGH/RAW_SAMPLE_LOW),
// unsigned 8-bit mono at SAMPLE_RATE with no header.
type RawStreamSink struct {
	path string
	dst  io.Writer
	file *os.File
	buf  *bufio.Writer
	err  error
}

// NewRawStreamSink writes to w, typically a redirected stdout.
func NewRawStreamSink(w io.Writer) *RawStreamSink {
	return &RawStreamSink{dst: w}
}

// NewRawFileSink creates path on Start and writes the stream there.
func NewRawFileSink(path string) *RawStreamSink {
	return &RawStreamSink{path: path}
}

func (s *RawStreamSink) Name() string {
	if s.path != "" {
		return "raw:" + s.path
	}
	return "raw"
}

func (s *RawStreamSink) Start() error {
	if s.path != "" {
		f, err := os.Create(s.path)
		if err != nil {
			return err
		}
		s.file = f
		s.dst = f
	}
	s.buf = bufio.NewWriterSize(s.dst, RAW_BUFFER_SIZE)
	return nil
}

func (s *RawStreamSink) WriteSample(high bool) {
	if s.err != nil || s.buf == nil {
		return
	}
	b := byte(RAW_SAMPLE_LOW)
	if high {
		b = RAW_SAMPLE_HIGH
	}
	s.err = s.buf.WriteByte(b)
}

func (s *RawStreamSink) Stop() error {
	if s.buf != nil {
		if err := s.buf.Flush(); err != nil && s.err == nil {
			s.err = err
		}
		s.buf = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil && s.err == nil {
			s.err = err
		}
		s.file = nil
	}
	return s.err
}
