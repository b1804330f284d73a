// audio_backend_wav.go - WAV file output via go-audio/wav

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
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVFileSink writes the same bytes as RawStreamSink inside a RIFF/WAVE
// container: 8-bit unsigned PCM, mono, SAMPLE_RATE.
type WAVFileSink struct {
	path string
	file *os.File
	enc  *wav.Encoder
	buf  *audio.IntBuffer
	err  error
}

func NewWAVFileSink(path string) *WAVFileSink {
	return &WAVFileSink{path: path}
}

func (s *WAVFileSink) Name() string {
	return "wav:" + s.path
}

func (s *WAVFileSink) Start() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	s.file = f
	s.enc = wav.NewEncoder(f, SAMPLE_RATE, WAV_BIT_DEPTH, 1, WAV_FORMAT_PCM)
	s.buf = &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SAMPLE_RATE,
		},
		Data:           make([]int, 0, WAV_CHUNK_SAMPLES),
		SourceBitDepth: WAV_BIT_DEPTH,
	}
	return nil
}

func (s *WAVFileSink) WriteSample(high bool) {
	if s.err != nil || s.buf == nil {
		return
	}
	v := RAW_SAMPLE_LOW
	if high {
		v = RAW_SAMPLE_HIGH
	}
	s.buf.Data = append(s.buf.Data, v)
	if len(s.buf.Data) == WAV_CHUNK_SAMPLES {
		s.flush()
	}
}

func (s *WAVFileSink) flush() {
	if len(s.buf.Data) == 0 {
		return
	}
	if err := s.enc.Write(s.buf); err != nil {
		s.err = err
	}
	s.buf.Data = s.buf.Data[:0]
}

// Stop writes the remaining samples and finalises the RIFF header sizes.
func (s *WAVFileSink) Stop() error {
	if s.file == nil {
		return s.err
	}
	if s.err == nil {
		s.flush()
	}
	if err := s.enc.Close(); err != nil && s.err == nil {
		s.err = err
	}
	if err := s.file.Close(); err != nil && s.err == nil {
		s.err = err
	}
	s.file = nil
	s.buf = nil
	return s.err
}
