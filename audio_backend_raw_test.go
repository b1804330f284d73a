// audio_backend_raw_test.go - Tests for the headerless 8-bit stream sink

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestRawStreamSinkBytes(t *testing.T) {
	var buf bytes.Buffer
	s := NewRawStreamSink(&buf)
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	for _, b := range []bool{true, false, false, true} {
		s.WriteSample(b)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
	want := []byte{0xFF, 0x00, 0x00, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestRawFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.raw")
	s := NewRawFileSink(path)
	if s.Name() != "raw:"+path {
		t.Errorf("Name() = %q", s.Name())
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	for i := range RAW_BUFFER_SIZE + 10 {
		s.WriteSample(i%2 == 0)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != RAW_BUFFER_SIZE+10 {
		t.Fatalf("file holds %d bytes, want %d", len(data), RAW_BUFFER_SIZE+10)
	}
	if data[0] != RAW_SAMPLE_HIGH || data[1] != RAW_SAMPLE_LOW {
		t.Errorf("first bytes = % X, want FF 00", data[:2])
	}
}

func TestRawStreamSinkWriteError(t *testing.T) {
	diskFull := errors.New("disk full")
	s := NewRawStreamSink(failingWriter{err: diskFull})
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	for range RAW_BUFFER_SIZE * 2 {
		s.WriteSample(true)
	}
	if err := s.Stop(); !errors.Is(err, diskFull) {
		t.Errorf("Stop() = %v, want %v", err, diskFull)
	}
}

func TestRawFileSinkStartError(t *testing.T) {
	s := NewRawFileSink(filepath.Join(t.TempDir(), "missing", "out.raw"))
	if err := s.Start(); err == nil {
		t.Fatal("Start in a missing directory returned nil")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop after failed Start = %v, want nil", err)
	}
}
