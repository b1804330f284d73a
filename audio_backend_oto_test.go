//go:build !headless

// audio_backend_oto_test.go - Tests for the live sink block queue

package main

import (
	"errors"
	"testing"
	"time"
)

func newQueuedOtoSink() *OtoSink {
	return &OtoSink{
		queue: make(chan []byte, LIVE_QUEUE_BLOCKS),
		block: make([]byte, 0, LIVE_BLOCK_SAMPLES),
	}
}

func noPlayerError() error { return nil }

func TestOtoSinkQueueAndRead(t *testing.T) {
	s := newQueuedOtoSink()
	for i := range LIVE_BLOCK_SAMPLES + 3 {
		s.WriteSample(i%2 == 0)
	}
	s.submit()
	if got := s.inFlight.Load(); got != 2 {
		t.Fatalf("inFlight = %d, want 2", got)
	}

	p := make([]byte, LIVE_BLOCK_SAMPLES+10)
	n, err := s.Read(p)
	if err != nil || n != len(p) {
		t.Fatalf("Read = %d, %v, want %d, nil", n, err, len(p))
	}
	if p[0] != LIVE_SAMPLE_HIGH || p[1] != LIVE_SAMPLE_LOW {
		t.Errorf("first levels = %#x %#x, want %#x %#x", p[0], p[1], LIVE_SAMPLE_HIGH, LIVE_SAMPLE_LOW)
	}
	// Underrun after the three queued samples plays the low level.
	for i := LIVE_BLOCK_SAMPLES + 3; i < len(p); i++ {
		if p[i] != LIVE_SAMPLE_LOW {
			t.Fatalf("underrun byte %d = %#x, want %#x", i, p[i], LIVE_SAMPLE_LOW)
		}
	}
	if err := s.waitDrained(noPlayerError, time.Second); err != nil {
		t.Errorf("waitDrained after reading everything = %v, want nil", err)
	}
}

func TestOtoSinkWaitDrainedTimeout(t *testing.T) {
	s := newQueuedOtoSink()
	s.WriteSample(true)
	s.submit()

	start := time.Now()
	if err := s.waitDrained(noPlayerError, 20*time.Millisecond); err == nil {
		t.Fatal("waitDrained with a stalled reader returned nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("waitDrained took %v, want it bounded by the timeout", elapsed)
	}
}

func TestOtoSinkWaitDrainedPlayerError(t *testing.T) {
	s := newQueuedOtoSink()
	s.WriteSample(true)
	s.submit()

	deviceLost := errors.New("device lost")
	err := s.waitDrained(func() error { return deviceLost }, time.Minute)
	if !errors.Is(err, deviceLost) {
		t.Errorf("waitDrained = %v, want %v", err, deviceLost)
	}
}
