//go:build !headless

// audio_backend_oto.go - OTO v3 live playback of one-bit samples

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
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:oto")
}

// OtoSink plays samples live. Engines write into LIVE_BLOCK_SAMPLES blocks;
// full blocks go through a bounded queue to oto's reader goroutine, so a
// full queue blocks the engine and an empty queue plays LIVE_SAMPLE_LOW.
type OtoSink struct {
	ctx      *oto.Context
	player   *oto.Player
	block    []byte
	queue    chan []byte
	pending  []byte       // owned by Read
	inFlight atomic.Int32 // blocks queued or partially read
	started  bool
	mutex    sync.Mutex // Only for setup/control operations
}

func NewOtoSink() *OtoSink {
	return &OtoSink{}
}

func (s *OtoSink) Name() string {
	return "oto"
}

func (s *OtoSink) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.started {
		return nil
	}
	op := &oto.NewContextOptions{
		SampleRate:   SAMPLE_RATE,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   LIVE_LATENCY_US * time.Microsecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready

	s.ctx = ctx
	s.queue = make(chan []byte, LIVE_QUEUE_BLOCKS)
	s.block = make([]byte, 0, LIVE_BLOCK_SAMPLES)
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	s.started = true
	return nil
}

func (s *OtoSink) WriteSample(high bool) {
	if s.block == nil {
		return
	}
	b := byte(LIVE_SAMPLE_LOW)
	if high {
		b = LIVE_SAMPLE_HIGH
	}
	s.block = append(s.block, b)
	if len(s.block) == LIVE_BLOCK_SAMPLES {
		s.submit()
	}
}

func (s *OtoSink) submit() {
	if len(s.block) == 0 {
		return
	}
	s.inFlight.Add(1)
	s.queue <- s.block
	s.block = make([]byte, 0, LIVE_BLOCK_SAMPLES)
}

// Read is called by oto from its own goroutine.
func (s *OtoSink) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			select {
			case b := <-s.queue:
				s.pending = b
			default:
				for i := n; i < len(p); i++ {
					p[i] = LIVE_SAMPLE_LOW
				}
				return len(p), nil
			}
		}
		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
		if len(s.pending) == 0 {
			s.inFlight.Add(-1)
		}
	}
	return n, nil
}

// Stop plays out everything written so far, then closes the player.
func (s *OtoSink) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.started {
		return nil
	}
	s.submit()
	s.block = nil
	err := s.waitDrained(s.player.Err, LIVE_DRAIN_TIMEOUT_MS*time.Millisecond)
	if err == nil {
		// Let the device play what oto already pulled in.
		buffered := time.Duration(s.player.BufferedSize()) * time.Second / SAMPLE_RATE
		time.Sleep(buffered + LIVE_LATENCY_US*time.Microsecond)
	}

	if closeErr := s.player.Close(); err == nil {
		err = closeErr
	}
	s.player = nil
	s.started = false
	return err
}

// waitDrained blocks until the reader has taken every queued block. It gives
// up when playerErr reports a failure or timeout passes.
func (s *OtoSink) waitDrained(playerErr func() error, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for s.inFlight.Load() > 0 {
		if err := playerErr(); err != nil {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("playback stalled with %d blocks queued", s.inFlight.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}
