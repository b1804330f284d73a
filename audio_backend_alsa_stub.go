//go:build !linux || !alsa || headless

// audio_backend_alsa_stub.go - ALSA placeholder when built without the alsa tag

package main

import "fmt"

func init() {
	compiledFeatures = append(compiledFeatures, "audio:alsa-unavailable")
}

type ALSASink struct{}

func NewALSASink() *ALSASink {
	return &ALSASink{}
}

func (s *ALSASink) Name() string {
	return "alsa"
}

func (s *ALSASink) Start() error {
	return fmt.Errorf("ALSA output requires Linux and a build with -tags alsa")
}

func (s *ALSASink) WriteSample(high bool) {}

func (s *ALSASink) Stop() error {
	return nil
}
