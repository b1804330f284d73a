// tracker_interfaces.go - Common interfaces for sound engines and audio sinks

package main

// SampleWriter receives one-bit samples, one call per sample.
// Implementations never report errors here; sinks keep them until Stop.
type SampleWriter interface {
	WriteSample(high bool)
}

// AudioSink is an output backend, selected once at startup
type AudioSink interface {
	SampleWriter
	// Name identifies the backend in diagnostics
	Name() string
	// Start opens the device or file. Failure is fatal before any row plays.
	Start() error
	// Stop flushes buffered samples, releases the device and returns the
	// first write error seen, if any
	Stop() error
}

// SoundEngine is implemented by the beeper and PFM engines.
// Engine state persists between rows for the life of the value.
type SoundEngine interface {
	// ID returns the selector character ('0', '1')
	ID() byte
	// Name returns a short human readable engine name
	Name() string
	// Tempo returns the current tempo in engine ticks per row
	Tempo() int
	// RenderRow writes the row's samples to out and returns how many it wrote
	RenderRow(row *Row, out SampleWriter) int
}
