// tracker_constants.go - Sample rate, buffer bounds and engine defaults

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

const (
	SAMPLE_RATE = 44100

	// Row and token bounds. A row holds at most ROW_CAPACITY-1 populated
	// columns; the write cursor reaching ROW_CAPACITY is an error.
	ROW_CAPACITY  = 256
	TOKEN_MAX_LEN = 3

	// NOTE_PERIOD_BASE is the period of C-1 (32.7Hz) in samples.
	NOTE_PERIOD_BASE = SAMPLE_RATE * 10 / 327
	NOTE_SEMITONE    = 1.0595
)

// Engine selector characters, from "-0"/"-1" or a first-line ";0"/";1"
const (
	ENGINE_BEEPER = '0'
	ENGINE_PFM    = '1'
)

const (
	BEEPER_DEFAULT_TEMPO = SAMPLE_RATE / 8
	BEEPER_TEMPO_UNIT    = 100

	PFM_DEFAULT_TEMPO = SAMPLE_RATE / 16
	PFM_PULSE_CENTER  = 0x8000
	PFM_PHASE_FULL    = 0xFFFF
	PFM_DRUM_COUNT    = 4
	PFM_DRUM_STRETCH  = 4
)

// PFM effect ids (high nibble of column 3)
const (
	PFM_FX_PULSE_CH1  = 0x1
	PFM_FX_PULSE_CH2  = 0x2
	PFM_FX_SLIDE_UP   = 0x3
	PFM_FX_SLIDE_DOWN = 0x4
	PFM_FX_SET_TEMPO  = 0xF
	PFM_FX_PARAM_MAX  = 15
	PFM_FX_TEMPO_DIV  = 64
)

const (
	// Raw and WAV output: unsigned 8-bit mono.
	RAW_SAMPLE_HIGH = 0xFF
	RAW_SAMPLE_LOW  = 0x00
	RAW_BUFFER_SIZE = 4096

	// Live playback levels, unsigned 8-bit.
	LIVE_SAMPLE_HIGH = 0x30
	LIVE_SAMPLE_LOW  = 0x00

	// 10ms of audio per device write.
	LIVE_BLOCK_SAMPLES = SAMPLE_RATE / 100
	LIVE_QUEUE_BLOCKS  = 8
	LIVE_LATENCY_US    = 20000

	// Longest Stop waits for the live queue to drain.
	LIVE_DRAIN_TIMEOUT_MS = 2000

	WAV_CHUNK_SAMPLES = 4096
	WAV_BIT_DEPTH     = 8
	WAV_FORMAT_PCM    = 1
)
