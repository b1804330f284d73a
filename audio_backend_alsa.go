//go:build linux && alsa && !headless

// audio_backend_alsa.go - ALSA live playback of one-bit samples

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

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle = NULL;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate, unsigned int latency) {
    return snd_pcm_set_params(handle, SND_PCM_FORMAT_U8,
        SND_PCM_ACCESS_RW_INTERLEAVED, 1, rate, 1, latency);
}

static int writePCM(snd_pcm_t* handle, unsigned char* buffer, int frames) {
    int r = snd_pcm_writei(handle, buffer, frames);
    if (r < 0) {
        r = snd_pcm_recover(handle, r, 0);
    }
    return r;
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:alsa")
}

// ALSASink writes LIVE_BLOCK_SAMPLES blocks of unsigned 8-bit mono to the
// default PCM device. Underruns are recovered inside writePCM.
type ALSASink struct {
	handle *C.snd_pcm_t
	buf    [LIVE_BLOCK_SAMPLES]byte
	pos    int
	err    error
}

func NewALSASink() *ALSASink {
	return &ALSASink{}
}

func (s *ALSASink) Name() string {
	return "alsa"
}

func (s *ALSASink) Start() error {
	device := C.CString("default")
	defer C.free(unsafe.Pointer(device))

	var err C.int
	handle := C.openPCM(device, &err)
	if err < 0 {
		return fmt.Errorf("failed to open PCM device: %s", C.GoString(C.snd_strerror(err)))
	}
	if err = C.setupPCM(handle, C.uint(SAMPLE_RATE), C.uint(LIVE_LATENCY_US)); err < 0 {
		C.closePCM(handle)
		return fmt.Errorf("failed to setup PCM: %s", C.GoString(C.snd_strerror(err)))
	}
	s.handle = handle
	s.pos = 0
	return nil
}

func (s *ALSASink) WriteSample(high bool) {
	if s.handle == nil {
		return
	}
	s.buf[s.pos] = LIVE_SAMPLE_LOW
	if high {
		s.buf[s.pos] = LIVE_SAMPLE_HIGH
	}
	s.pos++
	if s.pos == len(s.buf) {
		s.flush()
	}
}

func (s *ALSASink) flush() {
	if s.pos == 0 {
		return
	}
	frames := C.writePCM(s.handle, (*C.uchar)(unsafe.Pointer(&s.buf[0])), C.int(s.pos))
	if frames < 0 && s.err == nil {
		s.err = fmt.Errorf("write failed: %s", C.GoString(C.snd_strerror(frames)))
	}
	s.pos = 0
}

func (s *ALSASink) Stop() error {
	if s.handle == nil {
		return s.err
	}
	s.flush()
	C.closePCM(s.handle)
	s.handle = nil
	return s.err
}
