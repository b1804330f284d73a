// engine_pfm.go - Two channel pulse frequency modulation engine with click drums and effects

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

// PFMEngine is a 2-channel PFM engine. Columns:
//
//	0: channel 1 note period
//	1: channel 2 note period
//	2: drum 1..4, anything else plays no drum
//	3: effect, high nibble selects and low nibble is the parameter
//	   1x pulse width ch1, 2x pulse width ch2, 3x slide up ch1,
//	   4x slide down ch1, Fx tempo
//
// Phase accumulators, pulse widths and increments are 16-bit and wrap.
// Each tick writes two samples, channel 1 then channel 2; a silent
// channel 2 repeats channel 1.
type PFMEngine struct {
	tempo int
	w1    uint16
	w2    uint16
	c1    uint16
	c2    uint16
}

func NewPFMEngine() *PFMEngine {
	return &PFMEngine{
		tempo: PFM_DEFAULT_TEMPO,
		w1:    PFM_PULSE_CENTER,
		w2:    PFM_PULSE_CENTER,
	}
}

func (e *PFMEngine) ID() byte {
	return ENGINE_PFM
}

func (e *PFMEngine) Name() string {
	return "pfm"
}

func (e *PFMEngine) Tempo() int {
	return e.tempo
}

func pfmIncrement(period int) uint16 {
	if period <= 0 {
		return 0
	}
	return uint16(PFM_PHASE_FULL / period)
}

func pfmPulseWidth(param int) uint16 {
	return uint16(PFM_PULSE_CENTER * param / PFM_FX_PARAM_MAX)
}

// applyEffect updates persistent state and returns the per-tick slide
// applied to the channel 1 increment for this row.
func (e *PFMEngine) applyEffect(fx int) uint16 {
	param := fx & 0x0F
	var slide uint16
	switch fx >> 4 {
	case PFM_FX_PULSE_CH1:
		e.w1 = pfmPulseWidth(param)
	case PFM_FX_PULSE_CH2:
		e.w2 = pfmPulseWidth(param)
	case PFM_FX_SLIDE_UP:
		slide = uint16(param)
	case PFM_FX_SLIDE_DOWN:
		slide = -uint16(param)
	case PFM_FX_SET_TEMPO:
		e.tempo = param * SAMPLE_RATE / PFM_FX_TEMPO_DIV
	}
	return slide
}

func (e *PFMEngine) RenderRow(row *Row, out SampleWriter) int {
	inc1 := pfmIncrement(row.Col(0))
	inc2 := pfmIncrement(row.Col(1))
	ch2 := row.Col(1) != 0
	slide := e.applyEffect(row.Col(3))

	n := playDrum(row.Col(2), out)

	for range e.tempo {
		e.c1 += inc1
		out.WriteSample(e.c1 > e.w1)
		inc1 += slide
		if ch2 {
			e.c2 += inc2
			out.WriteSample(e.c2 > e.w2)
		} else {
			out.WriteSample(e.c1 > e.w1)
		}
	}
	return n + 2*e.tempo
}
