// tracker_test_helpers_test.go - Test helpers for engine and player output.

package main

// rowOf builds a row from literal column values. Extra values beyond the
// row capacity are dropped.
func rowOf(cols ...int) *Row {
	r := &Row{}
	for _, v := range cols {
		if !r.push(v) {
			break
		}
	}
	return r
}

// recordingSink keeps every sample written to it.
type recordingSink struct {
	bits    []bool
	started bool
	stopped bool
}

func (s *recordingSink) WriteSample(high bool) {
	s.bits = append(s.bits, high)
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Start() error {
	s.started = true
	return nil
}

func (s *recordingSink) Stop() error {
	s.stopped = true
	return nil
}

func (s *recordingSink) highCount() int {
	n := 0
	for _, b := range s.bits {
		if b {
			n++
		}
	}
	return n
}

// discardSink counts samples without storing them.
type discardSink struct {
	n int
}

func (s *discardSink) WriteSample(bool) {
	s.n++
}

func renderRows(engine SoundEngine, rows ...*Row) *recordingSink {
	out := &recordingSink{}
	for _, row := range rows {
		engine.RenderRow(row, out)
	}
	return out
}
