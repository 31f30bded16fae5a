package app

// ProbeSample is the distance read at the probe angle when scan Seq
// arrived. OK is false when the read failed and the sample is a gap.
type ProbeSample struct {
	Seq      int
	Distance float64
	OK       bool
}

// ProbeHistory keeps the most recent probe samples, overwriting the
// oldest once full.
type ProbeHistory struct {
	samples []ProbeSample
	next    int
	full    bool
}

// NewProbeHistory creates a history holding up to size samples.
func NewProbeHistory(size int) *ProbeHistory {
	return &ProbeHistory{samples: make([]ProbeSample, size)}
}

// Record stores a successful read for scan seq.
func (h *ProbeHistory) Record(seq int, distance float64) {
	h.add(ProbeSample{Seq: seq, Distance: distance, OK: true})
}

// RecordGap stores a failed read for scan seq.
func (h *ProbeHistory) RecordGap(seq int) {
	h.add(ProbeSample{Seq: seq})
}

func (h *ProbeHistory) add(s ProbeSample) {
	h.samples[h.next] = s
	h.next++
	if h.next == len(h.samples) {
		h.next = 0
		h.full = true
	}
}

// Samples returns the stored samples oldest first.
func (h *ProbeHistory) Samples() []ProbeSample {
	if !h.full {
		return append([]ProbeSample(nil), h.samples[:h.next]...)
	}
	out := make([]ProbeSample, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// Trend returns the distances oldest first, with gaps as zero so the
// sparkline leaves them blank.
func (h *ProbeHistory) Trend() []float64 {
	samples := h.Samples()
	if len(samples) == 0 {
		return nil
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		if s.OK {
			out[i] = s.Distance
		}
	}
	return out
}

// Reset forgets all samples.
func (h *ProbeHistory) Reset() {
	h.next = 0
	h.full = false
}

// Len returns the number of stored samples.
func (h *ProbeHistory) Len() int {
	if h.full {
		return len(h.samples)
	}
	return h.next
}
