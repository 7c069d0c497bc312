package ui

// series is a fixed-size ring buffer of chart samples. It belongs to the
// UI goroutine and is never shared with the poller.
type series struct {
	data  []float64
	head  int
	count int
	size  int
}

func newSeries(size int) *series {
	if size <= 0 {
		size = 1
	}
	return &series{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest once full.
func (s *series) push(value float64) {
	s.data[s.head] = value
	s.head = (s.head + 1) % s.size
	if s.count < s.size {
		s.count++
	}
}

// last returns up to n values in chronological order (oldest first).
func (s *series) last(n int) []float64 {
	if n <= 0 || s.count == 0 {
		return nil
	}
	if n > s.count {
		n = s.count
	}

	out := make([]float64, n)
	// head is the next write position, so the newest value is at head-1.
	start := (s.head - n + s.size) % s.size
	for i := 0; i < n; i++ {
		out[i] = s.data[(start+i)%s.size]
	}
	return out
}

// all returns every stored value, oldest first.
func (s *series) all() []float64 {
	return s.last(s.count)
}

// latest returns the newest value.
func (s *series) latest() (float64, bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.data[(s.head-1+s.size)%s.size], true
}

func (s *series) len() int { return s.count }
