package raster

import "math"

// line is a directed segment in vertex space, used to seed a stepper.
type line struct {
	start, end Vertex
}

// stepPolicy selects which pixel delta determines the step count.
type stepPolicy int

const (
	stepsByLargestDelta stepPolicy = iota
	stepsByXDelta
	stepsByYDelta
)

// lineStepper walks a straight line in position+attribute space at integer
// pixel granularity. Step counts always derive from the rounded pixel delta of
// the endpoints, never from attribute deltas, so X/Y stepping lands exactly on
// whole pixels.
type lineStepper struct {
	current   Vertex
	increment Vertex
	steps     int
	taken     int
}

func newLineStepper(l line, policy stepPolicy) lineStepper {
	if l.start.Count != l.end.Count {
		panic("raster: line endpoint attribute count mismatch")
	}

	// Snap endpoints to pixel positions before computing deltas.
	l.start.Pos[0] = roundf(l.start.Pos[0])
	l.start.Pos[1] = roundf(l.start.Pos[1])
	l.end.Pos[0] = roundf(l.end.Pos[0])
	l.end.Pos[1] = roundf(l.end.Pos[1])

	s := lineStepper{current: l.start}

	diff := l.end.Pos.Sub(l.start.Pos)

	switch policy {
	case stepsByLargestDelta:
		s.steps = int(max32(abs32(diff.X()), abs32(diff.Y())))
	case stepsByXDelta:
		s.steps = int(abs32(diff.X()))
	case stepsByYDelta:
		s.steps = int(abs32(diff.Y()))
	}

	// Degenerate line: immediately exhausted, current stays at start.
	if s.steps == 0 {
		return s
	}

	inv := 1 / float32(s.steps)
	s.increment.Pos = diff.Mul(inv)
	s.increment.Count = l.start.Count

	for i := 0; i < l.start.Count; i++ {
		a, b := &l.start.Attrs[i], &l.end.Attrs[i]
		if a.Size != b.Size {
			panic("raster: line endpoint attribute size mismatch")
		}
		s.increment.Attrs[i].Size = a.Size
		for j := 0; j < a.Size; j++ {
			s.increment.Attrs[i].Data[j] = (b.Data[j] - a.Data[j]) * inv
		}
	}

	return s
}

// step advances current by one increment. Returns false once all steps have
// been taken, without mutating state.
func (s *lineStepper) step() bool {
	if s.taken == s.steps {
		return false
	}
	s.taken++

	s.current.Pos = s.current.Pos.Add(s.increment.Pos)
	for i := 0; i < s.current.Count; i++ {
		s.current.Attrs[i].Add(s.increment.Attrs[i])
	}
	return true
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
