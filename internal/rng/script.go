package rng

// Scripted sources pin resolution outcomes for tests and worked examples.

type low struct{}

func (low) IntN(n int) int { return 0 }

// Low returns a Source that always draws the minimum. Accuracy and
// protection draws always succeed; the damage roll lands on 0.85.
func Low() Source { return low{} }

type high struct{}

func (high) IntN(n int) int { return n - 1 }

// High returns a Source that always draws the maximum. Probabilistic
// draws always fail; the damage roll lands on 1.00.
func High() Source { return high{} }

// Sequence replays a fixed list of draws, then falls back to the minimum.
// Each scripted value is clamped into [0, n) so a test can spell out
// intent ("miss here") without knowing the internal draw width.
type Sequence struct {
	draws []int
	next  int
}

// NewSequence returns a Source that yields the given draws in order.
func NewSequence(draws ...int) *Sequence {
	return &Sequence{draws: draws}
}

func (s *Sequence) IntN(n int) int {
	if s.next >= len(s.draws) {
		return 0
	}
	v := s.draws[s.next]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Remaining reports how many scripted draws are left unconsumed.
func (s *Sequence) Remaining() int {
	return len(s.draws) - s.next
}
