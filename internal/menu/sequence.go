package menu

// Sequence hands out item identifiers for one import run. Each run gets
// its own sequence, so repeated imports are deterministic and isolated;
// food and bar items drawn from the same sequence are unique across both.
type Sequence struct {
	next int
}

// NewSequence returns a sequence starting at 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next identifier and advances the sequence.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}
