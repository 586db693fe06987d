package permit

import (
	"math/rand"
	"time"
)

// Rejection is an easter egg, roughly one application in ten thousand.
const rejectionOdds = 0.0001

// Source abstracts the randomness behind outcome selection so tests can force
// a branch. math/rand's *Rand satisfies it.
type Source interface {
	Float64() float64
}

type Selector struct {
	src Source
}

func NewSelector(src Source) *Selector {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{src: src}
}

// Draw decides the application's fate: first the rejection draw, then the
// register draw for approved documents (0.2 / 0.6 / 0.2).
func (s *Selector) Draw() Disposition {
	if s.src.Float64() < rejectionOdds {
		return Disposition{Rejected: true}
	}
	switch r := s.src.Float64(); {
	case r < 0.2:
		return Disposition{Register: RegisterTerse}
	case r < 0.8:
		return Disposition{Register: RegisterNormal}
	default:
		return Disposition{Register: RegisterVerbose}
	}
}
