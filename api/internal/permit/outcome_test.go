package permit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource replays a fixed sequence of draws.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func TestSelectorDraw(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want Disposition
	}{
		{name: "rejected", vals: []float64{0.0}, want: Disposition{Rejected: true}},
		{name: "just under rejection odds", vals: []float64{0.00009}, want: Disposition{Rejected: true}},
		{name: "rejection odds boundary", vals: []float64{0.0001, 0.5}, want: Disposition{Register: RegisterNormal}},
		{name: "terse", vals: []float64{0.5, 0.1}, want: Disposition{Register: RegisterTerse}},
		{name: "terse boundary", vals: []float64{0.5, 0.19999}, want: Disposition{Register: RegisterTerse}},
		{name: "normal", vals: []float64{0.5, 0.2}, want: Disposition{Register: RegisterNormal}},
		{name: "normal upper", vals: []float64{0.5, 0.79999}, want: Disposition{Register: RegisterNormal}},
		{name: "verbose", vals: []float64{0.5, 0.8}, want: Disposition{Register: RegisterVerbose}},
		{name: "verbose top", vals: []float64{0.5, 0.99999}, want: Disposition{Register: RegisterVerbose}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(&fixedSource{vals: tt.vals})
			assert.Equal(t, tt.want, s.Draw())
		})
	}
}

func TestSelectorDefaultsToSeededRand(t *testing.T) {
	s := NewSelector(nil)
	for i := 0; i < 100; i++ {
		d := s.Draw()
		if !d.Rejected {
			assert.Contains(t, []Register{RegisterTerse, RegisterNormal, RegisterVerbose}, d.Register)
		}
	}
}

func TestSelectorAcceptsMathRand(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(42)))
	d := s.Draw()
	assert.False(t, d.Rejected)
}
